package render_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/usly/internal/navigation"
	"github.com/Decentr-net/usly/internal/render"
	"github.com/Decentr-net/usly/internal/render/mock"
	"github.com/Decentr-net/usly/internal/store"
)

func demoState() *store.State {
	return store.New(store.Demo()).State()
}

func nicknames(cards []render.PersonCard) []string {
	res := make([]string, len(cards))
	for i, v := range cards {
		res[i] = v.Nickname
	}
	return res
}

func TestProjections(t *testing.T) {
	tt := map[navigation.View][]render.Projection{
		navigation.Nearby:      {render.NearbyPeopleProjection, render.NearbyEventsProjection},
		navigation.Groups:      {render.GroupsProjection, render.GroupSuggestionsProjection},
		navigation.GroupThread: {render.GroupThreadProjection, render.InviteCandidatesProjection},
		navigation.ChatThread:  {render.ChatThreadProjection},
		navigation.Settings:    nil,
		navigation.Welcome:     nil,
		navigation.Plans:       nil,
	}

	for v, expected := range tt {
		assert.Equal(t, expected, render.Projections(v), v.String())
	}
}

func TestSynchronizer_Sync_Presents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mock.NewMockPresenter(ctrl)

	var presented render.Frame
	p.EXPECT().Present(gomock.Any()).Do(func(f render.Frame) {
		presented = f
	})

	f := render.NewSynchronizer(p, nil).Sync(navigation.Chats, demoState())

	require.Equal(t, f.View, presented.View)
	require.Len(t, presented.Chats, 2)
}

func TestSynchronizer_Sync_Nearby(t *testing.T) {
	f := render.NewSynchronizer(nil, nil).Sync(navigation.Nearby, demoState())

	require.Equal(t, []string{"Maja", "Alex", "Kasia", "Tomek"}, nicknames(f.NearbyPeople))
	for _, v := range f.NearbyPeople {
		assert.Equal(t, 33, v.Score)
		assert.Len(t, v.Tags, 3)
	}
	require.Len(t, f.NearbyEvents, 3)
	require.Nil(t, f.Events)
	require.Nil(t, f.Groups)
}

func TestSynchronizer_Sync_Query(t *testing.T) {
	s := store.New(store.Demo())
	require.NoError(t, s.SetQuery(store.NearbyPeopleList, "MA"))

	f := render.NewSynchronizer(nil, nil).Sync(navigation.Nearby, s.State())

	require.Equal(t, []string{"Maja"}, nicknames(f.NearbyPeople))
}

func TestSynchronizer_Sync_Groups(t *testing.T) {
	f := render.NewSynchronizer(nil, nil).Sync(navigation.Groups, demoState())

	ids := make([]string, 0, len(f.Groups))
	for _, g := range f.Groups {
		ids = append(ids, g.ID)
	}
	require.Equal(t, []string{"g1", "g2", "g3"}, ids)

	require.Equal(t, []string{"Maja", "Alex", "Kasia", "Tomek"}, nicknames(f.GroupSuggestions))
	for _, v := range f.GroupSuggestions {
		assert.Equal(t, 25, v.Score)
	}
}

func TestSynchronizer_Sync_GroupThread(t *testing.T) {
	s := store.New(store.Demo())
	_, err := s.OpenGroup("g1")
	require.NoError(t, err)

	f := render.NewSynchronizer(nil, nil).Sync(navigation.GroupThread, s.State())

	require.NotNil(t, f.Group)
	require.Equal(t, "Kawosze Warszawa", f.Group.Title)
	require.Len(t, f.Group.Messages, 3)
	require.True(t, f.Group.Messages[2].Mine)
	require.Equal(t, []string{"Maja", "Tomek"}, nicknames(f.InviteCandidates))
}

func TestSynchronizer_Sync_Details(t *testing.T) {
	s := store.New(store.Demo())
	sync := render.NewSynchronizer(nil, nil)

	f := sync.Sync(navigation.PersonProfile, s.State())
	require.Nil(t, f.Person)

	_, err := s.OpenPerson("u4")
	require.NoError(t, err)
	f = sync.Sync(navigation.PersonProfile, s.State())
	require.NotNil(t, f.Person)
	require.Equal(t, []string{"kawa"}, f.Person.Common)

	_, err = s.OpenEvent("e3")
	require.NoError(t, err)
	f = sync.Sync(navigation.EventDetail, s.State())
	require.NotNil(t, f.Event)
	require.Equal(t, "15–30 zł", f.Event.Price)
	require.False(t, f.Event.Free)

	_, err = s.OpenChat("c1")
	require.NoError(t, err)
	f = sync.Sync(navigation.ChatThread, s.State())
	require.NotNil(t, f.Chat)
	require.Zero(t, f.Chat.Unread)
	require.Len(t, f.Chat.Messages, 3)
	require.Zero(t, f.Summary.UnreadTotal)
}

func TestSynchronizer_Sync_Partner(t *testing.T) {
	s := store.New(store.Demo())
	require.NoError(t, s.SelectRole("partner"))
	require.NoError(t, s.SetPartnerPlan("pro"))
	s.Login()

	sync := render.NewSynchronizer(nil, nil)

	f := sync.Sync(navigation.PartnerEvents, s.State())
	require.Len(t, f.PartnerEvents, 1)
	require.Equal(t, "e3", f.PartnerEvents[0].ID)

	f = sync.Sync(navigation.Notifications, s.State())
	require.Len(t, f.Notifications, 2)
	require.Equal(t, "Nowe zainteresowanie", f.Notifications[0].Title)

	require.Equal(t, "Kawiarnia Aurora • PRO", f.Summary.PartnerPlanLine)
	require.Equal(t, "PRO", f.Summary.PartnerPlanLabel)
	require.Equal(t, "Organizator", f.Summary.RoleLabel)
}

func TestNewSummary(t *testing.T) {
	s := store.New(store.Demo())

	sum := render.NewSummary(navigation.Nearby, s.State())
	require.Equal(t, 2, sum.UnreadTotal)
	require.Equal(t, "FREE", sum.UserPlanLabel)
	require.False(t, sum.TabBarVisible)
	require.Equal(t, navigation.NearbyTab, sum.ActiveTab)

	s.Login()

	sum = render.NewSummary(navigation.ChatThread, s.State())
	require.True(t, sum.TabBarVisible)
	require.Equal(t, navigation.ChatsTab, sum.ActiveTab)

	sum = render.NewSummary(navigation.Plans, s.State())
	require.False(t, sum.TabBarVisible)
}

func TestFrame_JSON(t *testing.T) {
	f := render.NewSynchronizer(nil, nil).Sync(navigation.Events, demoState())

	b, err := json.Marshal(f)
	require.NoError(t, err)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &v))
	require.Equal(t, "events", v["view"])
	require.Contains(t, v, "events")
	require.NotContains(t, v, "nearby_people")
}

func TestMetrics(t *testing.T) {
	m := render.NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	require.Error(t, m.Register(reg))

	sync := render.NewSynchronizer(nil, m)
	sync.Sync(navigation.Nearby, demoState())
	sync.Sync(navigation.Nearby, demoState())
	sync.Sync(navigation.Settings, demoState())

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]map[string]float64{}
	for _, f := range families {
		values[f.GetName()] = map[string]float64{}
		for _, metric := range f.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			values[f.GetName()][metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, float64(2), values[render.MetricRenderSyncsTotal]["nearby"])
	assert.Equal(t, float64(1), values[render.MetricRenderSyncsTotal]["settings"])
	assert.Equal(t, float64(2), values[render.MetricRenderProjectionsTotal]["nearby_people"])
	assert.Equal(t, float64(2), values[render.MetricRenderProjectionsTotal]["nearby_events"])
}

// Package render keeps the presented frame in sync with the session state.
package render

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/usly/internal/matching"
	"github.com/Decentr-net/usly/internal/navigation"
	"github.com/Decentr-net/usly/internal/projection"
	"github.com/Decentr-net/usly/internal/store"
)

//go:generate mockgen -destination=./mock/synchronizer.go -package=mock -source=synchronizer.go

// nolint:gochecknoglobals
var log = logrus.WithField("layer", "render").WithField("package", "render")

// Presenter draws frames. It is the only way state leaves the core.
type Presenter interface {
	Present(f Frame)
}

// Projection names a projection computed for a view.
type Projection string

// Projections.
const (
	NearbyPeopleProjection     Projection = "nearby_people"
	NearbyEventsProjection     Projection = "nearby_events"
	EventsProjection           Projection = "events"
	GroupsProjection           Projection = "groups"
	GroupSuggestionsProjection Projection = "group_suggestions"
	ChatsProjection            Projection = "chats"
	ChatThreadProjection       Projection = "chat_thread"
	PartnerEventsProjection    Projection = "partner_events"
	PartnerMessagesProjection  Projection = "partner_messages"
	NotificationsProjection    Projection = "notifications"
	PersonDetailProjection     Projection = "person_detail"
	EventDetailProjection      Projection = "event_detail"
	GroupThreadProjection      Projection = "group_thread"
	InviteCandidatesProjection Projection = "invite_candidates"
)

// nolint:gochecknoglobals
var viewProjections = map[navigation.View][]Projection{
	navigation.Nearby:          {NearbyPeopleProjection, NearbyEventsProjection},
	navigation.Events:          {EventsProjection},
	navigation.Groups:          {GroupsProjection, GroupSuggestionsProjection},
	navigation.Chats:           {ChatsProjection},
	navigation.ChatThread:      {ChatThreadProjection},
	navigation.PartnerEvents:   {PartnerEventsProjection},
	navigation.PartnerMessages: {PartnerMessagesProjection},
	navigation.Notifications:   {NotificationsProjection},
	navigation.PersonProfile:   {PersonDetailProjection},
	navigation.EventDetail:     {EventDetailProjection},
	navigation.GroupThread:     {GroupThreadProjection, InviteCandidatesProjection},
}

// Projections returns projections shown by the view. Views missing in the map show none.
func Projections(v navigation.View) []Projection {
	return slices.Clone(viewProjections[v])
}

// Synchronizer recomputes projections of the current view and pushes them to the presenter.
type Synchronizer struct {
	p Presenter
	m *Metrics
}

// NewSynchronizer returns a synchronizer. Both presenter and metrics are optional.
func NewSynchronizer(p Presenter, m *Metrics) *Synchronizer {
	return &Synchronizer{
		p: p,
		m: m,
	}
}

// Sync builds a frame of the view over the state, presents and returns it.
// The state is only read.
func (s *Synchronizer) Sync(v navigation.View, st *store.State) Frame {
	started := time.Now()

	f := Frame{
		View:    v,
		Summary: NewSummary(v, st),
	}

	for _, p := range viewProjections[v] {
		s.fill(&f, p, st)
		s.m.incProjection(p)
	}

	s.m.incSyncs(v.String())
	s.m.observeDuration(time.Since(started).Seconds())

	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("frame: %s", spew.Sdump(f))
	}

	if s.p != nil {
		s.p.Present(f)
	}

	return f
}

func (s *Synchronizer) fill(f *Frame, p Projection, st *store.State) {
	interests := st.User.Interests

	switch p {
	case NearbyPeopleProjection:
		f.NearbyPeople = collect(projection.NearbyPeople(st.People, interests, st.Queries[store.NearbyPeopleList]), newPersonItemCard)
	case NearbyEventsProjection:
		f.NearbyEvents = collect(projection.NearbyEvents(st.Events), newEventCard)
	case EventsProjection:
		f.Events = collect(projection.Events(st.Events, st.EventsTab, st.Queries[store.EventsList]), newEventCard)
	case GroupsProjection:
		f.Groups = collect(projection.Groups(st.Groups, interests, st.Queries[store.GroupsList]), newGroupCard)
	case GroupSuggestionsProjection:
		f.GroupSuggestions = collect(projection.GroupSuggestions(st.People, interests), newPersonItemCard)
	case ChatsProjection:
		f.Chats = collect(projection.Chats(st.Chats, st.Queries[store.ChatsList]), newChatCard)
	case PartnerEventsProjection:
		f.PartnerEvents = collect(projection.PartnerEvents(st.Events, st.Partner.Company), newEventCard)
	case PartnerMessagesProjection:
		f.PartnerMessages = collect(projection.Chats(st.Chats, st.Queries[store.PartnerMessagesList]), newChatCard)
	case NotificationsProjection:
		f.Notifications = collect(projection.Notifications(st.Role), newNotification)
	case ChatThreadProjection:
		if c, ok := st.Chat(st.Selection.ChatID); ok {
			f.Chat = &ChatThread{
				ChatCard: newChatCard(c),
				Messages: newMessages(c.Messages),
			}
		}
	case PersonDetailProjection:
		if person, ok := st.Person(st.Selection.PersonID); ok {
			f.Person = &PersonDetail{
				PersonCard: newPersonCard(*person,
					matching.SharedScore(interests, person.Interests),
					matching.CommonInterests(interests, person.Interests),
				),
				Interests: person.Interests,
			}
		}
	case EventDetailProjection:
		if e, ok := st.Event(st.Selection.EventID); ok {
			f.Event = &EventDetail{
				EventCard:   newEventCard(*e),
				Description: e.Description,
				PricingMode: e.Pricing.Mode,
				TicketLink:  e.TicketLink,
			}
		}
	case GroupThreadProjection:
		if g, ok := st.Group(st.Selection.GroupID); ok {
			f.Group = &GroupThread{
				GroupCard: newGroupCard(*g),
				Messages:  newMessages(st.GroupThreads[g.ID]),
			}
		}
	case InviteCandidatesProjection:
		if g, ok := st.Group(st.Selection.GroupID); ok {
			f.InviteCandidates = collect(projection.InviteCandidates(st.People, interests, g.InterestTag), newPersonItemCard)
		}
	default:
		log.WithField("projection", p).Error("unknown projection")
	}
}

// NewSummary computes values shown on every view.
func NewSummary(v navigation.View, st *store.State) Summary {
	tab := navigation.ActiveTab(st.Role, v)

	return Summary{
		Role:             st.Role,
		RoleLabel:        st.Role.Label(),
		LoggedIn:         st.LoggedIn,
		UnreadTotal:      projection.UnreadTotal(st.Chats),
		UserPlan:         st.User.Plan,
		UserPlanLabel:    st.User.Plan.Label(),
		PartnerPlan:      st.Partner.Plan,
		PartnerPlanLabel: st.Partner.Plan.Label(),
		PartnerPlanLine:  fmt.Sprintf("%s • %s", st.Partner.Company, st.Partner.Plan.Label()),
		TabBarVisible:    st.LoggedIn && tab != navigation.NoTab,
		ActiveTab:        tab,
		EventsTab:        st.EventsTab,
		Profile: Profile{
			Nickname:  st.User.Nickname,
			City:      st.User.City,
			Age:       st.User.Age,
			Bio:       st.User.Bio,
			Interests: slices.Clone(st.User.Interests),
			AgeFrom:   st.User.AgeRange.From,
			AgeTo:     st.User.AgeRange.To,
			Avatar:    st.User.Avatar,
			HasGeo:    st.User.Geo != nil,
		},
		Partner: Partner{
			Company:  st.Partner.Company,
			Category: st.Partner.Category,
			City:     st.Partner.City,
			About:    st.Partner.About,
			Logo:     st.Partner.Logo,
		},
	}
}

func collect[T, R any](seq iter.Seq[T], f func(T) R) []R {
	var res []R
	for v := range seq {
		res = append(res, f(v))
	}
	return res
}

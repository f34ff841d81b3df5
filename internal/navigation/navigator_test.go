package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/usly/internal/entities"
)

func TestParseView(t *testing.T) {
	for _, v := range AllViews() {
		p, err := ParseView(v.String())
		require.NoError(t, err)
		require.Equal(t, v, p)
	}

	_, err := ParseView("S0_WELCOME")
	require.True(t, errors.Is(err, ErrUnknownView))

	var v View
	require.NoError(t, v.UnmarshalText([]byte("groups")))
	require.Equal(t, Groups, v)

	_, err = View(200).MarshalText()
	require.True(t, errors.Is(err, ErrUnknownView))
}

func TestNavigator_GotoBack(t *testing.T) {
	n := NewNavigator(0)
	require.Equal(t, Welcome, n.Current())

	for _, s := range AllViews() {
		for _, v := range AllViews() {
			if v == s {
				continue
			}

			n := NewNavigator(0)
			_, err := n.Goto(s)
			require.NoError(t, err)

			changed, err := n.Goto(v)
			require.NoError(t, err)
			require.True(t, changed)
			require.Equal(t, v, n.Current())

			require.True(t, n.Back())
			require.Equal(t, s, n.Current(), "%s -> %s -> back", s, v)
		}
	}
}

func TestNavigator_GotoSame(t *testing.T) {
	n := NewNavigator(0)

	_, err := n.Goto(Nearby)
	require.NoError(t, err)

	changed, err := n.Goto(Nearby)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, []View{Welcome, Nearby}, n.History())
}

func TestNavigator_GotoUnknown(t *testing.T) {
	n := NewNavigator(0)

	changed, err := n.Goto(View(99))
	require.True(t, errors.Is(err, ErrUnknownView))
	require.False(t, changed)
	require.Equal(t, []View{Welcome}, n.History())
}

func TestNavigator_BackAtWelcome(t *testing.T) {
	n := NewNavigator(0)

	for i := 0; i < 3; i++ {
		require.False(t, n.Back())
		require.Equal(t, Welcome, n.Current())
		require.Equal(t, []View{Welcome}, n.History())
	}
}

func TestNavigator_BackFromSingleNonWelcome(t *testing.T) {
	n := NewNavigator(2)

	_, _ = n.Goto(Nearby)
	_, _ = n.Goto(Events)
	require.Equal(t, []View{Nearby, Events}, n.History())

	require.True(t, n.Back())
	require.Equal(t, Nearby, n.Current())

	require.True(t, n.Back())
	require.Equal(t, Welcome, n.Current())
	require.Equal(t, []View{Welcome}, n.History())

	for i := 0; i < 3; i++ {
		require.False(t, n.Back())
		require.Equal(t, Welcome, n.Current())
		require.Equal(t, []View{Welcome}, n.History())
	}
}

func TestNavigator_Limit(t *testing.T) {
	n := NewNavigator(4)

	for _, v := range []View{Nearby, Events, Groups, Chats, Settings} {
		_, err := n.Goto(v)
		require.NoError(t, err)
	}

	require.Equal(t, []View{Groups, Chats, Settings}, n.History()[1:])
	require.Len(t, n.History(), 4)
	require.Equal(t, Settings, n.Current())
}

func TestNavigator_Reset(t *testing.T) {
	n := NewNavigator(0)
	_, _ = n.Goto(Nearby)
	_, _ = n.Goto(Chats)

	n.Reset()

	require.Equal(t, []View{Welcome}, n.History())
	require.Equal(t, Welcome, n.Current())
}

func TestActiveTab(t *testing.T) {
	assert.Equal(t, ChatsTab, ActiveTab(entities.UserRole, ChatThread))
	assert.Equal(t, EventsTab, ActiveTab(entities.UserRole, EventDetail))
	assert.Equal(t, NoTab, ActiveTab(entities.UserRole, PartnerEvents))
	assert.Equal(t, MyEventsTab, ActiveTab(entities.PartnerRole, PartnerEvents))
	assert.Equal(t, PartnerSetupTab, ActiveTab(entities.PartnerRole, Settings))
	assert.Equal(t, NoTab, ActiveTab(entities.PartnerRole, Nearby))
}

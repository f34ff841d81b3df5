// Package navigation tracks the visible screen and the way back.
package navigation

import (
	"errors"
	"fmt"
)

// ErrUnknownView is returned for a view name outside of the known set.
var ErrUnknownView = errors.New("unknown view")

// View is one named screen of the application.
type View uint8

// Views. Welcome is the zero value and the initial state.
const (
	Welcome View = iota
	Login
	Register
	ProfileSetup
	Nearby
	PersonProfile
	Chats
	ChatThread
	Events
	EventDetail
	Groups
	GroupThread
	PartnerDashboard
	PartnerCreate
	PartnerEvents
	PartnerMessages
	Settings
	Plans
	Notifications

	viewCount
)

var viewNames = [viewCount]string{ // nolint:gochecknoglobals
	Welcome:          "welcome",
	Login:            "login",
	Register:         "register",
	ProfileSetup:     "profile_setup",
	Nearby:           "nearby",
	PersonProfile:    "person_profile",
	Chats:            "chats",
	ChatThread:       "chat_thread",
	Events:           "events",
	EventDetail:      "event_detail",
	Groups:           "groups",
	GroupThread:      "group_thread",
	PartnerDashboard: "partner_dashboard",
	PartnerCreate:    "partner_create",
	PartnerEvents:    "partner_events",
	PartnerMessages:  "partner_messages",
	Settings:         "settings",
	Plans:            "plans",
	Notifications:    "notifications",
}

// String ...
func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("view(%d)", v)
	}
	return viewNames[v]
}

// Valid reports whether v belongs to the known set.
func (v View) Valid() bool {
	return v < viewCount
}

// MarshalText ...
func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownView, v)
	}
	return []byte(v.String()), nil
}

// UnmarshalText ...
func (v *View) UnmarshalText(b []byte) error {
	p, err := ParseView(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseView ...
func ParseView(s string) (View, error) {
	for i, n := range viewNames {
		if n == s {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// AllViews returns every view in declaration order.
func AllViews() []View {
	out := make([]View, viewCount)
	for i := range out {
		out[i] = View(i)
	}
	return out
}

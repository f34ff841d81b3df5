// Package store holds the mutable domain snapshot of a session and the commands mutating it.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/projection"
)

// Error kinds.
var (
	// ErrValidation is returned when a command input is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when a command refers to an entity which does not exist.
	ErrNotFound = errors.New("not found")
)

// Error is a command failure with a message to be shown to the user.
type Error struct {
	kind error
	msg  string
}

// Error ...
func (e *Error) Error() string {
	return e.msg
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.kind
}

func invalid(format string, args ...interface{}) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// List names a searchable list.
type List string

// Searchable lists.
const (
	NearbyPeopleList    List = "nearby_people"
	EventsList          List = "events"
	GroupsList          List = "groups"
	ChatsList           List = "chats"
	PartnerMessagesList List = "partner_messages"
)

// Selection points to entities focused by detail views.
type Selection struct {
	PersonID string
	EventID  string
	ChatID   string
	GroupID  string
}

// State is the domain snapshot. Renderers must treat it as read-only.
type State struct {
	Role     entities.Role
	LoggedIn bool

	User    entities.Profile
	Partner entities.PartnerProfile

	People []entities.Person
	Events []entities.Event
	Groups []entities.Group
	Chats  []*entities.Chat

	// GroupThreads holds messages of groups opened within the session.
	GroupThreads map[string][]entities.Message

	Selection Selection
	EventsTab projection.EventsTab
	Queries   map[List]string
}

// Store owns a State and exposes named mutation commands.
// It never notifies anyone about changes. It is not safe for concurrent use.
type Store struct {
	state State
	now   func() time.Time
	newID func() string
}

// Option ...
type Option func(s *Store)

// WithClock sets the clock used for age calculations.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the generator of ids for chats and events.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) {
		s.newID = f
	}
}

// New creates a store over the state.
func New(state State, opts ...Option) *Store {
	if state.GroupThreads == nil {
		state.GroupThreads = map[string][]entities.Message{}
	}
	if state.Queries == nil {
		state.Queries = map[List]string{}
	}
	if state.EventsTab == "" {
		state.EventsTab = projection.NearbyEvents
	}
	if state.Role == "" {
		state.Role = entities.UserRole
	}

	s := &Store{
		state: state,
		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// State returns the snapshot.
func (s *Store) State() *State {
	return &s.state
}

// Person returns a person by id.
func (st *State) Person(id string) (*entities.Person, bool) {
	for i := range st.People {
		if st.People[i].ID == id {
			return &st.People[i], true
		}
	}
	return nil, false
}

// Event returns an event by id.
func (st *State) Event(id string) (*entities.Event, bool) {
	for i := range st.Events {
		if st.Events[i].ID == id {
			return &st.Events[i], true
		}
	}
	return nil, false
}

// Group returns a group by id.
func (st *State) Group(id string) (*entities.Group, bool) {
	for i := range st.Groups {
		if st.Groups[i].ID == id {
			return &st.Groups[i], true
		}
	}
	return nil, false
}

// Chat returns a chat by id.
func (st *State) Chat(id string) (*entities.Chat, bool) {
	for _, c := range st.Chats {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Person ...
func (s *Store) Person(id string) (*entities.Person, bool) {
	return s.state.Person(id)
}

// Event ...
func (s *Store) Event(id string) (*entities.Event, bool) {
	return s.state.Event(id)
}

// Group ...
func (s *Store) Group(id string) (*entities.Group, bool) {
	return s.state.Group(id)
}

// Chat ...
func (s *Store) Chat(id string) (*entities.Chat, bool) {
	return s.state.Chat(id)
}

func (s *Store) chatWith(personID string) (*entities.Chat, bool) {
	for _, c := range s.state.Chats {
		if c.With.ID == personID {
			return c, true
		}
	}
	return nil, false
}

// SetQuery sets a free-text filter of the list.
func (s *Store) SetQuery(l List, q string) error {
	switch l {
	case NearbyPeopleList, EventsList, GroupsList, ChatsList, PartnerMessagesList:
	default:
		return invalid("Nieznana lista: %s", l)
	}

	s.state.Queries[l] = q

	return nil
}

// Query returns a free-text filter of the list.
func (s *Store) Query(l List) string {
	return s.state.Queries[l]
}

// SetEventsTab ...
func (s *Store) SetEventsTab(tab string) error {
	switch t := projection.EventsTab(tab); t {
	case projection.NearbyEvents, projection.FollowedEvents:
		s.state.EventsTab = t
		return nil
	default:
		return invalid("Nieznana zakładka: %s", tab)
	}
}

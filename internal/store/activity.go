package store

import (
	"fmt"
	"strings"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/projection"
)

const (
	chatGreeting    = "Hej! 🙂"
	defaultTicket   = "https://example.com"
	emptyEventDesc  = "—"
	selfOrganizerID = projection.SelfOrganizerID
)

// PublishForm ...
type PublishForm struct {
	Title       string
	City        string
	When        string
	Where       string
	Interest    string
	Description string
	PricingMode string
	Price       int
	PriceFrom   int
	PriceTo     int
	TicketLink  string
}

// OpenPerson focuses a person.
func (s *Store) OpenPerson(id string) (*entities.Person, error) {
	p, ok := s.Person(id)
	if !ok {
		return nil, notFound("Nie znaleziono osoby")
	}

	s.state.Selection.PersonID = id

	return p, nil
}

// OpenEvent focuses an event.
func (s *Store) OpenEvent(id string) (*entities.Event, error) {
	e, ok := s.Event(id)
	if !ok {
		return nil, notFound("Nie znaleziono wydarzenia")
	}

	s.state.Selection.EventID = id

	return e, nil
}

// OpenChat focuses a chat and marks it as read.
func (s *Store) OpenChat(id string) (*entities.Chat, error) {
	c, ok := s.Chat(id)
	if !ok {
		return nil, notFound("Nie znaleziono rozmowy")
	}

	s.state.Selection.ChatID = id
	c.Unread = 0

	return c, nil
}

// OpenGroup focuses a group and starts its thread when it is opened for the first time.
func (s *Store) OpenGroup(id string) (*entities.Group, error) {
	g, ok := s.Group(id)
	if !ok {
		return nil, notFound("Nie znaleziono grupy")
	}

	s.state.Selection.GroupID = id

	if _, ok := s.state.GroupThreads[id]; !ok {
		s.state.GroupThreads[id] = []entities.Message{
			{Author: entities.Theirs, Text: fmt.Sprintf("Witaj w grupie „%s”!", g.Title)},
			{Author: entities.Theirs, Text: fmt.Sprintf("Temat: #%s.", g.InterestTag)},
			{Author: entities.Mine, Text: "Cześć wszystkim! 🙂"},
		}
	}

	return g, nil
}

// StartChat opens the chat with the selected person and creates it when there is none.
func (s *Store) StartChat() (*entities.Chat, error) {
	pid := s.state.Selection.PersonID
	if pid == "" {
		return nil, notFound("Nie wybrano osoby")
	}

	p, ok := s.Person(pid)
	if !ok {
		return nil, notFound("Nie znaleziono osoby")
	}

	c, ok := s.chatWith(pid)
	if !ok {
		c = &entities.Chat{
			ID: s.newID(),
			With: entities.ChatPeer{
				ID:       p.ID,
				Nickname: p.Nickname,
				Avatar:   p.Avatar,
			},
			Messages: []entities.Message{{Author: entities.Theirs, Text: chatGreeting}},
		}
		s.state.Chats = append([]*entities.Chat{c}, s.state.Chats...)
	}

	return s.OpenChat(c.ID)
}

// SendChatMessage appends the user's message to the focused chat.
func (s *Store) SendChatMessage(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid("Wpisz wiadomość")
	}

	c, ok := s.Chat(s.state.Selection.ChatID)
	if !ok {
		return notFound("Nie znaleziono rozmowy")
	}

	c.Messages = append(c.Messages, entities.Message{Author: entities.Mine, Text: text})
	c.Last = text

	return nil
}

// SendGroupMessage appends the user's message to the focused group thread.
func (s *Store) SendGroupMessage(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid("Wpisz wiadomość")
	}

	id := s.state.Selection.GroupID
	if _, ok := s.Group(id); !ok {
		return notFound("Nie znaleziono grupy")
	}

	s.state.GroupThreads[id] = append(s.state.GroupThreads[id], entities.Message{Author: entities.Mine, Text: text})

	return nil
}

func (s *Store) selectedEvent() (*entities.Event, error) {
	e, ok := s.Event(s.state.Selection.EventID)
	if !ok {
		return nil, notFound("Nie znaleziono wydarzenia")
	}
	return e, nil
}

// ToggleSaved flips the saved flag of the focused event.
func (s *Store) ToggleSaved() (*entities.Event, error) {
	e, err := s.selectedEvent()
	if err != nil {
		return nil, err
	}

	e.Saved = !e.Saved

	return e, nil
}

// ToggleInterested flips the interested flag of the focused event.
func (s *Store) ToggleInterested() (*entities.Event, error) {
	e, err := s.selectedEvent()
	if err != nil {
		return nil, err
	}

	e.Interested = !e.Interested

	return e, nil
}

// PublishEvent creates an event organized by the partner. New events go first.
func (s *Store) PublishEvent(f PublishForm) (*entities.Event, error) {
	if s.state.Role != entities.PartnerRole {
		return nil, invalid("To jest dostępne tylko dla organizatora")
	}

	title := strings.TrimSpace(f.Title)
	city := strings.TrimSpace(f.City)
	when := strings.TrimSpace(f.When)
	where := strings.TrimSpace(f.Where)
	interest := entities.NormalizeTag(f.Interest)

	if title == "" || city == "" || when == "" || where == "" || interest == "" {
		return nil, invalid("Uzupełnij: nazwa, miasto, kiedy, gdzie, hashtag")
	}

	mode, err := entities.ParsePricingMode(f.PricingMode)
	if err != nil {
		return nil, invalid("Nieznany rodzaj biletu")
	}

	pricing, err := entities.NewPricing(mode, f.Price, f.PriceFrom, f.PriceTo)
	if err != nil {
		return nil, invalid("Nieprawidłowa cena")
	}

	e := entities.Event{
		ID:          s.newID(),
		Title:       title,
		City:        city,
		When:        when,
		Where:       where,
		Interest:    interest,
		Description: orDefault(f.Description, emptyEventDesc),
		Pricing:     pricing,
		TicketLink:  orDefault(f.TicketLink, defaultTicket),
		Organizer: entities.Organizer{
			ID:   selfOrganizerID,
			Name: s.state.Partner.Company,
		},
	}

	s.state.Events = append([]entities.Event{e}, s.state.Events...)

	return &s.state.Events[0], nil
}

package render

import (
	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/navigation"
	"github.com/Decentr-net/usly/internal/projection"
)

// Frame is everything the presentation layer needs to draw the current view.
type Frame struct {
	View    navigation.View `json:"view"`
	Summary Summary         `json:"summary"`

	NearbyPeople     []PersonCard   `json:"nearby_people,omitempty"`
	NearbyEvents     []EventCard    `json:"nearby_events,omitempty"`
	Events           []EventCard    `json:"events,omitempty"`
	Groups           []GroupCard    `json:"groups,omitempty"`
	GroupSuggestions []PersonCard   `json:"group_suggestions,omitempty"`
	Chats            []ChatCard     `json:"chats,omitempty"`
	PartnerEvents    []EventCard    `json:"partner_events,omitempty"`
	PartnerMessages  []ChatCard     `json:"partner_messages,omitempty"`
	Notifications    []Notification `json:"notifications,omitempty"`
	Person           *PersonDetail  `json:"person,omitempty"`
	Event            *EventDetail   `json:"event,omitempty"`
	Chat             *ChatThread    `json:"chat,omitempty"`
	Group            *GroupThread   `json:"group,omitempty"`
	InviteCandidates []PersonCard   `json:"invite_candidates,omitempty"`
	Toasts           []string       `json:"toasts,omitempty"`
}

// Summary holds values shown regardless of the view.
type Summary struct {
	Role             entities.Role        `json:"role"`
	RoleLabel        string               `json:"role_label"`
	LoggedIn         bool                 `json:"logged_in"`
	UnreadTotal      int                  `json:"unread_total"`
	UserPlan         entities.UserPlan    `json:"user_plan"`
	UserPlanLabel    string               `json:"user_plan_label"`
	PartnerPlan      entities.PartnerPlan `json:"partner_plan"`
	PartnerPlanLabel string               `json:"partner_plan_label"`
	PartnerPlanLine  string               `json:"partner_plan_line"`
	TabBarVisible    bool                 `json:"tab_bar_visible"`
	ActiveTab        navigation.Tab       `json:"active_tab"`
	EventsTab        projection.EventsTab `json:"events_tab"`
	Profile          Profile              `json:"profile"`
	Partner          Partner              `json:"partner"`
}

// Profile ...
type Profile struct {
	Nickname  string   `json:"nickname"`
	City      string   `json:"city"`
	Age       int      `json:"age"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
	AgeFrom   int      `json:"age_from"`
	AgeTo     int      `json:"age_to"`
	Avatar    string   `json:"avatar"`
	HasGeo    bool     `json:"has_geo"`
}

// Partner ...
type Partner struct {
	Company  string `json:"company"`
	Category string `json:"category"`
	City     string `json:"city"`
	About    string `json:"about"`
	Logo     string `json:"logo"`
}

// PersonCard is a person list item.
type PersonCard struct {
	ID       string   `json:"id"`
	Nickname string   `json:"nickname"`
	City     string   `json:"city"`
	Age      int      `json:"age"`
	Avatar   string   `json:"avatar"`
	Tags     []string `json:"tags"`
	Score    int      `json:"score"`
	Common   []string `json:"common"`
}

// PersonDetail ...
type PersonDetail struct {
	PersonCard
	Interests []string `json:"interests"`
}

// EventCard is an event list item.
type EventCard struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	City       string `json:"city"`
	When       string `json:"when"`
	Where      string `json:"where"`
	Interest   string `json:"interest"`
	Price      string `json:"price"`
	Free       bool   `json:"free"`
	Saved      bool   `json:"saved"`
	Interested bool   `json:"interested"`
	Organizer  string `json:"organizer"`
}

// EventDetail ...
type EventDetail struct {
	EventCard
	Description string               `json:"description"`
	PricingMode entities.PricingMode `json:"pricing_mode"`
	TicketLink  string               `json:"ticket_link"`
}

// GroupCard ...
type GroupCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	InterestTag string `json:"interest_tag"`
	Members     int    `json:"members"`
	Description string `json:"description"`
}

// ChatCard is a conversation list item.
type ChatCard struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Last     string `json:"last"`
	Unread   int    `json:"unread"`
}

// Message ...
type Message struct {
	Mine bool   `json:"mine"`
	Text string `json:"text"`
}

// ChatThread ...
type ChatThread struct {
	ChatCard
	Messages []Message `json:"messages"`
}

// GroupThread ...
type GroupThread struct {
	GroupCard
	Messages []Message `json:"messages"`
}

// Notification ...
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func newPersonCard(p entities.Person, score int, common []string) PersonCard {
	return PersonCard{
		ID:       p.ID,
		Nickname: p.Nickname,
		City:     p.City,
		Age:      p.Age,
		Avatar:   p.Avatar,
		Tags:     projection.Preview(p.Interests),
		Score:    score,
		Common:   common,
	}
}

func newPersonItemCard(i projection.PersonItem) PersonCard {
	return newPersonCard(i.Person, i.Score, i.Common)
}

func newEventCard(e entities.Event) EventCard {
	return EventCard{
		ID:         e.ID,
		Title:      e.Title,
		City:       e.City,
		When:       e.When,
		Where:      e.Where,
		Interest:   e.Interest,
		Price:      e.Pricing.Label(),
		Free:       e.Pricing.IsFree(),
		Saved:      e.Saved,
		Interested: e.Interested,
		Organizer:  e.Organizer.Name,
	}
}

func newGroupCard(g entities.Group) GroupCard {
	return GroupCard{
		ID:          g.ID,
		Title:       g.Title,
		InterestTag: g.InterestTag,
		Members:     g.Members,
		Description: g.Description,
	}
}

func newChatCard(c *entities.Chat) ChatCard {
	return ChatCard{
		ID:       c.ID,
		Nickname: c.With.Nickname,
		Avatar:   c.With.Avatar,
		Last:     c.Last,
		Unread:   c.Unread,
	}
}

func newMessages(mm []entities.Message) []Message {
	res := make([]Message, len(mm))
	for i, m := range mm {
		res[i] = Message{Mine: m.Author == entities.Mine, Text: m.Text}
	}
	return res
}

func newNotification(n projection.Notification) Notification {
	return Notification{Title: n.Title, Body: n.Body}
}

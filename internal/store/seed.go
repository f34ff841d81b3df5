package store

import (
	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/projection"
)

// InterestCatalog is the list of tags offered by the typeahead.
var InterestCatalog = []string{ // nolint:gochecknoglobals
	"kawa", "kino", "spacer", "joga", "muzyka", "gry", "AI", "psy", "fotografia", "rower",
	"góry", "planszówki", "seriale", "książki", "bieganie", "gotowanie", "podróże", "taniec",
	"teatr", "sztuka", "wspinaczka", "pływanie", "koncerty", "wino", "tech", "startupy",
}

// DefaultProfile is the user profile of a fresh session.
func DefaultProfile() entities.Profile {
	return entities.Profile{
		Plan:      entities.UserPlanFree,
		Nickname:  "Ola_88",
		City:      "Warszawa",
		Age:       24,
		Interests: []string{"kawa", "kino", "spacer"},
		AgeRange:  entities.AgeRange{From: 18, To: 35},
		Avatar:    "🙂",
	}
}

// DefaultPartner is the organizer profile of a fresh session.
func DefaultPartner() entities.PartnerProfile {
	return entities.PartnerProfile{
		Plan:     entities.PartnerPlanFree,
		Company:  "Kawiarnia Aurora",
		Category: "gastro",
		City:     "Warszawa",
		Logo:     "🏷️",
	}
}

func intPtr(v int) *int {
	return &v
}

// Demo returns the demo snapshot every session starts with.
func Demo() State {
	return State{
		Role:    entities.UserRole,
		User:    DefaultProfile(),
		Partner: DefaultPartner(),
		People: []entities.Person{
			{ID: "u1", Nickname: "Maja", City: "Warszawa", Age: 26, Interests: []string{"kawa", "joga", "muzyka"}, Avatar: "🌸"},
			{ID: "u2", Nickname: "Alex", City: "Warszawa", Age: 29, Interests: []string{"kino", "gry", "AI"}, Avatar: "🎧"},
			{ID: "u3", Nickname: "Kasia", City: "Warszawa", Age: 24, Interests: []string{"spacer", "psy", "fotografia"}, Avatar: "📸"},
			{ID: "u4", Nickname: "Tomek", City: "Warszawa", Age: 31, Interests: []string{"rower", "góry", "kawa"}, Avatar: "🚴"},
		},
		Events: []entities.Event{
			{
				ID:          "e1",
				Title:       "Koncert na żywo",
				City:        "Warszawa",
				When:        "Sobota 18:00",
				Where:       "Centrum",
				Interest:    "muzyka",
				Description: "Wieczór z muzyką na żywo i luźną atmosferą.",
				Pricing:     entities.Pricing{Mode: entities.FixedPricing, Price: intPtr(49)},
				TicketLink:  defaultTicket,
				Organizer:   entities.Organizer{ID: "p1", Name: "Klub Aurora"},
			},
			{
				ID:          "e2",
				Title:       "Poranna joga",
				City:        "Warszawa",
				When:        "Niedziela 09:00",
				Where:       "Park",
				Interest:    "joga",
				Description: "Spokojna joga na świeżym powietrzu. Weź matę.",
				Pricing:     entities.Pricing{Mode: entities.FreePricing},
				TicketLink:  defaultTicket,
				Organizer:   entities.Organizer{ID: "p2", Name: "Studio Balance"},
			},
			{
				ID:          "e3",
				Title:       "Wieczór planszówek",
				City:        "Warszawa",
				When:        "Piątek 19:00",
				Where:       "Kawiarnia",
				Interest:    "planszówki",
				Description: "Poznaj ludzi przy grach — bez spiny, z uśmiechem.",
				Pricing:     entities.Pricing{Mode: entities.RangePricing, PriceFrom: intPtr(15), PriceTo: intPtr(30)},
				TicketLink:  defaultTicket,
				Organizer:   entities.Organizer{ID: "p1", Name: "Kawiarnia Aurora"},
			},
		},
		Groups: []entities.Group{
			{ID: "g1", Title: "Kawosze Warszawa", InterestTag: "kawa", Members: 128, Description: "Nowe kawiarnie, spotkania, degustacje."},
			{ID: "g2", Title: "Kino i seriale", InterestTag: "kino", Members: 214, Description: "Polecajki, seanse, dyskusje."},
			{ID: "g3", Title: "Spacery i miasta", InterestTag: "spacer", Members: 92, Description: "Trasy, parki, małe odkrycia."},
			{ID: "g4", Title: "AI & Tech", InterestTag: "AI", Members: 301, Description: "Nowinki, projekty, dyskusje."},
			{ID: "g5", Title: "Fotografia", InterestTag: "fotografia", Members: 175, Description: "Kadry, sprzęt, sesje."},
		},
		Chats: []*entities.Chat{
			{
				ID:     "c1",
				With:   entities.ChatPeer{ID: "u2", Nickname: "Alex", Avatar: "🎧"},
				Last:   "Jasne, możemy wyskoczyć na kawę 🙂",
				Unread: 2,
				Messages: []entities.Message{
					{Author: entities.Theirs, Text: "Hej! Widziałem, że lubisz kino."},
					{Author: entities.Mine, Text: "Tak! Masz coś do polecenia?"},
					{Author: entities.Theirs, Text: "Ostatnio mega siadło mi sci-fi 🙂"},
				},
			},
			{
				ID:     "c2",
				With:   entities.ChatPeer{ID: "u1", Nickname: "Maja", Avatar: "🌸"},
				Last:   "W sobotę jestem w centrum!",
				Unread: 0,
				Messages: []entities.Message{
					{Author: entities.Theirs, Text: "Cześć! Też lubię jogę."},
					{Author: entities.Mine, Text: "Super! Chodzisz gdzieś na zajęcia?"},
				},
			},
		},
		EventsTab: projection.NearbyEvents,
	}
}

// Package projection builds filtered, ranked and paginated views over session entities.
//
// Every projection is lazy: nothing is computed until the returned sequence is ranged over,
// and source order survives filtering and ranking ties.
package projection

import (
	"iter"
	"slices"
	"strings"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/matching"
)

// Page sizes.
const (
	NearbyPeopleLimit     = 12
	NearbyEventsLimit     = 8
	GroupSuggestionsLimit = 6
	InviteCandidatesLimit = 6
	InterestCatalogLimit  = 12
	previewTags           = 3
)

// SelfOrganizerID marks events published within the session.
const SelfOrganizerID = "p_me"

// EventsTab selects the events screen subset.
type EventsTab string

const (
	// NearbyEvents shows all events.
	NearbyEvents EventsTab = "nearby"
	// FollowedEvents shows saved or interested events only.
	FollowedEvents EventsTab = "followed"
)

// PersonItem is a person annotated with matching results.
type PersonItem struct {
	Person entities.Person
	Score  int
	Common []string
}

// Limit yields at most n values of seq.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}

// Filter yields values of seq accepted by f.
func Filter[T any](seq iter.Seq[T], f func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

// Map ...
func Map[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func stripHash(q string) string {
	return strings.Replace(q, "#", "", 1)
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}

// Preview returns up to three first tags.
func Preview(tags []string) []string {
	if len(tags) > previewTags {
		return tags[:previewTags]
	}
	return tags
}

// NearbyPeople filters people by nickname and annotates them with the shared score.
// The score is informative only, the source order is kept.
func NearbyPeople(people []entities.Person, interests []string, query string) iter.Seq[PersonItem] {
	q := normalizeQuery(query)

	matched := Filter(slices.Values(people), func(p entities.Person) bool {
		return q == "" || contains(p.Nickname, q)
	})

	return Limit(Map(matched, func(p entities.Person) PersonItem {
		return PersonItem{
			Person: p,
			Score:  matching.SharedScore(interests, p.Interests),
			Common: matching.CommonInterests(interests, p.Interests),
		}
	}), NearbyPeopleLimit)
}

// NearbyEvents returns the first events for the nearby screen.
func NearbyEvents(events []entities.Event) iter.Seq[entities.Event] {
	return Limit(slices.Values(events), NearbyEventsLimit)
}

// Events returns events of the tab matching the query by title or interest tag.
func Events(events []entities.Event, tab EventsTab, query string) iter.Seq[entities.Event] {
	q := normalizeQuery(query)
	tag := stripHash(q)

	return Filter(slices.Values(events), func(e entities.Event) bool {
		if tab == FollowedEvents && !e.Followed() {
			return false
		}
		return q == "" || contains(e.Title, q) || contains(e.Interest, tag)
	})
}

// Groups returns groups whose tag is one of the user's interests; the query narrows them further.
func Groups(groups []entities.Group, interests []string, query string) iter.Seq[entities.Group] {
	q := stripHash(normalizeQuery(query))

	return Filter(slices.Values(groups), func(g entities.Group) bool {
		if !entities.HasTag(interests, g.InterestTag) {
			return false
		}
		return q == "" || contains(g.Title, q) || contains(g.InterestTag, q)
	})
}

// GroupSuggestions ranks people by the number of shared interests, people sharing nothing are dropped.
func GroupSuggestions(people []entities.Person, interests []string) iter.Seq[PersonItem] {
	return func(yield func(PersonItem) bool) {
		ranked := make([]PersonItem, 0, len(people))
		for _, p := range people {
			common := matching.CommonInterests(interests, p.Interests)
			if len(common) == 0 {
				continue
			}
			ranked = append(ranked, PersonItem{
				Person: p,
				Score:  matching.SuggestionScore(len(common)),
				Common: common,
			})
		}

		slices.SortStableFunc(ranked, func(a, b PersonItem) int {
			return len(b.Common) - len(a.Common)
		})

		for v := range Limit(slices.Values(ranked), GroupSuggestionsLimit) {
			if !yield(v) {
				return
			}
		}
	}
}

// InviteCandidates returns people to be invited into a group with the tag.
func InviteCandidates(people []entities.Person, interests []string, tag string) iter.Seq[PersonItem] {
	return func(yield func(PersonItem) bool) {
		candidates := matching.SuggestByInterest(people, tag)
		for v := range Limit(slices.Values(candidates), InviteCandidatesLimit) {
			if !yield(PersonItem{
				Person: v,
				Score:  matching.SharedScore(interests, v.Interests),
				Common: matching.CommonInterests(interests, v.Interests),
			}) {
				return
			}
		}
	}
}

// Chats filters chats by the peer's nickname.
func Chats(chats []*entities.Chat, query string) iter.Seq[*entities.Chat] {
	q := normalizeQuery(query)

	return Filter(slices.Values(chats), func(c *entities.Chat) bool {
		return q == "" || contains(c.With.Nickname, q)
	})
}

// PartnerEvents returns events organized by the company or published within the session.
func PartnerEvents(events []entities.Event, company string) iter.Seq[entities.Event] {
	c := strings.ToLower(company)

	return Filter(slices.Values(events), func(e entities.Event) bool {
		return e.Organizer.ID == SelfOrganizerID || contains(e.Organizer.Name, c)
	})
}

// InterestCatalog returns catalog tags starting with the prefix.
func InterestCatalog(catalog []string, prefix string) iter.Seq[string] {
	p := strings.ToLower(entities.NormalizeTag(prefix))

	return Limit(Filter(slices.Values(catalog), func(s string) bool {
		return p != "" && strings.HasPrefix(strings.ToLower(s), p)
	}), InterestCatalogLimit)
}

// UnreadTotal sums unread counters of all chats.
func UnreadTotal(chats []*entities.Chat) int {
	var n int
	for _, c := range chats {
		n += c.Unread
	}
	return n
}

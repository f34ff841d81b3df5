// Package matching computes interest overlap between the user and other people.
package matching

import (
	"math"
	"strings"

	"github.com/Decentr-net/usly/internal/entities"
)

// MaxScore is the highest reported score. 100 is never reported.
const MaxScore = 99

// CommonInterests returns tags present in both lists ignoring case.
// The order and spelling follow the profile's list.
func CommonInterests(profile, person []string) []string {
	theirs := make(map[string]struct{}, len(person))
	for _, v := range person {
		theirs[strings.ToLower(v)] = struct{}{}
	}

	var out []string
	for _, v := range profile {
		if _, ok := theirs[strings.ToLower(v)]; ok {
			out = append(out, v)
		}
	}

	return out
}

// SharedScore returns the percentage of profile interests the person shares, clamped to MaxScore.
func SharedScore(profile, person []string) int {
	common := len(CommonInterests(profile, person))
	base := len(profile)
	if base < 1 {
		base = 1
	}

	score := int(math.Round(100 * float64(common) / float64(base)))
	if score > MaxScore {
		return MaxScore
	}

	return score
}

// SuggestionScore is the badge value shown next to a suggested person.
func SuggestionScore(common int) int {
	if s := common * 25; s < MaxScore {
		return s
	}
	return MaxScore
}

// SuggestByInterest returns people who have tag among their interests.
func SuggestByInterest(people []entities.Person, tag string) []entities.Person {
	var out []entities.Person
	for _, p := range people {
		if entities.HasTag(p.Interests, tag) {
			out = append(out, p)
		}
	}
	return out
}

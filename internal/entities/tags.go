package entities

import (
	"strings"
)

const maxTagLength = 40

// NormalizeTag strips a leading '#', collapses whitespace and cuts the tag to 40 characters.
func NormalizeTag(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	s = strings.Join(strings.Fields(s), " ")

	if r := []rune(s); len(r) > maxTagLength {
		s = strings.TrimSpace(string(r[:maxTagLength]))
	}

	return s
}

// HasTag reports whether tags contain tag ignoring case.
func HasTag(tags []string, tag string) bool {
	for _, v := range tags {
		if strings.EqualFold(v, tag) {
			return true
		}
	}
	return false
}

// AddTag appends tag when it is not present yet. The second value is false when nothing was added.
func AddTag(tags []string, tag string) ([]string, bool) {
	tag = NormalizeTag(tag)
	if tag == "" || HasTag(tags, tag) {
		return tags, false
	}
	return append(tags, tag), true
}

// RemoveTag removes every case-insensitive occurrence of tag.
func RemoveTag(tags []string, tag string) []string {
	tag = NormalizeTag(tag)

	out := tags[:0:0]
	for _, v := range tags {
		if !strings.EqualFold(v, tag) {
			out = append(out, v)
		}
	}
	return out
}

// AgeRange is a preferred age range, From is never greater than To.
type AgeRange struct {
	From int
	To   int
}

// NewAgeRange orders bounds.
func NewAgeRange(from, to int) AgeRange {
	if from > to {
		from, to = to, from
	}
	return AgeRange{From: from, To: to}
}

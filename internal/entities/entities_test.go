package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTag(t *testing.T) {
	tt := []struct {
		in   string
		want string
	}{
		{in: "kawa", want: "kawa"},
		{in: "#kawa", want: "kawa"},
		{in: "  #gry   planszowe ", want: "gry planszowe"},
		{in: "#", want: ""},
		{in: "", want: ""},
		{in: "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz", want: "abcdefghijklmnopqrstuvwxyzabcdefghijklmn"},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.want, NormalizeTag(tc.in), tc.in)
	}
}

func TestAddTag_Idempotent(t *testing.T) {
	tags := []string{"kawa", "kino"}

	for _, v := range []string{"spacer", "Spacer", "#spacer", "#SPACER"} {
		tags, _ = AddTag(tags, v)
	}

	require.Equal(t, []string{"kawa", "kino", "spacer"}, tags)

	_, ok := AddTag(tags, "  ")
	require.False(t, ok)
}

func TestRemoveTag(t *testing.T) {
	tags := []string{"kawa", "Kino", "spacer"}

	require.Equal(t, []string{"kawa", "spacer"}, RemoveTag(tags, "#kino"))
	require.Equal(t, []string{"kawa", "Kino", "spacer"}, tags)
}

func TestNewAgeRange(t *testing.T) {
	for _, tc := range [][2]int{{18, 35}, {35, 18}, {20, 20}, {99, 16}} {
		r := NewAgeRange(tc[0], tc[1])

		require.LessOrEqual(t, r.From, r.To)
		require.Equal(t, min(tc[0], tc[1]), r.From)
		require.Equal(t, max(tc[0], tc[1]), r.To)
	}
}

func TestNewPricing(t *testing.T) {
	p, err := NewPricing(RangePricing, 100, 30, 15)
	require.NoError(t, err)
	require.Nil(t, p.Price)
	require.Equal(t, 15, *p.PriceFrom)
	require.Equal(t, 30, *p.PriceTo)
	require.Equal(t, "15–30 zł", p.Label())

	p, err = NewPricing(FixedPricing, 49, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 49, *p.Price)
	require.Nil(t, p.PriceFrom)
	require.Nil(t, p.PriceTo)
	require.Equal(t, "49 zł", p.Label())

	p, err = NewPricing(FreePricing, 49, 1, 2)
	require.NoError(t, err)
	require.True(t, p.IsFree())
	require.Nil(t, p.Price)
	require.Equal(t, "0 zł", p.Label())

	_, err = NewPricing(FixedPricing, -1, 0, 0)
	require.True(t, errors.Is(err, ErrInvalidPricing))

	_, err = NewPricing("paid", 0, 0, 0)
	require.True(t, errors.Is(err, ErrInvalidPricing))
}

func TestParsePlans(t *testing.T) {
	p, err := ParseUserPlan("vip")
	require.NoError(t, err)
	require.Equal(t, "VIP", p.Label())

	_, err = ParseUserPlan("pro")
	require.Error(t, err)

	pp, err := ParsePartnerPlan("enterprise")
	require.NoError(t, err)
	require.Equal(t, "ENTERPRISE", pp.Label())

	_, err = ParsePartnerPlan("vip")
	require.Error(t, err)
}

func TestEvent_Followed(t *testing.T) {
	assert.False(t, Event{}.Followed())
	assert.True(t, Event{Saved: true}.Followed())
	assert.True(t, Event{Interested: true}.Followed())
}

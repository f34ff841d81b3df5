package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidPricing is returned when price fields do not fit a pricing mode.
var ErrInvalidPricing = errors.New("invalid pricing")

// PricingMode ...
type PricingMode string

const (
	// FreePricing ...
	FreePricing PricingMode = "free"
	// FixedPricing has a single price.
	FixedPricing PricingMode = "fixed"
	// RangePricing has a price range.
	RangePricing PricingMode = "range"
)

// ParsePricingMode ...
func ParsePricingMode(s string) (PricingMode, error) {
	switch PricingMode(s) {
	case FreePricing, FixedPricing, RangePricing:
		return PricingMode(s), nil
	case "":
		return FreePricing, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidPricing, s)
	}
}

// Pricing holds exactly the fields its mode requires.
type Pricing struct {
	Mode      PricingMode
	Price     *int
	PriceFrom *int
	PriceTo   *int
}

// NewPricing builds pricing for mode and drops fields the mode does not use.
func NewPricing(mode PricingMode, price, from, to int) (Pricing, error) {
	switch mode {
	case FreePricing:
		return Pricing{Mode: FreePricing}, nil
	case FixedPricing:
		if price < 0 {
			return Pricing{}, fmt.Errorf("%w: negative price", ErrInvalidPricing)
		}
		return Pricing{Mode: FixedPricing, Price: &price}, nil
	case RangePricing:
		if from < 0 || to < 0 {
			return Pricing{}, fmt.Errorf("%w: negative price", ErrInvalidPricing)
		}
		if from > to {
			from, to = to, from
		}
		return Pricing{Mode: RangePricing, PriceFrom: &from, PriceTo: &to}, nil
	default:
		return Pricing{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidPricing, mode)
	}
}

// IsFree ...
func (p Pricing) IsFree() bool {
	return p.Mode == FreePricing
}

// Label formats price as shown on list tags.
func (p Pricing) Label() string {
	switch p.Mode {
	case FixedPricing:
		return fmt.Sprintf("%d zł", *p.Price)
	case RangePricing:
		return fmt.Sprintf("%d–%d zł", *p.PriceFrom, *p.PriceTo)
	default:
		return "0 zł"
	}
}

// Organizer is a weak reference to the partner who published an event.
type Organizer struct {
	ID   string
	Name string
}

// Event ...
type Event struct {
	ID          string
	Title       string
	City        string
	When        string
	Where       string
	Interest    string
	Description string
	Pricing     Pricing
	TicketLink  string
	Saved       bool
	Interested  bool
	Organizer   Organizer
}

// Followed reports whether the user bookmarked or marked interest in the event.
func (e Event) Followed() bool {
	return e.Saved || e.Interested
}

// Package entities contains main entities of service.
package entities

import (
	"fmt"
	"strings"
)

// Role is a kind of account the session acts as.
type Role string

const (
	// UserRole ...
	UserRole Role = "user"
	// PartnerRole is an organizer/business account.
	PartnerRole Role = "partner"
)

// Label returns a human readable role name.
func (r Role) Label() string {
	if r == PartnerRole {
		return "Organizator"
	}
	return "Towarzysz"
}

// UserPlan ...
type UserPlan string

// Ordered from the cheapest.
const (
	UserPlanFree    UserPlan = "free"
	UserPlanPlus    UserPlan = "plus"
	UserPlanPremium UserPlan = "premium"
	UserPlanVIP     UserPlan = "vip"
)

// UserPlans lists all user plans in tier order.
var UserPlans = []UserPlan{UserPlanFree, UserPlanPlus, UserPlanPremium, UserPlanVIP} // nolint:gochecknoglobals

// ParseUserPlan ...
func ParseUserPlan(s string) (UserPlan, error) {
	for _, v := range UserPlans {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown user plan %q", s)
}

// Label returns plan name as it is shown on pills.
func (p UserPlan) Label() string {
	return strings.ToUpper(string(p))
}

// PartnerPlan ...
type PartnerPlan string

// Ordered from the cheapest.
const (
	PartnerPlanFree       PartnerPlan = "free"
	PartnerPlanPro        PartnerPlan = "pro"
	PartnerPlanPremium    PartnerPlan = "premium"
	PartnerPlanEnterprise PartnerPlan = "enterprise"
)

// PartnerPlans lists all partner plans in tier order.
var PartnerPlans = []PartnerPlan{PartnerPlanFree, PartnerPlanPro, PartnerPlanPremium, PartnerPlanEnterprise} // nolint:gochecknoglobals

// ParsePartnerPlan ...
func ParsePartnerPlan(s string) (PartnerPlan, error) {
	for _, v := range PartnerPlans {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown partner plan %q", s)
}

// Label returns plan name as it is shown on pills.
func (p PartnerPlan) Label() string {
	return strings.ToUpper(string(p))
}

// Coordinates ...
type Coordinates struct {
	Lat float64
	Lng float64
}

// Profile is the user's own editable identity and preference record.
type Profile struct {
	Nickname  string
	City      string
	Age       int
	Bio       string
	BirthDate string
	Interests []string
	AgeRange  AgeRange
	Plan      UserPlan
	Geo       *Coordinates
	Avatar    string
}

// PartnerProfile is the organizer-facing profile.
type PartnerProfile struct {
	Company  string
	Category string
	City     string
	About    string
	Plan     PartnerPlan
	Logo     string
}

// Person is someone the user can meet.
type Person struct {
	ID        string
	Nickname  string
	City      string
	Age       int
	Interests []string
	Avatar    string
}

// Group ...
type Group struct {
	ID          string
	Title       string
	InterestTag string
	Members     int
	Description string
}

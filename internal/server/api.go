package server

import (
	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/render"
	"github.com/Decentr-net/usly/internal/store"
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

// SessionResponse is returned by every session endpoint.
type SessionResponse struct {
	ID    string       `json:"id"`
	Frame render.Frame `json:"frame"`
}

// RoleRequest ...
type RoleRequest struct {
	Role string `json:"role"`
}

// PlanRequest ...
type PlanRequest struct {
	Plan string `json:"plan"`
}

// RegisterRequest ...
type RegisterRequest struct {
	AcceptTerms   bool   `json:"accept_terms"`
	AcceptPrivacy bool   `json:"accept_privacy"`
	Email         string `json:"email"`
	Password      string `json:"password"`

	Nickname  string `json:"nickname"`
	City      string `json:"city"`
	BirthDate string `json:"birth_date"`
	AgeFrom   int    `json:"age_from"`
	AgeTo     int    `json:"age_to"`

	Company     string `json:"company"`
	Category    string `json:"category"`
	PartnerCity string `json:"partner_city"`
	About       string `json:"about"`
}

func (r RegisterRequest) toForm() store.RegisterForm {
	return store.RegisterForm{
		AcceptTerms:   r.AcceptTerms,
		AcceptPrivacy: r.AcceptPrivacy,
		Email:         r.Email,
		Password:      r.Password,
		Nickname:      r.Nickname,
		City:          r.City,
		BirthDate:     r.BirthDate,
		AgeFrom:       r.AgeFrom,
		AgeTo:         r.AgeTo,
		Company:       r.Company,
		Category:      r.Category,
		PartnerCity:   r.PartnerCity,
		About:         r.About,
	}
}

// SettingsRequest holds settings of both roles, fields of the other role are ignored.
type SettingsRequest struct {
	Nickname string `json:"nickname"`
	Bio      string `json:"bio"`
	City     string `json:"city"`
	AgeFrom  int    `json:"age_from"`
	AgeTo    int    `json:"age_to"`

	Company  string `json:"company"`
	Category string `json:"category"`
	About    string `json:"about"`
}

// ProfileSetupRequest ...
type ProfileSetupRequest struct {
	City string `json:"city"`
	Bio  string `json:"bio"`
}

// InterestRequest ...
type InterestRequest struct {
	Tag string `json:"tag"`
}

// AgeRangeRequest ...
type AgeRangeRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// MessageRequest ...
type MessageRequest struct {
	Text string `json:"text"`
}

// EventsTabRequest ...
type EventsTabRequest struct {
	Tab string `json:"tab"`
}

// QueryRequest ...
type QueryRequest struct {
	List  string `json:"list"`
	Query string `json:"query"`
}

// PublishRequest ...
type PublishRequest struct {
	Title       string `json:"title"`
	City        string `json:"city"`
	When        string `json:"when"`
	Where       string `json:"where"`
	Interest    string `json:"interest"`
	Description string `json:"description"`
	PricingMode string `json:"pricing_mode"`
	Price       int    `json:"price"`
	PriceFrom   int    `json:"price_from"`
	PriceTo     int    `json:"price_to"`
	TicketLink  string `json:"ticket_link"`
}

func (r PublishRequest) toForm() store.PublishForm {
	return store.PublishForm{
		Title:       r.Title,
		City:        r.City,
		When:        r.When,
		Where:       r.Where,
		Interest:    r.Interest,
		Description: r.Description,
		PricingMode: r.PricingMode,
		Price:       r.Price,
		PriceFrom:   r.PriceFrom,
		PriceTo:     r.PriceTo,
		TicketLink:  r.TicketLink,
	}
}

// Location errors reported by the client device.
const (
	LocationDenied      = "denied"
	LocationTimeout     = "timeout"
	LocationUnavailable = "unavailable"
)

// LocationRequest is a position determined by the client device or the reason it could not be.
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Timestamp is unix milliseconds of the fix. The time of the request is used when it is empty.
	Timestamp int64  `json:"timestamp"`
	Error     string `json:"error"`
}

// BugReportRequest ...
type BugReportRequest struct {
	Message string `json:"message"`
}

// FeedbackRequest ...
type FeedbackRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	View    string `json:"view"`
	Role    string `json:"role"`
}

// Feedback ...
type Feedback struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	View      string `json:"view"`
	Role      string `json:"role"`
	IP        string `json:"ip"`
	CreatedAt int64  `json:"created_at"`
}

func toAPIFeedback(f *entities.Feedback) Feedback {
	return Feedback{
		ID:        f.ID,
		Type:      f.Type,
		Message:   f.Message,
		View:      f.View,
		Role:      f.Role,
		IP:        f.IP,
		CreatedAt: f.CreatedAt.Unix(),
	}
}

// ListFeedbackResponse ...
type ListFeedbackResponse struct {
	Feedback []Feedback `json:"feedback"`
}

// InterestsResponse ...
type InterestsResponse struct {
	Interests []string `json:"interests"`
}

// View ...
type View struct {
	Name        string              `json:"name"`
	Projections []render.Projection `json:"projections"`
}

package store

import (
	"strings"
	"time"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/projection"
)

// Registration limits.
const (
	MinPasswordLength = 8
	MinAge            = 16
	DefaultAgeFrom    = 16
	DefaultAgeTo      = 99
	defaultCategory   = "inne"
	defaultCity       = "Warszawa"
	birthDateLayout   = "2006-01-02"
)

// RegisterForm ...
type RegisterForm struct {
	AcceptTerms   bool
	AcceptPrivacy bool
	Email         string
	Password      string

	Nickname  string
	City      string
	BirthDate string
	AgeFrom   int
	AgeTo     int

	Company     string
	Category    string
	PartnerCity string
	About       string
}

// SettingsForm holds user settings. Empty values keep the current ones, except Bio.
type SettingsForm struct {
	Nickname string
	Bio      string
	City     string
	AgeFrom  int
	AgeTo    int
}

// PartnerSettingsForm holds organizer settings. Empty values keep the current ones, except About.
type PartnerSettingsForm struct {
	Company  string
	Category string
	City     string
	About    string
}

// ProfileSetupForm ...
type ProfileSetupForm struct {
	City string
	Bio  string
}

// SelectRole ...
func (s *Store) SelectRole(role string) error {
	switch r := entities.Role(role); r {
	case entities.UserRole, entities.PartnerRole:
		s.state.Role = r
		return nil
	default:
		return invalid("Nieznana rola: %s", role)
	}
}

// Login marks the session as logged in.
func (s *Store) Login() {
	s.state.LoggedIn = true
}

// Logout resets profiles, selection and filters to defaults.
func (s *Store) Logout() {
	s.state.LoggedIn = false
	s.state.User = DefaultProfile()
	s.state.Partner = DefaultPartner()
	s.state.Selection = Selection{}
	s.state.Queries = map[List]string{}
	s.state.EventsTab = projection.NearbyEvents
}

// Register validates the form for the current role and creates the account.
func (s *Store) Register(f RegisterForm) error {
	if !f.AcceptTerms || !f.AcceptPrivacy {
		return invalid("Zaznacz wymagane zgody (*)")
	}

	email, password := strings.TrimSpace(f.Email), strings.TrimSpace(f.Password)
	if email == "" || len([]rune(password)) < MinPasswordLength {
		return invalid("Uzupełnij email i hasło (min. %d znaków)", MinPasswordLength)
	}

	if s.state.Role == entities.PartnerRole {
		company, city := strings.TrimSpace(f.Company), strings.TrimSpace(f.PartnerCity)
		if company == "" || city == "" {
			return invalid("Uzupełnij nazwę i miasto organizatora")
		}

		category := strings.TrimSpace(f.Category)
		if category == "" {
			category = defaultCategory
		}

		s.state.Partner.Company = company
		s.state.Partner.Category = category
		s.state.Partner.City = city
		s.state.Partner.About = strings.TrimSpace(f.About)
		s.state.LoggedIn = true

		return nil
	}

	birthDate := strings.TrimSpace(f.BirthDate)
	if birthDate == "" {
		return invalid("Podaj datę urodzenia.")
	}

	age, err := ageAt(birthDate, s.now())
	if err != nil {
		return invalid("Nieprawidłowa data urodzenia.")
	}
	if age < MinAge {
		return invalid("Nie możesz się zarejestrować – wymagane jest ukończone %d lat.", MinAge)
	}

	city, nick := strings.TrimSpace(f.City), strings.TrimSpace(f.Nickname)
	if city == "" || nick == "" {
		return invalid("Uzupełnij wiek, miasto i nick")
	}

	from, to := f.AgeFrom, f.AgeTo
	if from == 0 {
		from = DefaultAgeFrom
	}
	if to == 0 {
		to = DefaultAgeTo
	}

	s.state.User.City = city
	s.state.User.Nickname = nick
	s.state.User.Age = age
	s.state.User.BirthDate = birthDate
	s.state.User.AgeRange = entities.NewAgeRange(from, to)
	s.state.LoggedIn = true

	return nil
}

func ageAt(birthDate string, now time.Time) (int, error) {
	b, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return 0, err
	}

	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}

	return age, nil
}

// SetUserPlan ...
func (s *Store) SetUserPlan(plan string) error {
	p, err := entities.ParseUserPlan(plan)
	if err != nil {
		return invalid("Nieznany plan: %s", plan)
	}

	s.state.User.Plan = p

	return nil
}

// SetPartnerPlan ...
func (s *Store) SetPartnerPlan(plan string) error {
	p, err := entities.ParsePartnerPlan(plan)
	if err != nil {
		return invalid("Nieznany plan: %s", plan)
	}

	s.state.Partner.Plan = p

	return nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

// SaveSettings ...
func (s *Store) SaveSettings(f SettingsForm) {
	u := &s.state.User

	u.Nickname = orDefault(f.Nickname, u.Nickname)
	u.Bio = strings.TrimSpace(f.Bio)
	u.City = orDefault(f.City, u.City)

	from, to := f.AgeFrom, f.AgeTo
	if from == 0 {
		from = u.AgeRange.From
	}
	if to == 0 {
		to = u.AgeRange.To
	}
	u.AgeRange = entities.NewAgeRange(from, to)
}

// SavePartnerSettings ...
func (s *Store) SavePartnerSettings(f PartnerSettingsForm) {
	p := &s.state.Partner

	p.Company = orDefault(f.Company, p.Company)
	p.Category = orDefault(f.Category, p.Category)
	p.City = orDefault(f.City, p.City)
	p.About = strings.TrimSpace(f.About)
}

// FinishProfileSetup ...
func (s *Store) FinishProfileSetup(f ProfileSetupForm) {
	s.state.User.City = orDefault(f.City, s.state.User.City)
	s.state.User.Bio = orDefault(f.Bio, s.state.User.Bio)
}

// AddInterest adds a normalized tag to the user's interests and returns it.
func (s *Store) AddInterest(tag string) (string, error) {
	t := entities.NormalizeTag(tag)
	if t == "" {
		return "", invalid("Podaj zainteresowanie")
	}

	interests, ok := entities.AddTag(s.state.User.Interests, t)
	if !ok {
		return t, invalid("To zainteresowanie już jest dodane")
	}

	s.state.User.Interests = interests

	return t, nil
}

// RemoveInterest removes a tag from the user's interests and returns its normalized form.
func (s *Store) RemoveInterest(tag string) string {
	s.state.User.Interests = entities.RemoveTag(s.state.User.Interests, tag)
	return entities.NormalizeTag(tag)
}

// SetAgeRange stores the ordered range.
func (s *Store) SetAgeRange(from, to int) error {
	if from <= 0 || to <= 0 {
		return invalid("Podaj zakres wieku")
	}

	s.state.User.AgeRange = entities.NewAgeRange(from, to)

	return nil
}

// SetGeo stores coordinates of the user. An empty city falls back to the default one.
func (s *Store) SetGeo(c entities.Coordinates) {
	s.state.User.Geo = &c

	if strings.TrimSpace(s.state.User.City) == "" {
		s.state.User.City = defaultCity
	}
}

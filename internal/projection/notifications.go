package projection

import (
	"iter"
	"slices"

	"github.com/Decentr-net/usly/internal/entities"
)

// Notification is an inbox entry of the notifications screen.
type Notification struct {
	Title string
	Body  string
}

var (
	userNotifications = []Notification{ // nolint:gochecknoglobals
		{Title: "Nowa propozycja osoby", Body: "Ktoś z podobnymi # jest w okolicy."},
		{Title: "Wydarzenie jutro", Body: "Masz zapisane wydarzenie — sprawdź godzinę."},
	}
	partnerNotifications = []Notification{ // nolint:gochecknoglobals
		{Title: "Nowe zainteresowanie", Body: "Ktoś oznaczył się jako zainteresowany Twoim wydarzeniem."},
		{Title: "Nowa wiadomość", Body: "Użytkownik napisał do Ciebie."},
	}
)

// Notifications returns inbox entries for the role.
func Notifications(role entities.Role) iter.Seq[Notification] {
	if role == entities.PartnerRole {
		return slices.Values(partnerNotifications)
	}
	return slices.Values(userNotifications)
}

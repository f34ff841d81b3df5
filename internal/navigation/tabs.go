package navigation

import (
	"github.com/Decentr-net/usly/internal/entities"
)

// Tab is a tab bar item.
type Tab string

// User tabs.
const (
	NoTab           Tab = ""
	NearbyTab       Tab = "nearby"
	ChatsTab        Tab = "chats"
	EventsTab       Tab = "events"
	GroupsTab       Tab = "groups"
	SettingsTab     Tab = "settings"
	DashboardTab    Tab = "dashboard"
	CreateTab       Tab = "create"
	MyEventsTab     Tab = "my_events"
	PartnerMsgsTab  Tab = "messages"
	PartnerSetupTab Tab = "partner_settings"
)

// ActiveTab returns the tab bar item to be highlighted for the view.
func ActiveTab(role entities.Role, v View) Tab {
	if role == entities.PartnerRole {
		switch v {
		case PartnerDashboard:
			return DashboardTab
		case PartnerCreate:
			return CreateTab
		case PartnerEvents:
			return MyEventsTab
		case PartnerMessages:
			return PartnerMsgsTab
		case Settings:
			return PartnerSetupTab
		}
		return NoTab
	}

	switch v {
	case Nearby:
		return NearbyTab
	case Chats, ChatThread:
		return ChatsTab
	case Events, EventDetail:
		return EventsTab
	case Groups, GroupThread:
		return GroupsTab
	case Settings:
		return SettingsTab
	}
	return NoTab
}

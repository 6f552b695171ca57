package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`               // IANA timezone name, or "Local" for the system timezone
	NotificationsEnabled bool   `json:"notifications_enabled"`  // whether event reminders are delivered
	ReminderLeadMin      int    `json:"reminder_lead_min"`      // default reminder lead time in minutes
}

// DefaultSettings returns the settings a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		Timezone:             "Local",
		NotificationsEnabled: true,
		ReminderLeadMin:      30,
	}
}

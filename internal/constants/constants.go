package constants

const (
	AppName = "classtrack"
	Version = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultEventTime is the time of day assumed for events without one.
	DefaultEventTime = "09:00"

	// DefaultReminderLeadMin is the reminder lead time when an event doesn't set one.
	DefaultReminderLeadMin = 30

	// DefaultWeeklyTrendWeeks is the window size for the weekly attendance trend.
	DefaultWeeklyTrendWeeks = 8

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "classtrack-"

	// Notifier constants
	NotifierLockfileName   = "classtrack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.classtrack.app"
	PendingFileName        = "reminders.json"

	// ConsoleLookahead bounds the fallback delivery window (hours).
	ConsoleLookaheadHours = 24
)

// SubjectColors is the default palette cycled through when a subject
// doesn't pick a color explicitly.
var SubjectColors = []string{
	"#6366f1", // indigo
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#f43f5e", // rose
	"#f97316", // orange
	"#eab308", // yellow
	"#22c55e", // green
	"#14b8a6", // teal
	"#06b6d4", // cyan
	"#3b82f6", // blue
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/classtrack/classtrack/internal/backup"
	"github.com/classtrack/classtrack/internal/logger"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/notifier"
	"github.com/classtrack/classtrack/internal/reminder"
	"github.com/classtrack/classtrack/internal/storage"
	"github.com/classtrack/classtrack/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Registry *notifier.Registry

	scheduler *reminder.Scheduler
}

// Scheduler lazily builds and initializes the reminder scheduler: tray
// platform primary, console fallback. Honors the persisted settings: a
// disabled scheduler is returned when notifications are turned off, and
// the configured lead becomes the default for events without their own.
// Initialization failures disable reminders rather than erroring.
func (c *Context) Scheduler(ctx context.Context) *reminder.Scheduler {
	if c.scheduler != nil {
		return c.scheduler
	}

	loc := time.Local
	enabled := true
	opts := []reminder.Option{}
	if settings, err := c.Store.GetSettings(); err == nil {
		if l, err := utils.LoadLocation(settings.Timezone); err == nil {
			loc = l
		}
		opts = append(opts, reminder.WithDefaultLead(settings.ReminderLeadMin))
		enabled = settings.NotificationsEnabled
	}
	opts = append(opts, reminder.WithLocation(loc))

	primary := notifier.NewTrayPlatform(c.Registry)
	fallback := notifier.NewConsolePlatform(c.Registry, os.Stdout)
	c.scheduler = reminder.New(primary, fallback, opts...)
	if enabled {
		c.scheduler.Initialize(ctx)
	}
	return c.scheduler
}

// Now returns the current time in the configured timezone, falling back
// to the system clock when settings are unavailable.
func (c *Context) Now() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowFromSettings(settings)
	if err != nil {
		return time.Now()
	}
	return now
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.Create()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// NewID generates a fresh entity id.
func NewID() string {
	return uuid.New().String()
}

// ParseDay parses a weekday name or abbreviation into a DayOfWeek.
func ParseDay(s string) (models.DayOfWeek, error) {
	dayMap := map[string]models.DayOfWeek{
		"mon": models.Monday, "monday": models.Monday,
		"tue": models.Tuesday, "tuesday": models.Tuesday,
		"wed": models.Wednesday, "wednesday": models.Wednesday,
		"thu": models.Thursday, "thursday": models.Thursday,
		"fri": models.Friday, "friday": models.Friday,
		"sat": models.Saturday, "saturday": models.Saturday,
		"sun": models.Sunday, "sunday": models.Sunday,
	}

	if day, ok := dayMap[strings.TrimSpace(strings.ToLower(s))]; ok {
		return day, nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

// ShortID renders an id for table display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ResolveClass finds a class by full or shortened id.
func ResolveClass(store storage.Provider, id string) (models.ClassSchedule, error) {
	if class, err := store.GetClass(id); err == nil {
		return class, nil
	}

	classes, err := store.GetAllClasses()
	if err != nil {
		return models.ClassSchedule{}, err
	}
	var matches []models.ClassSchedule
	for _, class := range classes {
		if strings.HasPrefix(class.ID, id) {
			matches = append(matches, class)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.ClassSchedule{}, fmt.Errorf("class not found: %s", id)
	default:
		return models.ClassSchedule{}, fmt.Errorf("ambiguous class id: %s matches %d classes", id, len(matches))
	}
}

// ResolveSubject finds a subject by full or shortened id, or by exact name.
func ResolveSubject(store storage.Provider, idOrName string) (models.Subject, error) {
	if subject, err := store.GetSubject(idOrName); err == nil {
		return subject, nil
	}

	subjects, err := store.GetAllSubjects()
	if err != nil {
		return models.Subject{}, err
	}
	var matches []models.Subject
	for _, subject := range subjects {
		if strings.HasPrefix(subject.ID, idOrName) || strings.EqualFold(subject.Name, idOrName) {
			matches = append(matches, subject)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Subject{}, fmt.Errorf("subject not found: %s", idOrName)
	default:
		return models.Subject{}, fmt.Errorf("ambiguous subject: %s matches %d subjects", idOrName, len(matches))
	}
}

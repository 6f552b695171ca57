package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/utils"
)

type SetupCmd struct {
	Timezone      string `help:"IANA timezone (skips the prompt)."`
	SemesterStart string `help:"Semester start date YYYY-MM-DD (skips the prompt)."`
	SemesterEnd   string `help:"Semester end date YYYY-MM-DD (skips the prompt)."`
}

func (c *SetupCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	timezone := c.Timezone
	if timezone == "" {
		timezone = settings.Timezone
	}
	start, end, err := ctx.Store.Semester()
	if err != nil {
		return err
	}
	if c.SemesterStart != "" {
		start = c.SemesterStart
	}
	if c.SemesterEnd != "" {
		end = c.SemesterEnd
	}
	notifications := settings.NotificationsEnabled
	lead := strconv.Itoa(settings.ReminderLeadMin)

	interactive := c.Timezone == "" || c.SemesterStart == "" || c.SemesterEnd == ""
	if interactive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Timezone").
					Description("IANA name, e.g. America/New_York, or Local").
					Value(&timezone).
					Validate(func(s string) error {
						if !utils.ValidateTimezone(s) {
							return fmt.Errorf("unknown timezone: %s", s)
						}
						return nil
					}),
				huh.NewInput().
					Title("Semester start").
					Description("YYYY-MM-DD").
					Value(&start).
					Validate(validateDate),
				huh.NewInput().
					Title("Semester end").
					Description("YYYY-MM-DD").
					Value(&end).
					Validate(validateDate),
				huh.NewConfirm().
					Title("Enable reminders?").
					Value(&notifications),
				huh.NewInput().
					Title("Reminder lead time (minutes)").
					Value(&lead).
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n < 0 {
							return fmt.Errorf("must be a non-negative number")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("setup cancelled: %w", err)
		}
	}

	if !utils.ValidateTimezone(timezone) {
		return fmt.Errorf("unknown timezone: %s", timezone)
	}
	if err := validateDate(start); err != nil {
		return fmt.Errorf("semester start: %w", err)
	}
	if err := validateDate(end); err != nil {
		return fmt.Errorf("semester end: %w", err)
	}
	if end < start {
		return fmt.Errorf("semester end %s is before start %s", end, start)
	}

	settings.Timezone = timezone
	settings.NotificationsEnabled = notifications
	if n, err := strconv.Atoi(lead); err == nil {
		settings.ReminderLeadMin = n
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	if err := ctx.Store.SetSemesterDates(start, end); err != nil {
		return err
	}
	if err := ctx.Store.CompleteSetup(); err != nil {
		return err
	}

	fmt.Printf("Setup complete. Semester %s to %s, timezone %s.\n", start, end, timezone)
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", s)
	}
	return nil
}

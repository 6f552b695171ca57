package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
)

type EventListCmd struct {
	All  bool   `short:"a" help:"Include past events."`
	Type string `enum:",exam,quiz,presentation,project,holiday,other" default:"" help:"Only show events of this type."`
}

func (c *EventListCmd) Run(ctx *cli.Context) error {
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return err
	}

	now := ctx.Now()
	today := now.Format(constants.DateFormat)
	filtered := make([]models.ClassEvent, 0, len(events))
	for _, e := range events {
		if !c.All && e.Date < today {
			continue
		}
		if c.Type != "" && e.Type != models.EventType(c.Type) {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})

	if len(filtered) == 0 {
		fmt.Println("No events.")
		return nil
	}

	for _, e := range filtered {
		parts := []string{fmt.Sprintf("%-12s", stats.FormatDate(e.Date, now))}
		if e.Time != "" {
			parts = append(parts, stats.FormatTimeOfDay(e.Time))
		}
		parts = append(parts, fmt.Sprintf("[%s]", e.Type), e.Title)
		if e.ReminderEnabled {
			parts = append(parts, "(reminder)")
		}
		fmt.Printf("%s (%s)\n", strings.Join(parts, " "), cli.ShortID(e.ID))
	}
	return nil
}

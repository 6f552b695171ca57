package cli

import (
	"fmt"
	"strings"

	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
	"github.com/classtrack/classtrack/internal/utils"
)

type StatsCmd struct {
	Class string `short:"c" help:"Only aggregate this class (id prefix ok)."`
	Weeks int    `short:"w" default:"8" help:"Weeks of trend history to show."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	records, err := ctx.Store.GetAllAttendance()
	if err != nil {
		return err
	}

	var class models.ClassSchedule
	classID := ""
	title := "All classes"
	if c.Class != "" {
		class, err = ResolveClass(ctx.Store, c.Class)
		if err != nil {
			return err
		}
		classID = class.ID
		title = class.SubjectName
	}

	s := stats.Calculate(records, classID)
	if classID != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.ClassID == classID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	fmt.Printf("Attendance: %s\n\n", title)
	if s.Total == 0 {
		fmt.Println("  No attendance recorded yet.")
		return nil
	}

	fmt.Printf("  %d%% attended (%d sessions)\n", s.Percentage, s.Total)
	fmt.Printf("  present %d  late %d  absent %d  excused %d\n", s.Present, s.Late, s.Absent, s.Excused)

	if classID != "" {
		if remaining := remainingSessions(ctx, class); remaining > 0 {
			fmt.Printf("  %d sessions left this semester\n", remaining)
		}
	}

	weeks := c.Weeks
	if weeks <= 0 {
		weeks = stats.DefaultWeeks
	}
	trend := stats.WeeklyData(records, weeks, ctx.Now())

	fmt.Printf("\nWeekly trend (last %d weeks):\n", weeks)
	for _, bucket := range trend {
		attended := bucket.Present + bucket.Late
		total := attended + bucket.Absent
		bar := strings.Repeat("█", attended) + strings.Repeat("░", bucket.Absent)
		if total == 0 {
			bar = "-"
		}
		fmt.Printf("  %-7s %s\n", bucket.Week, bar)
	}
	return nil
}

// remainingSessions counts the class's dates from today through the
// semester end. Returns 0 when semester dates are unset or invalid.
func remainingSessions(ctx *Context, class models.ClassSchedule) int {
	start, end, err := ctx.Store.Semester()
	if err != nil || end == "" {
		return 0
	}
	now := ctx.Now()
	from := utils.StartOfDay(now)
	if start != "" {
		if s, err := utils.ParseDateInLocation(start, now.Location()); err == nil && s.After(from) {
			from = s
		}
	}
	until, err := utils.ParseDateInLocation(end, now.Location())
	if err != nil {
		return 0
	}
	return len(stats.UpcomingClassDates(class, from, until))
}

package events

import (
	"context"
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
)

type EventDeleteCmd struct {
	ID  string `arg:"" help:"Event id (prefix ok)."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *EventDeleteCmd) Run(ctx *cli.Context) error {
	event, err := resolveEvent(ctx, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete event %q on %s? [y/N] ", event.Title, event.Date)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.DeleteEvent(event.ID); err != nil {
		return err
	}

	bg := context.Background()
	ctx.Scheduler(bg).CancelEvent(bg, event.ID)

	fmt.Printf("Deleted %q\n", event.Title)
	return nil
}

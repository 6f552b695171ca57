package cli

import (
	"fmt"
	"os"

	"github.com/classtrack/classtrack/internal/notifier"
)

// NotifyCmd delivers every reminder whose fire time has passed. Meant to
// run from cron or a systemd timer every few minutes; it exits quickly
// when nothing is due.
type NotifyCmd struct {
	Quiet bool `short:"q" help:"Suppress the summary line."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	senders := map[notifier.Channel]notifier.Sender{
		notifier.ChannelTray:    notifier.NewTrayPlatform(ctx.Registry),
		notifier.ChannelConsole: notifier.NewConsolePlatform(ctx.Registry, os.Stdout),
	}

	delivered := notifier.DeliverDue(ctx.Registry, ctx.Now(), senders)
	if !c.Quiet {
		fmt.Printf("Delivered %d reminders\n", delivered)
	}
	return nil
}

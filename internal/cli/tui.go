package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/classtrack/classtrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	done, err := ctx.Store.IsSetupComplete()
	if err != nil {
		return err
	}
	if !done {
		fmt.Println("Run 'classtrack setup' before launching the dashboard.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

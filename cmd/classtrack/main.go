package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/cli/assignments"
	"github.com/classtrack/classtrack/internal/cli/attendance"
	"github.com/classtrack/classtrack/internal/cli/classes"
	"github.com/classtrack/classtrack/internal/cli/events"
	"github.com/classtrack/classtrack/internal/cli/subjects"
	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/errors"
	"github.com/classtrack/classtrack/internal/logger"
	"github.com/classtrack/classtrack/internal/notifier"
	"github.com/classtrack/classtrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.json or .db)." type:"path" default:"~/.config/classtrack/classtrack.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize classtrack storage."`
	Setup cli.SetupCmd `cmd:"" help:"Configure semester dates and preferences."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive dashboard." default:"1"`

	Today cli.TodayCmd `cmd:"" help:"Show today's classes, events and due work."`
	Week  cli.WeekCmd  `cmd:"" help:"Show the weekly timetable."`
	Stats cli.StatsCmd `cmd:"" help:"Show attendance statistics."`

	Subject struct {
		Add    subjects.SubjectAddCmd    `cmd:"" help:"Add a subject."`
		List   subjects.SubjectListCmd   `cmd:"" help:"List subjects."`
		Edit   subjects.SubjectEditCmd   `cmd:"" help:"Edit a subject."`
		Delete subjects.SubjectDeleteCmd `cmd:"" help:"Delete a subject and its classes."`
	} `cmd:"" help:"Manage subjects."`

	Class struct {
		Add    classes.ClassAddCmd    `cmd:"" help:"Schedule a weekly class."`
		List   classes.ClassListCmd   `cmd:"" help:"List scheduled classes."`
		Edit   classes.ClassEditCmd   `cmd:"" help:"Edit a class."`
		Delete classes.ClassDeleteCmd `cmd:"" help:"Delete a class and its records."`
	} `cmd:"" help:"Manage the weekly timetable."`

	Mark       attendance.MarkCmd `cmd:"" help:"Mark attendance for a class."`
	Attendance struct {
		List attendance.ListCmd `cmd:"" help:"List attendance records."`
	} `cmd:"" help:"Inspect attendance records."`

	Assignment struct {
		Add    assignments.AssignmentAddCmd    `cmd:"" help:"Add an assignment."`
		List   assignments.AssignmentListCmd   `cmd:"" help:"List assignments."`
		Done   assignments.AssignmentDoneCmd   `cmd:"" help:"Set an assignment's status."`
		Edit   assignments.AssignmentEditCmd   `cmd:"" help:"Edit an assignment."`
		Delete assignments.AssignmentDeleteCmd `cmd:"" help:"Delete an assignment."`
	} `cmd:"" help:"Manage assignments."`

	Event struct {
		Add    events.EventAddCmd    `cmd:"" help:"Add a calendar event."`
		List   events.EventListCmd   `cmd:"" help:"List events."`
		Edit   events.EventEditCmd   `cmd:"" help:"Edit an event."`
		Delete events.EventDeleteCmd `cmd:"" help:"Delete an event."`
		Sync   events.EventSyncCmd   `cmd:"" help:"Rebuild reminders from stored events."`
	} `cmd:"" help:"Manage exams, quizzes and other events."`

	Notify cli.NotifyCmd `cmd:"" help:"Deliver due reminders (run from cron)."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Reset  cli.ResetCmd  `cmd:"" help:"Erase all data."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Class schedule and attendance tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the store backend by file extension.
	var store storage.Provider
	switch strings.ToLower(filepath.Ext(CLI.Config)) {
	case ".db", ".sqlite":
		store = storage.NewSQLiteStore(CLI.Config)
	default:
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:    store,
		Registry: notifier.NewRegistry(filepath.Dir(CLI.Config)),
	}

	if ctx.Command() != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\nRun 'classtrack init' first.\n", errors.Format(err))
			os.Exit(1)
		}
		defer store.Close()
	}

	errors.Fatal(ctx.Run(appCtx))
}

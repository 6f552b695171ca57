package notifier

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/classtrack/classtrack/internal/reminder"
)

func TestConsolePlatform_AlwaysGranted(t *testing.T) {
	p := NewConsolePlatform(NewRegistry(t.TempDir()), &bytes.Buffer{})

	state, err := p.CheckPermission(context.Background())
	if err != nil || state != reminder.PermissionGranted {
		t.Errorf("expected granted, got %s (err %v)", state, err)
	}
}

func TestConsolePlatform_ScheduleSkipsBeyondLookahead(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	registry := NewRegistry(t.TempDir())
	p := NewConsolePlatform(registry, &bytes.Buffer{})
	p.now = func() time.Time { return now }

	near := reminder.Notification{ID: 1, Title: "Quiz", At: now.Add(2 * time.Hour)}
	far := reminder.Notification{ID: 2, Title: "Exam", At: now.Add(48 * time.Hour)}

	if err := p.ScheduleAt(context.Background(), near); err != nil {
		t.Fatalf("ScheduleAt failed: %v", err)
	}
	// Beyond the 24h window: accepted silently, never queued.
	if err := p.ScheduleAt(context.Background(), far); err != nil {
		t.Fatalf("ScheduleAt beyond lookahead should not error: %v", err)
	}

	pending, err := p.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != 1 {
		t.Errorf("expected only the near notification queued, got %v", pending)
	}
}

func TestConsolePlatform_SendFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePlatform(NewRegistry(t.TempDir()), &buf)

	n := reminder.Notification{ID: 1, Title: "Midterm", Body: "Exam in 30 minutes"}
	if err := p.Send(n); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Midterm") || !strings.Contains(got, "Exam in 30 minutes") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConsolePlatform_ListPendingFiltersChannel(t *testing.T) {
	registry := NewRegistry(t.TempDir())
	p := NewConsolePlatform(registry, &bytes.Buffer{})
	at := time.Now().Add(time.Hour)

	if err := registry.Put(Entry{Notification: reminder.Notification{ID: 1, At: at}, Channel: ChannelTray}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := registry.Put(Entry{Notification: reminder.Notification{ID: 2, At: at}, Channel: ChannelConsole}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	pending, err := p.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != 2 {
		t.Errorf("expected only console-channel entries, got %v", pending)
	}
}

package notifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/reminder"
)

// Channel identifies the delivery path an entry was queued on.
type Channel string

const (
	ChannelTray    Channel = "tray"
	ChannelConsole Channel = "console"
)

// Entry is one queued notification plus its delivery channel.
type Entry struct {
	reminder.Notification
	Channel Channel `json:"channel"`
}

// Registry is the file-backed pending-notification set shared by the
// platform implementations. The host has no daemon holding scheduled
// notifications in memory; instead the set is persisted here and the
// cron-driven notify command delivers whatever has come due. Single
// caller, read-modify-write per operation.
type Registry struct {
	path string
}

// NewRegistry creates a registry stored in the given config directory.
func NewRegistry(configDir string) *Registry {
	return &Registry{path: filepath.Join(configDir, constants.PendingFileName)}
}

func (r *Registry) load() (map[int32]Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[int32]Entry), nil
		}
		return nil, fmt.Errorf("failed to read pending reminders: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse pending reminders: %w", err)
	}

	byID := make(map[int32]Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return byID, nil
}

func (r *Registry) save(byID map[int32]Entry) error {
	entries := make([]Entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize pending reminders: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write pending reminders: %w", err)
	}
	return nil
}

// Put inserts or overwrites the entry with the same notification id.
func (r *Registry) Put(e Entry) error {
	byID, err := r.load()
	if err != nil {
		return err
	}
	byID[e.ID] = e
	return r.save(byID)
}

// Remove deletes the entry with the given id; removing an absent id is a
// no-op.
func (r *Registry) Remove(id int32) error {
	byID, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := byID[id]; !ok {
		return nil
	}
	delete(byID, id)
	return r.save(byID)
}

// List returns all entries ordered by fire time.
func (r *Registry) List() ([]Entry, error) {
	byID, err := r.load()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })
	return entries, nil
}

// Due returns entries whose fire time is at or before now.
func (r *Registry) Due(now time.Time) ([]Entry, error) {
	entries, err := r.List()
	if err != nil {
		return nil, err
	}
	due := entries[:0]
	for _, e := range entries {
		if !e.At.After(now) {
			due = append(due, e)
		}
	}
	return due, nil
}

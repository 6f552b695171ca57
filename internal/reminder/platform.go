package reminder

import (
	"context"
	"time"
)

// PermissionState mirrors the host notification facility's permission
// model: not yet asked, granted, or denied.
type PermissionState string

const (
	PermissionPrompt  PermissionState = "prompt"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// Notification is one scheduled host-level notification. IDs are derived
// deterministically from event ids, so scheduling the same event twice
// targets the same slot instead of accumulating duplicates.
type Notification struct {
	ID    int32     `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	At    time.Time `json:"at"`
}

// Platform is the host notification capability the scheduler drives. Any
// facility with these operations is interchangeable; implementations live
// in the notifier package.
type Platform interface {
	CheckPermission(ctx context.Context) (PermissionState, error)
	RequestPermission(ctx context.Context) (PermissionState, error)
	ScheduleAt(ctx context.Context, n Notification) error
	Cancel(ctx context.Context, id int32) error
	ListPending(ctx context.Context) ([]Notification, error)
	// OnActionPerformed registers a callback invoked when the user acts
	// on a delivered notification.
	OnActionPerformed(fn func(Notification))
}

package notify

import (
	"strings"
	"time"
)

// PermissionStatus mirrors the device permission states.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// Permissions is the device permission service.
type Permissions interface {
	Status() PermissionStatus
	Request() PermissionStatus
}

// Static is a Permissions implementation with a fixed answer. The terminal
// notifier needs no consent, so the CLI uses Static(PermissionGranted);
// tests use the other states.
type Static PermissionStatus

func (s Static) Status() PermissionStatus  { return PermissionStatus(s) }
func (s Static) Request() PermissionStatus { return PermissionStatus(s) }

// Notifier is the device-level notification scheduler. Implementations must
// key everything by the opaque identifier so callers can reconcile without a
// side index.
type Notifier interface {
	ScheduleAt(identifier, title, body string, at time.Time) error
	ListScheduled() ([]string, error)
	Cancel(identifier string) error
}

const identifierPrefix = "reminder_"

// Identifier derives the deterministic notification identifier for one
// reminder of one event: reminder_<eventId>_<reminderId>. Because event ids
// never collide, prefix matching on EventPrefix enumerates exactly one
// event's notifications.
func Identifier(eventID, reminderID string) string {
	return identifierPrefix + eventID + "_" + reminderID
}

// EventPrefix is the identifier prefix shared by all notifications that
// belong to the given event.
func EventPrefix(eventID string) string {
	return identifierPrefix + eventID + "_"
}

// BelongsTo reports whether a notification identifier belongs to the event.
func BelongsTo(identifier, eventID string) bool {
	return strings.HasPrefix(identifier, EventPrefix(eventID))
}

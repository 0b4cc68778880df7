package notify

import (
	"encoding/json"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"
)

// Pending is one scheduled-but-not-yet-fired notification as persisted by
// the local notifier.
type Pending struct {
	Identifier string    `json:"identifier"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	At         time.Time `json:"at"`
}

// Local is a diskv-backed Notifier. It stands in for an OS notification
// center: scheduled requests survive restarts, and the notify daemon fires
// the due ones to the terminal.
type Local struct {
	d *diskv.Diskv
}

// OpenLocal opens (creating if needed) the pending-notification bucket at
// basePath. Keep it out of the event store's directory so the store watcher
// does not see notification churn.
func OpenLocal(basePath string) *Local {
	return &Local{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 256 * 1024,
	})}
}

// ScheduleAt records a notification to fire at the given instant. An
// existing entry under the same identifier is overwritten.
func (l *Local) ScheduleAt(identifier, title, body string, at time.Time) error {
	raw, err := json.Marshal(Pending{Identifier: identifier, Title: title, Body: body, At: at})
	if err != nil {
		return errors.Wrap(err, "encode pending notification")
	}
	return l.d.Write(identifier, raw)
}

// ListScheduled returns the identifiers of every pending notification.
func (l *Local) ListScheduled() ([]string, error) {
	ids := make([]string, 0)
	for key := range l.d.Keys(nil) {
		ids = append(ids, key)
	}
	return ids, nil
}

// Cancel removes a pending notification; cancelling an unknown identifier
// is not an error.
func (l *Local) Cancel(identifier string) error {
	if !l.d.Has(identifier) {
		return nil
	}
	return l.d.Erase(identifier)
}

// All loads every pending notification, skipping unreadable entries.
func (l *Local) All() ([]Pending, error) {
	out := make([]Pending, 0)
	for key := range l.d.Keys(nil) {
		raw, err := l.d.Read(key)
		if err != nil {
			continue
		}
		var p Pending
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

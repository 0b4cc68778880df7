package remind

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
)

// layoutLocal is the shorthand accepted alongside RFC3339 on the CLI.
const layoutLocal = "2006-01-02 15:04"

// Add attaches a reminder to the active event and schedules it. This is a
// user-initiated reminder action, so a permission denial is surfaced.
type Add struct {
	At      string
	Message string

	Store     *store.Store
	Scheduler *notify.Scheduler
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add a reminder, no store")
	}

	at, err := parseWhen(n.At)
	if err != nil {
		return err
	}
	if !at.After(n.Store.Now()) {
		return errors.Errorf("%s is in the past", at.Format(layoutLocal))
	}

	id := event.NewReminderID()
	full := false
	n.Store.UpdateActive(func(e *event.Event) {
		if len(e.Reminders) >= event.MaxReminders {
			full = true
			return
		}
		dt := at.Format(time.RFC3339)
		e.Reminders = append(e.Reminders, event.Reminder{
			ID:       id,
			Datetime: &dt,
			Message:  n.Message,
		})
	})
	if full {
		return errors.Errorf("an event holds at most %d reminders; remove one first", event.MaxReminders)
	}

	if err := n.reconcile(); err != nil {
		if errors.Is(err, notify.ErrPermissionDenied) {
			// The action aborts whole: no reminder without its notification.
			n.Store.UpdateActive(func(e *event.Event) { dropReminder(e, id) })
			return errors.New("notifications are not permitted; the reminder was not added")
		}
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Event(n.Store.Now(), n.Store.Active())
	return nil
}

// Remove detaches a reminder by id and cancels its notification.
type Remove struct {
	ID string

	Store     *store.Store
	Scheduler *notify.Scheduler
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove a reminder, no store")
	}

	found := false
	n.Store.UpdateActive(func(e *event.Event) {
		kept := e.Reminders[:0]
		for _, r := range e.Reminders {
			if r.ID == n.ID {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		e.Reminders = kept
	})
	if !found {
		return errors.Errorf("no reminder with id %q on the active event", n.ID)
	}

	// Reconcile even when the list just became empty, so the removed
	// reminder's pending notification is cancelled rather than orphaned.
	if n.Scheduler != nil {
		if err := n.Scheduler.Reconcile(n.Store.Active()); err != nil {
			return err
		}
	}

	fmt.Printf("removed %s\n", n.ID)
	return nil
}

// List prints the active event's reminders.
type List struct {
	Store *store.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list reminders, no store")
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Event(n.Store.Now(), n.Store.Active())
	return nil
}

func (n *Add) reconcile() error {
	if n.Scheduler == nil {
		return nil
	}
	return n.Scheduler.Reconcile(n.Store.Active())
}

func dropReminder(e *event.Event, id string) {
	kept := e.Reminders[:0]
	for _, r := range e.Reminders {
		if r.ID == id {
			continue
		}
		kept = append(kept, r)
	}
	e.Reminders = kept
}

func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New(`specify --at, for example --at="2026-06-11 09:00"`)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutLocal, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid time %q, expected RFC3339 or %q", s, layoutLocal)
	}
	return t, nil
}

package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmhodges/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

// ErrPermissionDenied reports that the user declined notification
// permission. User-initiated actions surface it; passive rescheduling on
// startup treats it as a silent no-op.
var ErrPermissionDenied = errors.New("notify: permission denied")

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock injects the scheduling clock.
func WithClock(c clock.Clock) SchedulerOption {
	return func(s *Scheduler) { s.clk = c }
}

// WithLogger attaches a logger for per-reminder failures.
func WithLogger(l *zap.SugaredLogger) SchedulerOption {
	return func(s *Scheduler) { s.log = l }
}

// Scheduler keeps the set of live device notifications for each event in
// sync with that event's reminder list. Create one at app start and pass it
// the Notifier instance for the process; there is no teardown.
type Scheduler struct {
	notifier Notifier
	perms    Permissions
	clk      clock.Clock
	log      *zap.SugaredLogger
}

// NewScheduler wires a Scheduler to a notifier and permission service.
func NewScheduler(n Notifier, p Permissions, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		notifier: n,
		perms:    p,
		clk:      clock.New(),
		log:      zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Reconcile makes the live notifications for one event match its reminder
// list: cancel everything under the event's identifier prefix, then schedule
// a fresh notification per reminder with a future datetime. Reminders that
// are unset, malformed, or in the past are silently skipped; a single
// scheduling failure does not abort the rest. Cancel-then-recreate keeps the
// operation idempotent across app restarts without diff bookkeeping.
func (s *Scheduler) Reconcile(e *event.Event) error {
	if err := s.ensurePermission(); err != nil {
		return err
	}
	if err := s.cancelPrefix(EventPrefix(e.ID)); err != nil {
		return err
	}

	now := s.clk.Now()
	for _, r := range e.Reminders {
		if r.Datetime == nil {
			continue
		}
		at, err := time.Parse(time.RFC3339, *r.Datetime)
		if err != nil {
			s.log.Warnw("notify: unparseable reminder datetime", "event", e.ID, "reminder", r.ID, "err", err)
			continue
		}
		if !at.After(now) {
			continue
		}
		id := Identifier(e.ID, r.ID)
		if err := s.notifier.ScheduleAt(id, e.DisplayName(), Message(r, e, now), at); err != nil {
			// Best effort: one bad notification must not sink the rest.
			s.log.Errorw("notify: schedule failed", "identifier", id, "err", err)
		}
	}
	return nil
}

// ReconcileAll is the passive start-up pass over the whole event list.
// Events without reminders are skipped, and a permission denial aborts
// quietly instead of surfacing to the user.
func (s *Scheduler) ReconcileAll(events []*event.Event) {
	for _, e := range events {
		if len(e.Reminders) == 0 {
			continue
		}
		if err := s.Reconcile(e); err != nil {
			if errors.Is(err, ErrPermissionDenied) {
				return
			}
			s.log.Errorw("notify: reconcile", "event", e.ID, "err", err)
		}
	}
}

// CancelEvent cancels every notification belonging to the event, whether or
// not its reminders were individually removed first. Used on event delete.
func (s *Scheduler) CancelEvent(eventID string) error {
	return s.cancelPrefix(EventPrefix(eventID))
}

// Bind subscribes the scheduler to store changes so any events-list change
// triggers a passive reconcile pass. The handler re-reads the store at the
// moment it runs rather than trusting state captured earlier, so a reminder
// can never be scheduled against an already-deleted event.
func (s *Scheduler) Bind(ctx context.Context, st *store.Store) {
	ch := st.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				events, _ := st.Snapshot()
				s.ReconcileAll(events)
			}
		}
	}()
}

func (s *Scheduler) ensurePermission() error {
	status := s.perms.Status()
	if status == PermissionUndetermined {
		status = s.perms.Request()
	}
	if status != PermissionGranted {
		return ErrPermissionDenied
	}
	return nil
}

func (s *Scheduler) cancelPrefix(prefix string) error {
	ids, err := s.notifier.ListScheduled()
	if err != nil {
		return errors.Wrap(err, "notify: list scheduled")
	}
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if err := s.notifier.Cancel(id); err != nil {
			s.log.Errorw("notify: cancel failed", "identifier", id, "err", err)
		}
	}
	return nil
}

// Message renders the notification body: a non-blank custom message is used
// verbatim, otherwise the copy is generated from the days until target.
func Message(r event.Reminder, e *event.Event, now time.Time) string {
	if m := strings.TrimSpace(r.Message); m != "" {
		return m
	}
	name := e.DisplayName()
	days := timeutil.DaysLeft(e.TargetDate, now)
	switch {
	case days <= 0:
		return name + " — It's today! 🎉"
	case days == 1:
		return name + " — It's tomorrow! ✨"
	default:
		plural := ""
		if days > 1 {
			plural = "s"
		}
		return fmt.Sprintf("%s is approaching! Only %d day%s left.", name, days, plural)
	}
}

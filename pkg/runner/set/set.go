package set

import (
	"context"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/generate"
	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

// Set edits the active event's settings. Nil fields are left untouched.
type Set struct {
	Name    *string
	Theme   *string
	On      *string // target date, YYYY-MM-DD
	Font    *string
	Counter *string

	Store     *store.Store
	Scheduler *notify.Scheduler
	Quotes    generate.QuoteSource
	Images    generate.ImageSource
}

func (n *Set) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not set, no store")
	}
	if n.On != nil {
		if _, ok := timeutil.ParseDate(*n.On); !ok {
			return errors.Errorf("invalid date %q, expected YYYY-MM-DD", *n.On)
		}
	}

	now := n.Store.Now()
	themeChanged := false
	n.Store.UpdateActive(func(e *event.Event) {
		if n.Name != nil {
			e.EventName = *n.Name
		}
		if n.Theme != nil && *n.Theme != e.Theme {
			e.Theme = *n.Theme
			themeChanged = true
		}
		if n.On != nil {
			e.TargetDate = *n.On
			// totalDays is a progress baseline frozen at save time, so the
			// counter can show "day 12 of 100" later without recomputing.
			days := timeutil.DaysLeft(*n.On, now)
			e.TotalDays = &days
		}
		if n.Font != nil {
			e.FontID = *n.Font
		}
		if n.Counter != nil {
			e.CounterStyle = *n.Counter
		}
	})

	e := n.Store.Active()
	if themeChanged && e.Theme != "" {
		if err := generate.Refresh(ctx, n.Store, e.ID, e.Theme, n.Quotes, n.Images); err != nil {
			return err
		}
	}

	// Generated reminder copy depends on the target date, so reschedule.
	// This is not a reminder action from the user's point of view; a
	// permission denial stays quiet.
	if n.Scheduler != nil && len(e.Reminders) > 0 {
		if err := n.Scheduler.Reconcile(n.Store.Active()); err != nil && !errors.Is(err, notify.ErrPermissionDenied) {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Event(n.Store.Now(), n.Store.Active())
	return nil
}

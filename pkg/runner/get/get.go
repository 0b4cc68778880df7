package get

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

type Get struct {
	ShowID     bool
	Memoirs    bool
	Countdowns bool
	Detail     bool

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	now := n.Store.Now()
	pp.NewLine()

	if n.Detail {
		pp.Event(now, n.Store.Active())
		return nil
	}

	events, active := n.Store.Snapshot()
	subset, subsetActive := n.filtered(events, active, now)

	switch {
	case n.Memoirs:
		pp.Title("memoirs")
	case n.Countdowns:
		pp.Title("countdowns")
	default:
		pp.Title("events")
	}
	pp.Events(now, subsetActive, subset...)
	return nil
}

// filtered partitions the list when a mode flag is set. The active marker
// carries over only when the active event lands in the subset.
func (n *Get) filtered(events []*event.Event, active int, now time.Time) ([]*event.Event, int) {
	if !n.Memoirs && !n.Countdowns {
		return events, active
	}
	out := make([]*event.Event, 0, len(events))
	subsetActive := -1
	for i, e := range events {
		if timeutil.IsMemoir(e.TargetDate, now) != n.Memoirs {
			continue
		}
		if i == active {
			subsetActive = len(out)
		}
		out = append(out, e)
	}
	return out, subsetActive
}

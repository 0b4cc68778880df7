package notify

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/jmhodges/clock"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"tableflip.dev/countdown/pkg/store"
)

// DefaultTick is how often the daemon checks for due notifications.
const DefaultTick = 20 * time.Second

// Daemon fires due local notifications to the terminal. It keeps a min-heap
// of pending entries, rebuilds it whenever the event store reports a change
// (the scheduler will have rewritten the pending set by then), and runs a
// full reconcile at midnight so day-boundary copy ("It's today!") and
// memoir classification stay fresh.
type Daemon struct {
	local *Local
	sched *Scheduler
	st    *store.Store
	clk   clock.Clock
	log   *zap.SugaredLogger
	tick  time.Duration

	// Fire is invoked for each due notification; the default prints to the
	// terminal. Overridable for tests.
	Fire func(Pending)
}

// NewDaemon assembles a daemon over the local notifier.
func NewDaemon(local *Local, sched *Scheduler, st *store.Store, log *zap.SugaredLogger) *Daemon {
	d := &Daemon{
		local: local,
		sched: sched,
		st:    st,
		clk:   clock.New(),
		log:   log,
		tick:  DefaultTick,
	}
	d.Fire = d.fireTerminal
	return d
}

// SetClock injects a test clock.
func (d *Daemon) SetClock(c clock.Clock) { d.clk = c }

// SetTick overrides the polling cadence.
func (d *Daemon) SetTick(t time.Duration) { d.tick = t }

// Run blocks until ctx is cancelled. On entry it performs the passive
// start-up reconcile pass, then services the pending queue.
func (d *Daemon) Run(ctx context.Context) error {
	events, _ := d.st.Snapshot()
	d.sched.ReconcileAll(events)

	changes := d.st.Subscribe()

	cr := cron.New()
	if _, err := cr.AddFunc("0 0 * * *", func() {
		// Re-read at fire time; the midnight list may differ from the one
		// the daemon started with.
		events, _ := d.st.Snapshot()
		d.sched.ReconcileAll(events)
		d.log.Infow("notify: midnight reconcile complete", "events", len(events))
	}); err != nil {
		return err
	}
	cr.Start()
	defer cr.Stop()

	queue := newPendingQueue()
	if err := d.rebuild(queue); err != nil {
		d.log.Errorw("notify: initial queue load", "err", err)
	}

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changes:
			if err := d.rebuild(queue); err != nil {
				d.log.Errorw("notify: queue rebuild", "err", err)
			}
		case <-ticker.C:
			d.fireDue(queue)
		}
	}
}

func (d *Daemon) rebuild(q *pendingQueue) error {
	all, err := d.local.All()
	if err != nil {
		return err
	}
	q.Reset(all)
	return nil
}

// fireDue pops and fires everything due at this tick. Fired entries are
// erased from the local bucket so they cannot fire twice across restarts.
func (d *Daemon) fireDue(q *pendingQueue) {
	now := d.clk.Now().Unix()
	for {
		p, ok := q.PopDue(now)
		if !ok {
			return
		}
		d.Fire(p)
		if err := d.local.Cancel(p.Identifier); err != nil {
			d.log.Errorw("notify: clear fired notification", "identifier", p.Identifier, "err", err)
		}
	}
}

func (d *Daemon) fireTerminal(p Pending) {
	title := color.New(color.Bold, color.FgHiYellow)
	body := color.New(color.FgHiWhite)
	_, _ = title.Printf("🔔 %s\n", p.Title)
	_, _ = body.Printf("   %s\n", p.Body)
	d.log.Infow("notify: fired", "identifier", p.Identifier, "at", p.At)
}

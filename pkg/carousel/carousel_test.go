package carousel

import (
	"sync"
	"testing"
	"time"
)

// manualTimer lets tests drive fade completion by hand.
type manualTimer struct {
	mu        sync.Mutex
	pending   []*timerEntry
	cancelled int
}

type timerEntry struct {
	fn        func()
	cancelled bool
}

func (m *manualTimer) schedule(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &timerEntry{fn: fn}
	m.pending = append(m.pending, e)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if !e.cancelled {
			e.cancelled = true
			m.cancelled++
		}
	}
}

// fire runs every timer that has not been cancelled.
func (m *manualTimer) fire() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, e := range pending {
		if !e.cancelled {
			e.fn()
		}
	}
}

func newTestController(length, active int, commits *[]int) (*Controller, *manualTimer) {
	mt := &manualTimer{}
	c := New(func(i int) {
		if commits != nil {
			*commits = append(*commits, i)
		}
	}, WithTimer(mt.schedule))
	c.Sync(length, active, nil)
	return c, mt
}

func TestSwitchDefersCommit(t *testing.T) {
	var commits []int
	c, mt := newTestController(3, 0, &commits)

	c.SwitchTo(1)
	if c.Active() != 0 {
		t.Fatalf("index must not change before the fade-out completes")
	}
	if c.Visible() || !c.InTransition() {
		t.Fatalf("expected fade-out in flight")
	}

	mt.fire()
	if c.Active() != 1 || !c.Visible() || c.InTransition() {
		t.Fatalf("expected committed switch, active=%d", c.Active())
	}
	if len(commits) != 1 || commits[0] != 1 {
		t.Fatalf("expected one commit of 1, got %v", commits)
	}
}

func TestRapidSwitchLastWriteWins(t *testing.T) {
	var commits []int
	c, mt := newTestController(3, 0, &commits)

	c.SwitchTo(1)
	c.SwitchTo(2) // before the first fade completes

	mt.fire()
	if c.Active() != 2 {
		t.Fatalf("display must settle on the most recent target, got %d", c.Active())
	}
	if len(commits) != 1 || commits[0] != 2 {
		t.Fatalf("first switch should have been cancelled, commits=%v", commits)
	}
	if mt.cancelled != 1 {
		t.Fatalf("expected the first timer cancelled, got %d", mt.cancelled)
	}
}

func TestSwitchToSelfAndOutOfRange(t *testing.T) {
	c, mt := newTestController(3, 1, nil)
	c.SwitchTo(1)
	c.SwitchTo(-1)
	c.SwitchTo(3)
	if c.InTransition() {
		t.Fatalf("no-op switches must not start a transition")
	}
	mt.fire()
	if c.Active() != 1 {
		t.Fatalf("active moved on a no-op switch")
	}
}

func TestSwipeDirectionAndThreshold(t *testing.T) {
	c, mt := newTestController(3, 1, nil)

	// Leftward drag (start right of end) advances.
	c.DragStart(200)
	c.DragEnd(120)
	mt.fire()
	if c.Active() != 2 {
		t.Fatalf("leftward swipe should advance, got %d", c.Active())
	}

	// Under the threshold: ignored.
	c.DragStart(200)
	c.DragEnd(160)
	if c.InTransition() {
		t.Fatalf("sub-threshold drag must not swipe")
	}

	// Rightward drag goes back.
	c.DragStart(100)
	c.DragEnd(190)
	mt.fire()
	if c.Active() != 1 {
		t.Fatalf("rightward swipe should go back, got %d", c.Active())
	}
}

func TestSwipeHasNoWraparound(t *testing.T) {
	c, mt := newTestController(2, 1, nil)
	c.DragStart(200)
	c.DragEnd(0) // hard swipe past the last event
	mt.fire()
	if c.Active() != 1 {
		t.Fatalf("swipe past the end must be a no-op, got %d", c.Active())
	}

	c2, mt2 := newTestController(2, 0, nil)
	c2.DragStart(0)
	c2.DragEnd(200) // hard swipe before the first event
	mt2.fire()
	if c2.Active() != 0 {
		t.Fatalf("swipe before the start must be a no-op, got %d", c2.Active())
	}
}

func TestDragEndWithoutStart(t *testing.T) {
	c, _ := newTestController(3, 1, nil)
	c.DragEnd(500)
	if c.InTransition() {
		t.Fatalf("drag end without a start must be ignored")
	}
}

func TestModeFilterRetargets(t *testing.T) {
	c, mt := newTestController(4, 0, nil)
	// Global indices 1 and 3 are memoirs.
	c.Sync(4, 0, func(i int) bool { return i%2 == 1 })

	c.SetMode(ModeMemoir)
	mt.fire()
	if c.Active() != 1 {
		t.Fatalf("memoir mode should land on the first memoir's global index, got %d", c.Active())
	}
	if got := c.Indices(ModeMemoir); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("unexpected memoir partition: %v", got)
	}

	c.SetMode(ModeCountdown)
	mt.fire()
	if c.Active() != 0 {
		t.Fatalf("countdown mode should land on the first countdown event, got %d", c.Active())
	}
}

func TestSetModeEmptySubsetIsNoop(t *testing.T) {
	c, _ := newTestController(2, 0, nil)
	c.Sync(2, 0, func(int) bool { return false }) // no memoirs at all
	c.SetMode(ModeMemoir)
	if c.Mode() != ModeCountdown {
		t.Fatalf("switching into an empty subset must not change mode")
	}
	if c.InTransition() {
		t.Fatalf("no selection should have been invented")
	}
}

func TestCommitClampsAfterShrink(t *testing.T) {
	c, mt := newTestController(3, 0, nil)
	c.SwitchTo(2)
	c.Sync(2, 0, nil) // an event was deleted mid-fade
	mt.fire()
	if c.Active() != 1 {
		t.Fatalf("pending target must clamp to the shrunken list, got %d", c.Active())
	}
}

func TestDefaultTimerCommits(t *testing.T) {
	done := make(chan int, 1)
	c := New(func(i int) { done <- i }, WithFadeDuration(5*time.Millisecond))
	c.Sync(2, 0, nil)
	c.SwitchTo(1)
	select {
	case i := <-done:
		if i != 1 {
			t.Fatalf("expected commit of 1, got %d", i)
		}
	case <-time.After(time.Second):
		t.Fatalf("fade never committed")
	}
}

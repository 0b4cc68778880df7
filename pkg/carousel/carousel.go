// Package carousel owns which event is active for display and the
// fade/swipe mechanics of moving between events. It is UI-agnostic: the TUI
// renders from it, and commits land on the store through a callback.
package carousel

import (
	"sync"
	"time"
)

const (
	// DefaultFadeDuration is how long the fade-out runs before the index
	// actually changes and the fade-in starts.
	DefaultFadeDuration = 300 * time.Millisecond

	// DefaultSwipeThreshold is the net horizontal displacement a drag must
	// exceed to count as a swipe.
	DefaultSwipeThreshold = 50
)

// Mode partitions the event list for display. The partition is derived, not
// stored: an event moves between subsets on its own as days pass.
type Mode int

const (
	ModeCountdown Mode = iota
	ModeMemoir
)

func (m Mode) String() string {
	if m == ModeMemoir {
		return "memoir"
	}
	return "countdown"
}

// TimerFunc schedules fn after d and returns a cancel func. Injected in
// tests; the default is time.AfterFunc.
type TimerFunc func(d time.Duration, fn func()) (cancel func())

func afterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Option configures a Controller.
type Option func(*Controller)

func WithFadeDuration(d time.Duration) Option {
	return func(c *Controller) { c.fadeDuration = d }
}

func WithSwipeThreshold(px int) Option {
	return func(c *Controller) { c.swipeThreshold = px }
}

func WithTimer(t TimerFunc) Option {
	return func(c *Controller) { c.timer = t }
}

// Controller sequences selection changes: fade out, commit the new index,
// fade in. A switch requested mid-transition cancels the pending commit and
// restarts toward the new target; nothing queues.
type Controller struct {
	mu             sync.Mutex
	length         int
	active         int
	isMemoir       func(i int) bool
	mode           Mode
	visible        bool
	pendingTarget  int
	inTransition   bool
	cancelPending  func()
	dragStartX     *int
	fadeDuration   time.Duration
	swipeThreshold int
	timer          TimerFunc
	onCommit       func(i int)
}

// New builds a controller. onCommit receives the index once a transition
// completes (typically store.Select); it may be nil.
func New(onCommit func(int), opts ...Option) *Controller {
	c := &Controller{
		length:         1,
		visible:        true,
		fadeDuration:   DefaultFadeDuration,
		swipeThreshold: DefaultSwipeThreshold,
		timer:          afterFunc,
		onCommit:       onCommit,
		isMemoir:       func(int) bool { return false },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Sync aligns the controller with the store after a mutation: list length,
// committed selection, and the memoir classifier for mode filtering.
func (c *Controller) Sync(length, active int, isMemoir func(i int) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if length < 1 {
		length = 1
	}
	c.length = length
	if !c.inTransition {
		c.active = clamp(active, length)
	}
	if isMemoir != nil {
		c.isMemoir = isMemoir
	}
}

func clamp(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

// Active returns the currently displayed index.
func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Visible reports the fade state: false while a fade-out is in flight.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// InTransition reports whether a switch is pending commit.
func (c *Controller) InTransition() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inTransition
}

// SwitchTo starts a fade toward index i. Out-of-range targets and switches
// to the current index are no-ops. Re-entrant calls retarget: the pending
// timer is cancelled and the fade restarts (last write wins).
func (c *Controller) SwitchTo(i int) {
	c.mu.Lock()
	if i < 0 || i >= c.length || (i == c.active && !c.inTransition) {
		c.mu.Unlock()
		return
	}
	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}
	c.pendingTarget = i
	c.inTransition = true
	c.visible = false
	c.cancelPending = c.timer(c.fadeDuration, c.commitPending)
	c.mu.Unlock()
}

// commitPending lands the index change after the fade-out. It re-reads the
// target under the lock; an intervening SwitchTo will already have replaced
// it, and an intervening shrink of the list clamps it.
func (c *Controller) commitPending() {
	c.mu.Lock()
	c.active = clamp(c.pendingTarget, c.length)
	c.inTransition = false
	c.visible = true
	c.cancelPending = nil
	committed := c.active
	onCommit := c.onCommit
	c.mu.Unlock()
	if onCommit != nil {
		onCommit(committed)
	}
}

// DragStart records the origin of a horizontal drag.
func (c *Controller) DragStart(x int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragStartX = &x
}

// DragEnd classifies the drag: displacement beyond the threshold is a
// swipe, sign picks the direction, and swiping past either end of the list
// is a no-op rather than a wraparound.
func (c *Controller) DragEnd(x int) {
	c.mu.Lock()
	if c.dragStartX == nil {
		c.mu.Unlock()
		return
	}
	diff := *c.dragStartX - x
	c.dragStartX = nil
	active, length, threshold := c.active, c.length, c.swipeThreshold
	c.mu.Unlock()

	if diff > threshold && active < length-1 {
		c.SwitchTo(active + 1)
	}
	if diff < -threshold && active > 0 {
		c.SwitchTo(active - 1)
	}
}

// Next and Prev step the selection by one, for key-driven navigation.
func (c *Controller) Next() { c.step(+1) }
func (c *Controller) Prev() { c.step(-1) }

func (c *Controller) step(delta int) {
	c.mu.Lock()
	target := c.active + delta
	length := c.length
	c.mu.Unlock()
	if target < 0 || target >= length {
		return
	}
	c.SwitchTo(target)
}

// Mode returns the current display mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Indices returns the global indices belonging to a display mode, in list
// order.
func (c *Controller) Indices(m Mode) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indicesLocked(m)
}

func (c *Controller) indicesLocked(m Mode) []int {
	out := make([]int, 0, c.length)
	for i := 0; i < c.length; i++ {
		if c.isMemoir(i) == (m == ModeMemoir) {
			out = append(out, i)
		}
	}
	return out
}

// SetMode switches between the countdown and memoir subsets, re-targeting
// the selection to the destination's first event. An empty destination
// subset is a no-op: the controller never invents a selection.
func (c *Controller) SetMode(m Mode) {
	c.mu.Lock()
	if m == c.mode {
		c.mu.Unlock()
		return
	}
	indices := c.indicesLocked(m)
	if len(indices) == 0 {
		c.mu.Unlock()
		return
	}
	c.mode = m
	target := indices[0]
	c.mu.Unlock()
	c.SwitchTo(target)
}

package store

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/jmhodges/clock"
	"go.uber.org/zap"

	"tableflip.dev/countdown/pkg/event"
)

// DefaultDebounce is the window within which rapid mutations coalesce into a
// single persisted write.
const DefaultDebounce = 500 * time.Millisecond

// Reason classifies a change notification.
type Reason string

const (
	// ReasonMutate means the in-memory list or selection changed locally.
	ReasonMutate Reason = "mutate"
	// ReasonReload means state was replaced from the underlying KV (for
	// example after an external edit picked up by the watcher).
	ReasonReload Reason = "reload"
)

// Change is emitted to subscribers after every mutation or reload.
type Change struct {
	Reason Reason
}

// Option configures a Store at load time.
type Option func(*Store)

// WithDebounce overrides the persistence debounce window.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithLogger attaches a logger for persistence failures.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock injects the clock used for timestamps and tests.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clk = c }
}

// Store owns the authoritative in-memory event list and active selection.
// All mutators are atomic with respect to each other; persistence happens
// on a debounced timer and failures never roll back memory.
type Store struct {
	kv       KV
	log      *zap.SugaredLogger
	clk      clock.Clock
	debounce time.Duration

	mu      sync.Mutex
	events  []*event.Event
	active  int
	ready   bool
	pending *time.Timer
	dirty   bool

	obsMu     sync.Mutex
	observers []chan Change
}

// Load reads the persisted event list and active index (concurrently) and
// returns a ready store. Missing or malformed state falls back to a single
// default event at index 0; Load never fails past this boundary. No write
// can be scheduled before Load returns, so a fallback default can never
// clobber real data mid-read.
func Load(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		debounce: DefaultDebounce,
		clk:      clock.New(),
		log:      zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(s)
	}

	var (
		wg     sync.WaitGroup
		events []*event.Event
		active int
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		events = s.readEvents()
	}()
	go func() {
		defer wg.Done()
		active = s.readActiveIndex()
	}()
	wg.Wait()

	if len(events) == 0 {
		events = []*event.Event{event.New()}
	}
	s.events = events
	s.active = clampIndex(active, len(events))
	s.ready = true
	return s
}

func (s *Store) readEvents() []*event.Event {
	raw, ok, err := s.kv.Get(KeyEvents)
	if err != nil {
		s.log.Errorw("store: read events", "err", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var events []*event.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.log.Errorw("store: malformed events payload, falling back", "err", err)
		return nil
	}
	// "[null]" is valid JSON; a nil entry would panic on first use.
	for _, e := range events {
		if e == nil {
			s.log.Errorw("store: events payload contains a null entry, falling back")
			return nil
		}
	}
	return events
}

func (s *Store) readActiveIndex() int {
	raw, ok, err := s.kv.Get(KeyActiveIndex)
	if err != nil || !ok {
		return 0
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0
	}
	return i
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

// Len returns the number of events. The list is never empty.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// ActiveIndex returns the current selection index.
func (s *Store) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Active returns a deep copy of the active event.
func (s *Store) Active() *event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[s.active].Clone()
}

// Events returns a deep copy of the event list.
func (s *Store) Events() []*event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return event.CloneAll(s.events)
}

// Snapshot returns the list and selection as one consistent copy. Deferred
// and asynchronous consumers should work from a snapshot, or re-read at the
// moment they act, rather than closing over earlier state.
func (s *Store) Snapshot() ([]*event.Event, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return event.CloneAll(s.events), s.active
}

// ByID returns a deep copy of the event with the given id.
func (s *Store) ByID(id string) (*event.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return nil, false
}

// UpdateActive applies a patch to the active event.
func (s *Store) UpdateActive(patch func(*event.Event)) {
	s.mu.Lock()
	patch(s.events[s.active])
	s.schedulePersistLocked()
	s.mu.Unlock()
	s.notify(ReasonMutate)
}

// UpdateByID applies a patch to the event with the given id; it reports
// whether the event still exists. Async completions (quote or image loads,
// reminder edits) should patch by id so a selection change or delete that
// raced them cannot misapply the result.
func (s *Store) UpdateByID(id string, patch func(*event.Event)) bool {
	s.mu.Lock()
	var found bool
	for _, e := range s.events {
		if e.ID == id {
			patch(e)
			found = true
			break
		}
	}
	if found {
		s.schedulePersistLocked()
	}
	s.mu.Unlock()
	if found {
		s.notify(ReasonMutate)
	}
	return found
}

// Append adds an event to the end of the list and returns its index,
// computed inside the same critical section that performs the append. A
// caller that wants "add then select" must use this index (or
// AppendAndSelect) rather than a length captured earlier.
func (s *Store) Append(e *event.Event) int {
	s.mu.Lock()
	s.events = append(s.events, e)
	idx := len(s.events) - 1
	s.schedulePersistLocked()
	s.mu.Unlock()
	s.notify(ReasonMutate)
	return idx
}

// AppendAndSelect appends and atomically moves the selection to the new
// event, returning its index.
func (s *Store) AppendAndSelect(e *event.Event) int {
	s.mu.Lock()
	s.events = append(s.events, e)
	idx := len(s.events) - 1
	s.active = idx
	s.schedulePersistLocked()
	s.mu.Unlock()
	s.notify(ReasonMutate)
	return idx
}

// Select moves the active selection, clamping into range. It returns the
// index actually applied.
func (s *Store) Select(i int) int {
	s.mu.Lock()
	s.active = clampIndex(i, len(s.events))
	applied := s.active
	s.schedulePersistLocked()
	s.mu.Unlock()
	s.notify(ReasonMutate)
	return applied
}

// DeleteActive removes the active event and reports whether anything was
// deleted. Deleting the last remaining event is a no-op: the list is never
// empty. The new selection is max(0, oldIndex-1).
func (s *Store) DeleteActive() (*event.Event, bool) {
	s.mu.Lock()
	if len(s.events) == 1 {
		s.mu.Unlock()
		return nil, false
	}
	removed := s.events[s.active]
	s.events = append(s.events[:s.active], s.events[s.active+1:]...)
	if s.active > 0 {
		s.active--
	}
	s.schedulePersistLocked()
	s.mu.Unlock()
	s.notify(ReasonMutate)
	return removed, true
}

// FirstLaunch reports whether the welcome flow has never been completed.
func (s *Store) FirstLaunch() bool {
	_, ok, err := s.kv.Get(KeyHasLaunched)
	if err != nil {
		s.log.Errorw("store: read hasLaunched", "err", err)
		return false
	}
	return !ok
}

// MarkLaunched records that the welcome flow completed. The flag is a
// one-shot presence marker, written immediately rather than debounced.
func (s *Store) MarkLaunched() {
	if err := s.kv.Set(KeyHasLaunched, "true"); err != nil {
		s.log.Errorw("store: write hasLaunched", "err", err)
	}
}

// Subscribe returns a channel receiving a Change after every mutation or
// reload. Slow consumers miss intermediate notifications rather than
// blocking mutators; each Change is a cue to re-read current state, so a
// dropped one is subsumed by the next.
func (s *Store) Subscribe() <-chan Change {
	ch := make(chan Change, 8)
	s.obsMu.Lock()
	s.observers = append(s.observers, ch)
	s.obsMu.Unlock()
	return ch
}

func (s *Store) notify(reason Reason) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for _, ch := range s.observers {
		select {
		case ch <- Change{Reason: reason}:
		default:
		}
	}
}

// schedulePersistLocked arms (or re-arms) the debounced write. Callers hold
// s.mu. A timer that already fired and is waiting on the mutex will simply
// persist the newer state; timers are replaced, never stacked.
func (s *Store) schedulePersistLocked() {
	if !s.ready {
		return
	}
	s.dirty = true
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(s.debounce, s.flushPending)
}

func (s *Store) flushPending() {
	s.mu.Lock()
	s.pending = nil
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	s.dirty = false
	raw, idx, ok := s.encodeLocked()
	s.mu.Unlock()
	if ok {
		s.writeOut(raw, idx)
	}
}

// Flush forces any pending debounced write out immediately. Intended for
// process exit; a no-op when nothing is dirty.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	s.dirty = false
	raw, idx, ok := s.encodeLocked()
	s.mu.Unlock()
	if ok {
		s.writeOut(raw, idx)
	}
}

func (s *Store) encodeLocked() (string, string, bool) {
	raw, err := json.Marshal(s.events)
	if err != nil {
		s.log.Errorw("store: encode events", "err", err)
		return "", "", false
	}
	return string(raw), strconv.Itoa(s.active), true
}

// writeOut persists a snapshot. Failures are logged; in-memory state stays
// authoritative and the next mutation re-arms a write naturally.
func (s *Store) writeOut(events, index string) {
	if err := s.kv.Set(KeyEvents, events); err != nil {
		s.log.Errorw("store: write events", "err", err)
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return
	}
	if err := s.kv.Set(KeyActiveIndex, index); err != nil {
		s.log.Errorw("store: write activeIndex", "err", err)
	}
}

// Reload replaces in-memory state from the KV. It refuses to reload while a
// local write is pending, since memory is authoritative until it lands.
func (s *Store) Reload() {
	s.mu.Lock()
	if s.pending != nil || s.dirty {
		s.mu.Unlock()
		return
	}
	events := s.readEvents()
	if events == nil {
		s.mu.Unlock()
		return
	}
	s.events = events
	s.active = clampIndex(s.readActiveIndex(), len(events))
	s.mu.Unlock()
	s.notify(ReasonReload)
}

// Now exposes the store's clock so callers share one time source.
func (s *Store) Now() time.Time {
	return s.clk.Now()
}

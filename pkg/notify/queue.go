package notify

import "container/heap"

// pendingQueue is a min-heap of pending notifications ordered by fire time,
// with identifier-keyed removal so a cancelled notification can be pulled
// without draining the heap.
type pendingQueue struct {
	items []Pending
	pos   map[string]int // identifier -> index in items
}

func newPendingQueue() *pendingQueue {
	q := &pendingQueue{pos: make(map[string]int)}
	heap.Init(q)
	return q
}

func (q pendingQueue) Len() int { return len(q.items) }

func (q pendingQueue) Less(i, j int) bool {
	return q.items[i].At.Before(q.items[j].At)
}

func (q pendingQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i].Identifier] = i
	q.pos[q.items[j].Identifier] = j
}

func (q *pendingQueue) Push(x any) {
	p, ok := x.(Pending)
	if !ok {
		return
	}
	q.pos[p.Identifier] = len(q.items)
	q.items = append(q.items, p)
}

func (q *pendingQueue) Pop() any {
	n := len(q.items)
	if n == 0 {
		return nil
	}
	p := q.items[n-1]
	q.items = q.items[:n-1]
	delete(q.pos, p.Identifier)
	return p
}

// Add inserts or replaces the entry for p's identifier.
func (q *pendingQueue) Add(p Pending) {
	q.Remove(p.Identifier)
	heap.Push(q, p)
}

// Remove drops the entry with the identifier, if present.
func (q *pendingQueue) Remove(identifier string) {
	if i, ok := q.pos[identifier]; ok {
		heap.Remove(q, i)
	}
}

// Peek returns the soonest pending notification without removing it.
func (q *pendingQueue) Peek() (Pending, bool) {
	if len(q.items) == 0 {
		return Pending{}, false
	}
	return q.items[0], true
}

// PopDue removes and returns the soonest entry if it fires at or before the
// given instant.
func (q *pendingQueue) PopDue(nowUnix int64) (Pending, bool) {
	head, ok := q.Peek()
	if !ok || head.At.Unix() > nowUnix {
		return Pending{}, false
	}
	p, _ := heap.Pop(q).(Pending)
	return p, true
}

// Reset replaces the queue contents wholesale.
func (q *pendingQueue) Reset(items []Pending) {
	q.items = q.items[:0]
	q.pos = make(map[string]int, len(items))
	for _, p := range items {
		q.pos[p.Identifier] = len(q.items)
		q.items = append(q.items, p)
	}
	heap.Init(q)
}

package notify

import (
	"testing"
	"time"
)

func pendingAt(id string, at time.Time) Pending {
	return Pending{Identifier: id, At: at}
}

func TestQueueOrdersByFireTime(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	q := newPendingQueue()
	q.Add(pendingAt("c", base.Add(3*time.Hour)))
	q.Add(pendingAt("a", base.Add(1*time.Hour)))
	q.Add(pendingAt("b", base.Add(2*time.Hour)))

	want := []string{"a", "b", "c"}
	for _, id := range want {
		p, ok := q.PopDue(base.Add(4 * time.Hour).Unix())
		if !ok || p.Identifier != id {
			t.Fatalf("expected %s next, got %+v ok=%v", id, p, ok)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be drained")
	}
}

func TestQueuePopDueRespectsNow(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	q := newPendingQueue()
	q.Add(pendingAt("later", base.Add(time.Hour)))

	if _, ok := q.PopDue(base.Unix()); ok {
		t.Fatalf("nothing should be due yet")
	}
	if p, ok := q.PopDue(base.Add(time.Hour).Unix()); !ok || p.Identifier != "later" {
		t.Fatalf("due at exactly its instant, got ok=%v", ok)
	}
}

func TestQueueAddReplacesSameIdentifier(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	q := newPendingQueue()
	q.Add(pendingAt("x", base.Add(time.Hour)))
	q.Add(pendingAt("x", base.Add(2*time.Hour)))

	if q.Len() != 1 {
		t.Fatalf("same identifier must replace, len=%d", q.Len())
	}
	if _, ok := q.PopDue(base.Add(time.Hour).Unix()); ok {
		t.Fatalf("stale fire time survived replacement")
	}
}

func TestQueueRemove(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	q := newPendingQueue()
	q.Add(pendingAt("a", base.Add(1*time.Hour)))
	q.Add(pendingAt("b", base.Add(2*time.Hour)))
	q.Remove("a")
	q.Remove("ghost") // unknown ids are fine

	p, ok := q.PopDue(base.Add(3 * time.Hour).Unix())
	if !ok || p.Identifier != "b" {
		t.Fatalf("expected only b to remain, got %+v", p)
	}
}

func TestQueueReset(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	q := newPendingQueue()
	q.Add(pendingAt("old", base))
	q.Reset([]Pending{
		pendingAt("n2", base.Add(2*time.Hour)),
		pendingAt("n1", base.Add(1*time.Hour)),
	})

	p, ok := q.PopDue(base.Add(2 * time.Hour).Unix())
	if !ok || p.Identifier != "n1" {
		t.Fatalf("reset lost heap order, got %+v", p)
	}
	q.Remove("n2")
	if q.Len() != 0 {
		t.Fatalf("reset must rebuild the position index")
	}
}

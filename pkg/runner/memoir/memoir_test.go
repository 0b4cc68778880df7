package memoir

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/store"
)

func pastEventStore() *store.Store {
	st := store.Load(store.NewMemory())
	st.UpdateActive(func(e *event.Event) {
		e.EventName = "Anniversary"
		e.TargetDate = "2000-06-11"
	})
	return st
}

func strp(s string) *string { return &s }

func TestEditRejectsUpcomingEvents(t *testing.T) {
	st := store.Load(store.NewMemory()) // default target date is in the future
	e := Edit{Note: strp("too early"), Store: st}
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("editing the memoir of an upcoming event must error")
	}
}

func TestEditSetsCreatedAtOnce(t *testing.T) {
	st := pastEventStore()

	e := Edit{Note: strp("What a day."), Store: st}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}
	first := st.Active().Memoir.CreatedAt
	if first == nil {
		t.Fatalf("createdAt not set on first edit")
	}

	e2 := Edit{Note: strp("What a day, really."), Store: st}
	if err := e2.Do(context.Background()); err != nil {
		t.Fatalf("second edit: %v", err)
	}
	got := st.Active()
	if got.Memoir.Note != "What a day, really." {
		t.Fatalf("note not updated: %q", got.Memoir.Note)
	}
	if got.Memoir.CreatedAt == nil || *got.Memoir.CreatedAt != *first {
		t.Fatalf("createdAt must not move on later edits")
	}
}

func TestEditEnforcesCaps(t *testing.T) {
	st := pastEventStore()

	long := Edit{Note: strp(strings.Repeat("x", event.MaxMemoirNote+1)), Store: st}
	if err := long.Do(context.Background()); err == nil {
		t.Fatalf("a note over %d runes must be rejected", event.MaxMemoirNote)
	}

	photos := make([]string, event.MaxMemoirPhotos+2)
	for i := range photos {
		photos[i] = "photo.jpg"
	}
	e := Edit{AddPhotos: photos, Store: st}
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("photos beyond the cap must be reported")
	}
	if got := len(st.Active().Memoir.Photos); got != event.MaxMemoirPhotos {
		t.Fatalf("expected %d photos kept, got %d", event.MaxMemoirPhotos, got)
	}

	wipe := Edit{ClearPhotos: true, Store: st}
	if err := wipe.Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := len(st.Active().Memoir.Photos); got != 0 {
		t.Fatalf("photos not cleared, %d left", got)
	}
}

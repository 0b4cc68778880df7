package event

import (
	"encoding/json"
	"regexp"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	e := New()
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if e.TargetDate != DefaultTargetDate {
		t.Fatalf("expected default target date, got %q", e.TargetDate)
	}
	if e.EventName != "" || e.Theme != "" {
		t.Fatalf("expected empty name and theme")
	}
	if len(e.Reminders) != 0 {
		t.Fatalf("expected no reminders")
	}
	if e.Memoir.HasContent() {
		t.Fatalf("expected empty memoir")
	}
	if e.TotalDays != nil {
		t.Fatalf("expected nil totalDays snapshot")
	}
}

func TestIDFormats(t *testing.T) {
	evtPattern := regexp.MustCompile(`^evt_\d+_[0-9a-z]{5}$`)
	remPattern := regexp.MustCompile(`^rem_\d+_[0-9a-z]{5}$`)
	if id := NewID(); !evtPattern.MatchString(id) {
		t.Fatalf("unexpected event id format: %s", id)
	}
	if id := NewReminderID(); !remPattern.MatchString(id) {
		t.Fatalf("unexpected reminder id format: %s", id)
	}
}

func TestDisplayNameFallback(t *testing.T) {
	e := New()
	if got := e.DisplayName(); got != "Your event" {
		t.Fatalf("expected generic label, got %q", got)
	}
	e.Theme = "wedding"
	if got := e.DisplayName(); got != "wedding" {
		t.Fatalf("expected theme fallback, got %q", got)
	}
	e.EventName = "Oslo"
	if got := e.DisplayName(); got != "Oslo" {
		t.Fatalf("expected event name, got %q", got)
	}
}

func TestMemoirHasContent(t *testing.T) {
	var m Memoir
	if m.HasContent() {
		t.Fatalf("empty memoir should have no content")
	}
	m.Note = "   "
	if m.HasContent() {
		t.Fatalf("whitespace note is not content")
	}
	m.Photos = []string{"file:///a.jpg"}
	if !m.HasContent() {
		t.Fatalf("photos count as content")
	}
}

func TestJSONFieldNames(t *testing.T) {
	e := New()
	e.EventName = "launch"
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"id", "eventName", "theme", "targetDate", "fontId", "counterStyle",
		"totalDays", "quote", "bgImage", "photographer", "memoir", "reminders",
	} {
		if _, ok := m[key]; !ok {
			t.Fatalf("persisted schema missing key %q", key)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	dt := "2025-06-01T09:00:00Z"
	days := 42
	e := New()
	e.TotalDays = &days
	e.Memoir.Photos = []string{"a"}
	e.Reminders = []Reminder{{ID: NewReminderID(), Datetime: &dt}}

	cp := e.Clone()
	cp.Memoir.Photos[0] = "b"
	*cp.Reminders[0].Datetime = "changed"
	*cp.TotalDays = 7

	if e.Memoir.Photos[0] != "a" {
		t.Fatalf("photos shared between clone and original")
	}
	if *e.Reminders[0].Datetime != dt {
		t.Fatalf("reminder datetime shared between clone and original")
	}
	if *e.TotalDays != 42 {
		t.Fatalf("totalDays shared between clone and original")
	}
}

package event

import "strings"

const (
	// MaxReminders caps the reminders carried by a single event.
	MaxReminders = 3

	// MaxMemoirPhotos caps the photo URIs attached to a memoir.
	MaxMemoirPhotos = 6

	// MaxMemoirNote caps the memoir note length in runes.
	MaxMemoirNote = 500

	// DefaultTargetDate is the far-future placeholder given to new events.
	DefaultTargetDate = "2026-12-31"
)

// Event is the unit of tracking: a target calendar date plus the display and
// reminder configuration attached to it.
type Event struct {
	ID           string        `json:"id"`
	EventName    string        `json:"eventName"`
	Theme        string        `json:"theme"`
	TargetDate   string        `json:"targetDate"`
	FontID       string        `json:"fontId"`
	CounterStyle string        `json:"counterStyle"`
	TotalDays    *int          `json:"totalDays"`
	Quote        Quote         `json:"quote"`
	BgImage      *string       `json:"bgImage"`
	Photographer *Photographer `json:"photographer"`
	Memoir       Memoir        `json:"memoir"`
	Reminders    []Reminder    `json:"reminders"`
}

// Quote is externally generated content; the core only stores it.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Photographer credits the source of a background image.
type Photographer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Memoir is the archival payload of a passed event. CreatedAt is set on the
// first manual edit only, never inferred.
type Memoir struct {
	Note      string   `json:"note"`
	Photos    []string `json:"photos"`
	CreatedAt *string  `json:"createdAt"`
}

// HasContent reports whether the memoir carries a note or at least one photo.
func (m Memoir) HasContent() bool {
	return strings.TrimSpace(m.Note) != "" || len(m.Photos) > 0
}

// Reminder is a scheduled local notification request attached to an event.
// A nil Datetime means not yet configured; an empty Message means the
// notification body is generated from the days remaining.
type Reminder struct {
	ID       string  `json:"id"`
	Datetime *string `json:"datetime"`
	Message  string  `json:"message"`
}

// New returns a fresh default event with a generated id.
func New() *Event {
	return &Event{
		ID:           NewID(),
		TargetDate:   DefaultTargetDate,
		FontID:       "inter",
		CounterStyle: "default",
		Memoir:       Memoir{Photos: []string{}},
		Reminders:    []Reminder{},
	}
}

// DisplayName is the label used in notifications and listings: the event
// name, falling back to the theme, falling back to a generic label.
func (e *Event) DisplayName() string {
	if name := strings.TrimSpace(e.EventName); name != "" {
		return name
	}
	if theme := strings.TrimSpace(e.Theme); theme != "" {
		return theme
	}
	return "Your event"
}

// ReminderByID returns the reminder with the given id, if present.
func (e *Event) ReminderByID(id string) (Reminder, bool) {
	for _, r := range e.Reminders {
		if r.ID == id {
			return r, true
		}
	}
	return Reminder{}, false
}

// Clone returns a deep copy so snapshots handed to deferred work cannot be
// mutated underneath the caller.
func (e *Event) Clone() *Event {
	cp := *e
	if e.TotalDays != nil {
		v := *e.TotalDays
		cp.TotalDays = &v
	}
	if e.BgImage != nil {
		v := *e.BgImage
		cp.BgImage = &v
	}
	if e.Photographer != nil {
		v := *e.Photographer
		cp.Photographer = &v
	}
	if e.Memoir.CreatedAt != nil {
		v := *e.Memoir.CreatedAt
		cp.Memoir.CreatedAt = &v
	}
	cp.Memoir.Photos = append([]string(nil), e.Memoir.Photos...)
	cp.Reminders = make([]Reminder, len(e.Reminders))
	for i, r := range e.Reminders {
		cp.Reminders[i] = r
		if r.Datetime != nil {
			v := *r.Datetime
			cp.Reminders[i].Datetime = &v
		}
	}
	return &cp
}

// CloneAll deep-copies an event list.
func CloneAll(events []*Event) []*Event {
	out := make([]*Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

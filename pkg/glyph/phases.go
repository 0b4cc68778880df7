package glyph

import (
	"fmt"
	"time"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/timeutil"
)

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	italicCode    = 3
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Italic(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, italicCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Phase is the derived display state of an event. It is recomputed from the
// clock on every read and never persisted.
type Phase int

const (
	Welcome Phase = iota
	Upcoming
	Imminent
	DayOf
	Memoir
)

var glyphs = map[Phase]Glyph{
	Welcome:  {Symbol: "◌", Meaning: "first launch"},
	Upcoming: {Symbol: "○", Meaning: "counting down"},
	Imminent: {Symbol: "◉", Meaning: "under a week away"},
	DayOf:    {Symbol: "✷", Meaning: "it is today"},
	Memoir:   {Symbol: "◆", Meaning: "date has passed"},
}

// Glyph pairs a phase symbol with its meaning for listings and help text.
type Glyph struct {
	Symbol  string
	Meaning string
}

func (p Phase) Glyph() Glyph {
	return glyphs[p]
}

func (p Phase) String() string {
	switch p {
	case Welcome:
		return "welcome"
	case Upcoming:
		return "upcoming"
	case Imminent:
		return "imminent"
	case DayOf:
		return "day-of"
	case Memoir:
		return "memoir"
	}
	return "unknown"
}

// PhaseFor derives the display phase for an event. firstLaunch forces the
// welcome phase regardless of event state.
//
// The day-of phase additionally requires a non-empty theme: an event landing
// on today with no theme stays in the imminent countdown. That asymmetry is
// a business rule, not an accident.
func PhaseFor(e *event.Event, now time.Time, firstLaunch bool) Phase {
	if firstLaunch {
		return Welcome
	}
	if timeutil.IsMemoir(e.TargetDate, now) {
		return Memoir
	}
	days := timeutil.DaysLeft(e.TargetDate, now)
	if days == 0 && e.Theme != "" && timeutil.IsToday(e.TargetDate, now) {
		return DayOf
	}
	if days < timeutil.PreciseWindowDays {
		return Imminent
	}
	return Upcoming
}

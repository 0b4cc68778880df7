package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/glyph"
	"tableflip.dev/countdown/pkg/timeutil"
)

// PrettyPrint renders event listings for the CLI surfaces.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("evt_1700000000000_abcde  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Events prints one row per event: phase glyph, name, target date, and the
// phase-appropriate time column (days left, or time ago for memoirs).
func (pp *PrettyPrint) Events(now time.Time, active int, events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for i, e := range events {
		marker := " "
		if i == active {
			marker = "›"
		}
		p := glyph.PhaseFor(e, now, false)
		row := []interface{}{marker, p.Glyph().Symbol, e.DisplayName(), e.TargetDate, timeColumn(e, p, now), reminderColumn(e)}
		if pp.ShowID {
			row = append([]interface{}{e.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func timeColumn(e *event.Event, p glyph.Phase, now time.Time) string {
	switch p {
	case glyph.Memoir:
		return timeutil.TimeAgo(e.TargetDate, now)
	case glyph.DayOf:
		return "today 🎉"
	default:
		left := timeutil.TimeLeft(e.TargetDate, now)
		if left.Precise {
			return fmt.Sprintf("%dd %dh %dm", left.Days, left.Hours, left.Minutes)
		}
		days := timeutil.DaysLeft(e.TargetDate, now)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
}

func reminderColumn(e *event.Event) string {
	if len(e.Reminders) == 0 {
		return ""
	}
	if len(e.Reminders) == 1 {
		return "1 reminder"
	}
	return fmt.Sprintf("%d reminders", len(e.Reminders))
}

// Event prints one event in detail, including memoir content and reminders.
func (pp *PrettyPrint) Event(now time.Time, e *event.Event) {
	p := glyph.PhaseFor(e, now, false)
	pp.Title(fmt.Sprintf("%s %s", p.Glyph().Symbol, e.DisplayName()))

	t := color.New()
	faint := color.New(color.Faint)

	if pp.ShowID {
		_, _ = faint.Printf("%s\n", e.ID)
	}
	_, _ = t.Printf("target   %s (%s)\n", e.TargetDate, timeColumn(e, p, now))
	if e.Theme != "" {
		_, _ = t.Printf("theme    %s\n", e.Theme)
	}
	if e.Quote.Text != "" {
		_, _ = faint.Printf("%q — %s\n", e.Quote.Text, e.Quote.Author)
	}
	if p == glyph.Memoir && e.Memoir.HasContent() {
		_, _ = t.Printf("memoir   %s", e.Memoir.Note)
		if n := len(e.Memoir.Photos); n > 0 {
			_, _ = faint.Printf("  (%d photo(s))", n)
		}
		_, _ = t.Println("")
	}
	for _, r := range e.Reminders {
		when := "unset"
		if r.Datetime != nil {
			when = *r.Datetime
		}
		msg := r.Message
		if strings.TrimSpace(msg) == "" {
			msg = "(generated)"
		}
		_, _ = t.Printf("reminder %s  %s  %s\n", r.ID, when, msg)
	}
	_, _ = t.Println("")
}

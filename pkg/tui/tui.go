// Package tui is the full-screen carousel: one card per event, swiped or
// keyed through, with the card face following the event's phase.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/countdown/pkg/carousel"
	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

type uiMode int

const (
	modeNormal uiMode = iota
	modeConfirmDelete
	modeEditNote
)

type tickMsg time.Time
type changedMsg struct{}

// Model is the Bubble Tea model over the store and carousel controller.
type Model struct {
	st    *store.Store
	sched *notify.Scheduler
	car   *carousel.Controller

	mode        uiMode
	firstLaunch bool
	input       textinput.Model
	status      string

	changes <-chan store.Change

	termWidth  int
	termHeight int
}

// New builds the UI model. The carousel commits selections straight into the
// store; the store change channel brings them back around as re-renders.
func New(st *store.Store, sched *notify.Scheduler) Model {
	ti := textinput.New()
	ti.Placeholder = "How was it?"
	ti.CharLimit = event.MaxMemoirNote
	ti.Prompt = "✎ "
	ti.Styles.Cursor.Color = lipgloss.Color("218")

	m := Model{
		st:          st,
		sched:       sched,
		firstLaunch: st.FirstLaunch(),
		input:       ti,
		changes:     st.Subscribe(),
	}
	m.car = carousel.New(func(i int) { st.Select(i) })
	m.syncCarousel()
	return m
}

func (m *Model) syncCarousel() {
	events, active := m.st.Snapshot()
	now := m.st.Now()
	m.car.Sync(len(events), active, func(i int) bool {
		return timeutil.IsMemoir(events[i].TargetDate, now)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForChange())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case tickMsg:
		// The precise countdown and fade state both resolve on the next
		// render; the tick only has to keep renders coming.
		cmds = append(cmds, tick())

	case changedMsg:
		m.syncCarousel()
		cmds = append(cmds, m.waitForChange())

	case tea.MouseClickMsg:
		if m.mode == modeNormal && !m.firstLaunch {
			m.car.DragStart(msg.X)
		}

	case tea.MouseReleaseMsg:
		if m.mode == modeNormal && !m.firstLaunch {
			m.car.DragEnd(msg.X)
		}

	case tea.KeyPressMsg:
		return m.handleKey(msg, cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyPressMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if m.firstLaunch {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.firstLaunch = false
			m.st.MarkLaunched()
		}
		return m, tea.Batch(cmds...)
	}

	switch m.mode {
	case modeConfirmDelete:
		switch msg.String() {
		case "y", "Y":
			m.mode = modeNormal
			if removed, ok := m.st.DeleteActive(); ok {
				if m.sched != nil {
					_ = m.sched.CancelEvent(removed.ID)
				}
				m.status = "deleted " + removed.DisplayName()
			} else {
				m.status = "the only event stays"
			}
			m.syncCarousel()
		default:
			m.mode = modeNormal
			m.status = "kept"
		}

	case modeEditNote:
		switch msg.String() {
		case "enter":
			note := m.input.Value()
			m.st.UpdateActive(func(e *event.Event) {
				e.Memoir.Note = note
				if e.Memoir.CreatedAt == nil {
					ts := m.st.Now().Format(time.RFC3339)
					e.Memoir.CreatedAt = &ts
				}
			})
			m.mode = modeNormal
			m.input.Blur()
			m.status = "memoir saved"
		case "esc":
			m.mode = modeNormal
			m.input.Blur()
			m.status = "edit cancelled"
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case modeNormal:
		switch msg.String() {
		case "q", "ctrl+c":
			m.st.Flush()
			return m, tea.Quit
		case "left", "h":
			m.car.Prev()
		case "right", "l":
			m.car.Next()
		case "m":
			if m.car.Mode() == carousel.ModeCountdown {
				m.car.SetMode(carousel.ModeMemoir)
			} else {
				m.car.SetMode(carousel.ModeCountdown)
			}
		case "a":
			m.st.AppendAndSelect(event.New())
			m.syncCarousel()
			m.status = "added a new event; edit it with countdown set"
		case "d":
			m.mode = modeConfirmDelete
		case "e":
			e := m.st.Active()
			if timeutil.IsMemoir(e.TargetDate, m.st.Now()) {
				m.mode = modeEditNote
				m.input.SetValue(e.Memoir.Note)
				m.input.CursorEnd()
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
			} else {
				m.status = "only memoirs have notes"
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// dots renders the pagination row for the current mode's subset.
func (m Model) dots() string {
	indices := m.car.Indices(m.car.Mode())
	active := m.car.Active()
	out := ""
	for _, i := range indices {
		if out != "" {
			out += " "
		}
		if i == active {
			out += "●"
		} else {
			out += "○"
		}
	}
	return out
}

func counterFace(e *event.Event, now time.Time) string {
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

func progressLine(e *event.Event, now time.Time) string {
	if e.TotalDays == nil || *e.TotalDays <= 0 {
		return ""
	}
	done := *e.TotalDays - timeutil.DaysLeft(e.TargetDate, now)
	if done < 0 {
		done = 0
	}
	return fmt.Sprintf("day %d of %d", done, *e.TotalDays)
}

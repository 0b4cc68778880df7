package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/countdown/pkg/glyph"
	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 4).
			Align(lipgloss.Center)

	fadedCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")).
			Faint(true)

	bigStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	quoteStyle  = lipgloss.NewStyle().Italic(true).Faint(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	if m.firstLaunch {
		return m.place(m.welcomeCard())
	}

	e := m.st.Active()
	now := m.st.Now()
	phase := glyph.PhaseFor(e, now, false)

	var lines []string
	lines = append(lines, labelStyle.Render(phase.Glyph().Symbol+" "+e.DisplayName()))

	switch phase {
	case glyph.Memoir:
		lines = append(lines, bigStyle.Render(timeutil.TimeAgo(e.TargetDate, now)))
		lines = append(lines, faintStyle.Render(e.TargetDate))
		if m.mode == modeEditNote {
			lines = append(lines, m.input.View())
		} else if e.Memoir.HasContent() {
			lines = append(lines, quoteStyle.Render(e.Memoir.Note))
			if n := len(e.Memoir.Photos); n > 0 {
				lines = append(lines, faintStyle.Render(fmt.Sprintf("%d photo(s)", n)))
			}
		} else {
			lines = append(lines, faintStyle.Render("press e to write a memoir"))
		}
	case glyph.DayOf:
		lines = append(lines, bigStyle.Render("It's today! 🎉"))
		lines = append(lines, faintStyle.Render(e.TargetDate))
	default:
		lines = append(lines, bigStyle.Render(counterFace(e, now)))
		lines = append(lines, faintStyle.Render("until "+e.TargetDate))
		if p := progressLine(e, now); p != "" {
			lines = append(lines, faintStyle.Render(p))
		}
		if e.Quote.Text != "" {
			lines = append(lines, quoteStyle.Render(fmt.Sprintf("%q — %s", e.Quote.Text, e.Quote.Author)))
		}
	}

	style := cardStyle
	if m.car.InTransition() || !m.car.Visible() {
		style = fadedCardStyle
	}
	card := style.Width(m.cardWidth()).Render(strings.Join(lines, "\n\n"))

	footer := m.dots()
	if m.mode == modeConfirmDelete {
		footer = statusStyle.Render("delete " + e.DisplayName() + "? y/n")
	} else if m.status != "" {
		footer = footer + "\n" + statusStyle.Render(m.status)
	}

	help := helpStyle.Render("←/→ switch · drag to swipe · m " + m.car.Mode().String() + " · a add · d delete · e memoir · q quit")

	return m.place(lipgloss.JoinVertical(lipgloss.Center, card, footer, help))
}

func (m Model) welcomeCard() string {
	body := strings.Join([]string{
		labelStyle.Render(glyph.Welcome.Glyph().Symbol + " countdown"),
		bigStyle.Render("Welcome"),
		faintStyle.Render("Track the days to the moments that matter,\nthen keep them as memoirs."),
		helpStyle.Render("press any key to begin"),
	}, "\n\n")
	return cardStyle.Width(m.cardWidth()).Render(body)
}

func (m Model) cardWidth() int {
	w := m.termWidth - 8
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) place(content string) string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return content
	}
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, st *store.Store, sched *notify.Scheduler) error {
	p := tea.NewProgram(New(st, sched), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

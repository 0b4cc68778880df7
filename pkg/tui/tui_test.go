package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/countdown/pkg/carousel"
	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func TestWelcomeGatesFirstKey(t *testing.T) {
	st := store.Load(store.NewMemory())
	m := New(st, nil)

	if !strings.Contains(m.View(), "Welcome") {
		t.Fatalf("first launch must show the welcome card")
	}

	next, _ := m.Update(keyPress('x'))
	m = next.(Model)
	if m.firstLaunch {
		t.Fatalf("any key should dismiss the welcome card")
	}
	if st.FirstLaunch() {
		t.Fatalf("dismissing the welcome card must persist the launched flag")
	}
	if strings.Contains(m.View(), "Welcome") {
		t.Fatalf("welcome card still rendered after dismissal")
	}
}

func TestViewShowsCountdownCard(t *testing.T) {
	st := store.Load(store.NewMemory())
	st.MarkLaunched()
	st.UpdateActive(func(e *event.Event) {
		e.EventName = "Graduation"
		e.TargetDate = "2999-06-12"
	})

	m := New(st, nil)
	view := m.View()
	if !strings.Contains(view, "Graduation") {
		t.Fatalf("card missing the event name:\n%s", view)
	}
	if !strings.Contains(view, "until 2999-06-12") {
		t.Fatalf("card missing the target date:\n%s", view)
	}
	if !strings.Contains(view, "●") {
		t.Fatalf("pagination dots missing:\n%s", view)
	}
}

func TestModeToggleNoopWithoutMemoirs(t *testing.T) {
	st := store.Load(store.NewMemory())
	st.MarkLaunched()

	m := New(st, nil)
	next, _ := m.Update(keyPress('m'))
	m = next.(Model)
	if m.car.Mode() != carousel.ModeCountdown {
		t.Fatalf("with no memoirs the mode toggle must stay on countdown")
	}
}

func TestDeleteConfirmKeepsSoleEvent(t *testing.T) {
	st := store.Load(store.NewMemory())
	st.MarkLaunched()

	m := New(st, nil)
	next, _ := m.Update(keyPress('d'))
	m = next.(Model)
	if m.mode != modeConfirmDelete {
		t.Fatalf("d should ask for confirmation")
	}
	next, _ = m.Update(keyPress('y'))
	m = next.(Model)
	if st.Len() != 1 {
		t.Fatalf("the only event must survive deletion, len=%d", st.Len())
	}
	if m.mode != modeNormal {
		t.Fatalf("confirmation should resolve back to normal mode")
	}
}

package memoir

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

// Edit updates the active event's memoir. Only events whose target date has
// passed carry a memoir.
type Edit struct {
	Note        *string
	AddPhotos   []string
	ClearPhotos bool

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit memoir, no store")
	}

	now := n.Store.Now()
	active := n.Store.Active()
	if !timeutil.IsMemoir(active.TargetDate, now) {
		return errors.Errorf("%s has not passed yet; memoirs open the day after the event", active.DisplayName())
	}
	if n.Note != nil && utf8.RuneCountInString(*n.Note) > event.MaxMemoirNote {
		return errors.Errorf("note is %d characters, the limit is %d", utf8.RuneCountInString(*n.Note), event.MaxMemoirNote)
	}

	var tooMany int
	n.Store.UpdateActive(func(e *event.Event) {
		if n.ClearPhotos {
			e.Memoir.Photos = []string{}
		}
		if n.Note != nil {
			e.Memoir.Note = *n.Note
		}
		for _, p := range n.AddPhotos {
			if len(e.Memoir.Photos) >= event.MaxMemoirPhotos {
				tooMany++
				continue
			}
			e.Memoir.Photos = append(e.Memoir.Photos, p)
		}
		if e.Memoir.CreatedAt == nil {
			ts := now.Format(time.RFC3339)
			e.Memoir.CreatedAt = &ts
		}
	})
	if tooMany > 0 {
		return errors.Errorf("dropped %d photo(s): a memoir holds at most %d", tooMany, event.MaxMemoirPhotos)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Event(now, n.Store.Active())
	return nil
}

package sel

import (
	"context"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
)

// Switch moves the active selection, by list index or by event id.
type Switch struct {
	Index  int // negative means unset
	ID     string
	ShowID bool

	Store *store.Store
}

func (n *Switch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not switch, no store")
	}

	target := n.Index
	if n.ID != "" {
		events, _ := n.Store.Snapshot()
		target = -1
		for i, e := range events {
			if e.ID == n.ID {
				target = i
				break
			}
		}
		if target < 0 {
			return errors.Errorf("no event with id %q", n.ID)
		}
	}
	if target < 0 {
		return errors.New("specify --index or --id")
	}

	n.Store.Select(target)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	events, active := n.Store.Snapshot()
	pp.Title("events")
	pp.Events(n.Store.Now(), active, events...)
	return nil
}

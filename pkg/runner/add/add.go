package add

import (
	"context"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/event"
	"tableflip.dev/countdown/pkg/generate"
	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/timeutil"
)

type Add struct {
	Name  string
	Theme string
	On    string // target date, YYYY-MM-DD

	Store  *store.Store
	Quotes generate.QuoteSource
	Images generate.ImageSource
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if n.On != "" {
		if _, ok := timeutil.ParseDate(n.On); !ok {
			return errors.Errorf("invalid date %q, expected YYYY-MM-DD", n.On)
		}
	}

	e := event.New()
	e.EventName = n.Name
	e.Theme = n.Theme
	if n.On != "" {
		e.TargetDate = n.On
		days := timeutil.DaysLeft(n.On, n.Store.Now())
		e.TotalDays = &days
	}

	n.Store.AppendAndSelect(e)

	if n.Theme != "" {
		if err := generate.Refresh(ctx, n.Store, e.ID, n.Theme, n.Quotes, n.Images); err != nil {
			return err
		}
	}
	n.Store.MarkLaunched()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	events, active := n.Store.Snapshot()
	pp.Title("events")
	pp.Events(n.Store.Now(), active, events...)
	return nil
}

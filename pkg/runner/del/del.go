package del

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/printers"
	"tableflip.dev/countdown/pkg/store"
)

// Delete removes the active event. The last remaining event cannot be
// deleted; the list is never empty.
type Delete struct {
	Store     *store.Store
	Scheduler *notify.Scheduler
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}

	removed, ok := n.Store.DeleteActive()
	if !ok {
		fmt.Println("refusing to delete the only event")
		return nil
	}

	if n.Scheduler != nil {
		if err := n.Scheduler.CancelEvent(removed.ID); err != nil {
			return errors.Wrap(err, "cancel reminders for deleted event")
		}
	}

	fmt.Printf("deleted %s\n", removed.DisplayName())

	pp := printers.PrettyPrint{}
	pp.NewLine()
	events, active := n.Store.Snapshot()
	pp.Title("events")
	pp.Events(n.Store.Now(), active, events...)
	return nil
}

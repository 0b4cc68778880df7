package ui

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/store"
	"tableflip.dev/countdown/pkg/tui"
)

type UI struct {
	Store     *store.Store
	Scheduler *notify.Scheduler
	Log       *zap.SugaredLogger
}

func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not run the ui, no store")
	}

	// External edits (another countdown process) show up live.
	if err := n.Store.Watch(ctx); err != nil && n.Log != nil {
		n.Log.Warnw("ui: store watch unavailable", "err", err)
	}
	if n.Scheduler != nil {
		n.Scheduler.Bind(ctx, n.Store)
	}

	defer n.Store.Flush()
	return tui.Run(ctx, n.Store, n.Scheduler)
}

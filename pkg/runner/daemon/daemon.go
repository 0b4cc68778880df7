package daemon

import (
	"context"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/store"
)

// Run services the local notification bucket until interrupted: fires due
// notifications to the terminal and re-reconciles at midnight.
type Run struct {
	Store     *store.Store
	Scheduler *notify.Scheduler
	Local     *notify.Local
	Log       *zap.SugaredLogger
}

func (n *Run) Do(ctx context.Context) error {
	if n.Store == nil || n.Scheduler == nil || n.Local == nil {
		return errors.New("can not run the notify daemon, missing store or notifier")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	// Pick up edits made by other countdown processes while we run.
	if err := n.Store.Watch(ctx); err != nil {
		log.Warnw("daemon: store watch unavailable", "err", err)
	}

	d := notify.NewDaemon(n.Local, n.Scheduler, n.Store, log)
	err := d.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// List prints every pending notification, soonest first.
type List struct {
	Local *notify.Local
}

func (n *List) Do(ctx context.Context) error {
	if n.Local == nil {
		return errors.New("can not list notifications, no notifier")
	}

	all, err := n.Local.All()
	if err != nil {
		return err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].At.Before(all[j].At) })

	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("pending notifications")
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range all {
		tbl.AddRow(p.At.Local().Format("2006-01-02 15:04"), p.Title, p.Body, p.Identifier)
	}
	_, _ = color.Output.Write([]byte(tbl.String() + "\n"))
	return nil
}

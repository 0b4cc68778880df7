package commands

import (
	"os"

	"go.uber.org/zap"

	"tableflip.dev/countdown/pkg/notify"
	"tableflip.dev/countdown/pkg/store"
)

// env holds the per-invocation wiring every subcommand shares.
type env struct {
	Store     *store.Store
	Scheduler *notify.Scheduler
	Local     *notify.Local
	Log       *zap.SugaredLogger
}

// setup resolves config, opens the stores, and wires the scheduler. The
// terminal notifier needs no consent, so permissions are statically granted.
func setup() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	log := newLogger()
	st := store.Load(kv, store.WithLogger(log))
	local := notify.OpenLocal(cfg.BasePath() + ".notify")
	sched := notify.NewScheduler(local, notify.Static(notify.PermissionGranted), notify.WithLogger(log))

	return &env{Store: st, Scheduler: sched, Local: local, Log: log}, nil
}

// Close flushes any pending debounced write before the process exits.
func (e *env) Close() {
	e.Store.Flush()
	_ = e.Log.Sync()
}

func newLogger() *zap.SugaredLogger {
	if os.Getenv("COUNTDOWN_DEBUG") == "" {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

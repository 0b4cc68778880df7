package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/runner/daemon"
)

func addNotify(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Local notification daemon.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNotifyRun(cmd)
	addNotifyLs(cmd)

	topLevel.AddCommand(cmd)
}

func addNotifyRun(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the daemon; fires due reminders to the terminal.",
		Example: `
countdown notify run
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			r := daemon.Run{
				Store:     e.Store,
				Scheduler: e.Scheduler,
				Local:     e.Local,
				Log:       e.Log,
			}
			return r.Do(cmd.Context())
		},
	}
	parent.AddCommand(cmd)
}

func addNotifyLs(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List pending notifications.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			l := daemon.List{Local: e.Local}
			return l.Do(cmd.Context())
		},
	}
	parent.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/commands/options"
	"tableflip.dev/countdown/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage reminders on the active event.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemindAdd(cmd)
	addRemindRm(cmd)
	addRemindLs(cmd)

	topLevel.AddCommand(cmd)
}

func addRemindAdd(parent *cobra.Command) {
	ro := &options.RemindOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder to the active event.",
		Example: `
countdown remind add --at="2026-06-11 09:00"
countdown remind add --at="2026-06-10 18:00" --message "Pack tonight!"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			a := remind.Add{
				At:        ro.At,
				Message:   ro.Message,
				Store:     e.Store,
				Scheduler: e.Scheduler,
			}
			return a.Do(cmd.Context())
		},
	}
	options.AddRemindArgs(cmd, ro)
	parent.AddCommand(cmd)
}

func addRemindRm(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a reminder by id.",
		Example: `
countdown remind rm --id rem_1700000000000_abcde
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			r := remind.Remove{
				ID:        io.ID,
				Store:     e.Store,
				Scheduler: e.Scheduler,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addRemindLs(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the active event's reminders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			l := remind.List{Store: e.Store}
			return l.Do(cmd.Context())
		},
	}
	parent.AddCommand(cmd)
}

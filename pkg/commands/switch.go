package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/commands/options"
	"tableflip.dev/countdown/pkg/runner/sel"
)

func addSwitch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Change which event is active.",
		Example: `
countdown switch --index 2
countdown switch --id evt_1700000000000_abcde
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			s := sel.Switch{
				Index:  io.Index,
				ID:     io.ID,
				ShowID: io.ShowID,
				Store:  e.Store,
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddIndexArgs(cmd, io)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

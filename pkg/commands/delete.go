package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/runner/del"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete the active event.",
		Example: `
countdown delete
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			d := del.Delete{
				Store:     e.Store,
				Scheduler: e.Scheduler,
			}
			return d.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

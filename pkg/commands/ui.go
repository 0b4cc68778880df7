package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Full-screen event carousel.",
		Example: `
countdown ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			u := ui.UI{
				Store:     e.Store,
				Scheduler: e.Scheduler,
				Log:       e.Log,
			}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

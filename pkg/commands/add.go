package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/commands/options"
	"tableflip.dev/countdown/pkg/generate"
	"tableflip.dev/countdown/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.SettingsOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new event and make it active.",
		Example: `
countdown add --name "Graduation" --theme graduation --date 2027-06-12
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			a := add.Add{
				Name:   so.Name,
				Theme:  so.Theme,
				On:     so.On,
				Store:  e.Store,
				Quotes: generate.Seeded{},
				Images: generate.Seeded{},
			}
			return a.Do(cmd.Context())
		},
	}
	options.AddSettingsArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

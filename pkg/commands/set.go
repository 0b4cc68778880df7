package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/commands/options"
	"tableflip.dev/countdown/pkg/generate"
	"tableflip.dev/countdown/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	so := &options.SettingsOptions{}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit the active event's settings.",
		Example: `
countdown set --name "Honeymoon" --date 2026-09-20
countdown set --theme wedding
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			s := set.Set{
				Name:      options.Changed(cmd, "name", so.Name),
				Theme:     options.Changed(cmd, "theme", so.Theme),
				On:        options.Changed(cmd, "date", so.On),
				Font:      options.Changed(cmd, "font", so.Font),
				Counter:   options.Changed(cmd, "counter", so.Counter),
				Store:     e.Store,
				Scheduler: e.Scheduler,
				Quotes:    generate.Seeded{},
				Images:    generate.Seeded{},
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddSettingsArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/commands/options"
	"tableflip.dev/countdown/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.ModeOptions{}
	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"ls", "list"},
		Short:   "List events.",
		Example: `
countdown get
countdown get --memoirs
countdown get --detail
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			g := get.Get{
				ShowID:     io.ShowID,
				Memoirs:    mo.Memoirs,
				Countdowns: mo.Countdowns,
				Detail:     mo.Detail,
				Store:      e.Store,
			}
			return g.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddModeArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

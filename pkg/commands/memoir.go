package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/countdown/pkg/commands/options"
	"tableflip.dev/countdown/pkg/runner/memoir"
)

func addMemoir(topLevel *cobra.Command) {
	mo := &options.MemoirOptions{}
	cmd := &cobra.Command{
		Use:   "memoir",
		Short: "Edit the active (passed) event's memoir.",
		Example: `
countdown memoir --note "Best day of the year."
countdown memoir --photo ~/pics/cake.jpg --photo ~/pics/toast.jpg
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			m := memoir.Edit{
				Note:        options.Changed(cmd, "note", mo.Note),
				AddPhotos:   mo.Photos,
				ClearPhotos: mo.ClearPhotos,
				Store:       e.Store,
			}
			return m.Do(cmd.Context())
		},
	}
	options.AddMemoirArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

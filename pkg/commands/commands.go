package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: base.Wrap80("Count down to the days that matter, then keep them as memoirs."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addSet(topLevel)
	addSwitch(topLevel)
	addDelete(topLevel)
	addMemoir(topLevel)
	addRemind(topLevel)
	addNotify(topLevel)
	addVersion(topLevel)
}

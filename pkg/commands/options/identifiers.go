package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
	Index  int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show event and reminder ids.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify an event or reminder id.")
}

func AddIndexArgs(cmd *cobra.Command, o *IDOptions) {
	o.Index = -1
	cmd.Flags().IntVar(&o.Index, "index", -1,
		"Specify an event by list position, starting at 0.")
}

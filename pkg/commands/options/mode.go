package options

import (
	"github.com/spf13/cobra"
)

// ModeOptions
type ModeOptions struct {
	Memoirs    bool
	Countdowns bool
	Detail     bool
}

func AddModeArgs(cmd *cobra.Command, o *ModeOptions) {
	cmd.Flags().BoolVar(&o.Memoirs, "memoirs", false,
		"Only events whose date has passed.")
	cmd.Flags().BoolVar(&o.Countdowns, "countdowns", false,
		"Only events still counting down.")
	cmd.Flags().BoolVar(&o.Detail, "detail", false,
		"Show the active event in full instead of the list.")
}

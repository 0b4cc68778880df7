package options

import (
	"github.com/spf13/cobra"
)

// RemindOptions
type RemindOptions struct {
	At      string
	Message string
}

func AddRemindArgs(cmd *cobra.Command, o *RemindOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`When the reminder fires, example: --at="2026-06-11 09:00".`)
	cmd.Flags().StringVar(&o.Message, "message", "",
		"Custom notification body; leave empty for generated copy.")
}

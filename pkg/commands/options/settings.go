// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SettingsOptions
type SettingsOptions struct {
	Name    string
	Theme   string
	On      string
	Font    string
	Counter string
}

func AddSettingsArgs(cmd *cobra.Command, o *SettingsOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Name of the event.")
	cmd.Flags().StringVar(&o.Theme, "theme", "",
		"Theme of the event, drives generated quotes and backgrounds.")
	cmd.Flags().StringVar(&o.On, "date", "",
		`Target date for the event, example: --date="2026-12-31".`)
	cmd.Flags().StringVar(&o.Font, "font", "",
		"Display font id.")
	cmd.Flags().StringVar(&o.Counter, "counter", "",
		"Counter style.")
}

// Changed returns a pointer to the flag's value when the user set it, nil
// otherwise, so edits can distinguish "clear this" from "leave it alone".
func Changed(cmd *cobra.Command, flag, value string) *string {
	if cmd.Flags().Changed(flag) {
		return &value
	}
	return nil
}

package options

import (
	"github.com/spf13/cobra"
)

// MemoirOptions
type MemoirOptions struct {
	Note        string
	Photos      []string
	ClearPhotos bool
}

func AddMemoirArgs(cmd *cobra.Command, o *MemoirOptions) {
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Memoir note for the active (passed) event.")
	cmd.Flags().StringSliceVar(&o.Photos, "photo", nil,
		"Attach a photo path or URI; repeatable.")
	cmd.Flags().BoolVar(&o.ClearPhotos, "clear-photos", false,
		"Remove all attached photos first.")
}

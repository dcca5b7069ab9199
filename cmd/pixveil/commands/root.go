package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "pixveil",
		Short:         "Hide images and text inside other images",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(hideImgCmd(), decryptImgCmd(), hideTxtCmd(), decryptTxtCmd())
	return root.Execute()
}

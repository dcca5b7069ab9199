package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucin/pixveil"
)

// decrypt_txt --image I [--golay-seed N]
func decryptTxtCmd() *cobra.Command {
	var imagePath string
	var golaySeed int64
	cmd := &cobra.Command{
		Use:   "decrypt_txt",
		Short: "Recover hidden text from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []pixveil.Option
			if cmd.Flags().Changed("golay-seed") {
				opts = append(opts, pixveil.WithGolay(golaySeed))
			}

			img, err := openImage(imagePath)
			if err != nil {
				return err
			}
			text, err := pixveil.RevealText(cmd.Context(), img, opts...)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "stego image path")
	cmd.Flags().Int64Var(&golaySeed, "golay-seed", 0, "seed used when the text was hidden with a Golay code")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

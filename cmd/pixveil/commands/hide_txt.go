package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucin/pixveil"
)

// hide_txt --image I --output O --text TXT [--golay-seed N]
func hideTxtCmd() *cobra.Command {
	var imagePath, output, text string
	var golaySeed int64
	cmd := &cobra.Command{
		Use:   "hide_txt",
		Short: "Hide text inside an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []pixveil.Option
			if cmd.Flags().Changed("golay-seed") {
				opts = append(opts, pixveil.WithGolay(golaySeed))
			}

			img, err := openImage(imagePath)
			if err != nil {
				return err
			}
			hidden, err := pixveil.HideText(cmd.Context(), img, text, opts...)
			if err != nil {
				return err
			}
			if err := saveImage(output, hidden); err != nil {
				return err
			}
			fmt.Printf("text hidden in %s%s\n", output, distortion(img, hidden))
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "carrier image path")
	cmd.Flags().StringVar(&output, "output", "", "output image path")
	cmd.Flags().StringVar(&text, "text", "", "text to hide")
	cmd.Flags().Int64Var(&golaySeed, "golay-seed", 0, "protect the text with a Golay code shuffled with this seed")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucin/pixveil"
)

// decrypt_img --source S --output O
func decryptImgCmd() *cobra.Command {
	var source, output string
	cmd := &cobra.Command{
		Use:   "decrypt_img",
		Short: "Recover the hidden image from a stego image",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openImage(source)
			if err != nil {
				return err
			}
			decrypted, err := pixveil.RevealImage(cmd.Context(), src)
			if err != nil {
				return err
			}
			if err := saveImage(output, decrypted); err != nil {
				return err
			}
			fmt.Printf("image decrypted to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "stego image path")
	cmd.Flags().StringVar(&output, "output", "", "output image path")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

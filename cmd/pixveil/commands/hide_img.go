package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucin/pixveil"
)

// hide_img --source S --secret T --output O [--resize|--expand]
func hideImgCmd() *cobra.Command {
	var source, secret, output string
	var resize, expand bool
	cmd := &cobra.Command{
		Use:   "hide_img",
		Short: "Hide a secret image inside a source image",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []pixveil.Option
			if resize {
				opts = append(opts, pixveil.WithResize())
			}
			if expand {
				opts = append(opts, pixveil.WithExpand())
			}

			src, err := openImage(source)
			if err != nil {
				return err
			}
			sec, err := openImage(secret)
			if err != nil {
				return err
			}

			hidden, err := pixveil.HideImage(cmd.Context(), src, sec, opts...)
			if err != nil {
				return err
			}
			if err := saveImage(output, hidden); err != nil {
				return err
			}
			fmt.Printf("image hidden in %s%s\n", output, distortion(src, hidden))
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "carrier image path")
	cmd.Flags().StringVar(&secret, "secret", "", "secret image path")
	cmd.Flags().StringVar(&output, "output", "", "output image path")
	cmd.Flags().BoolVar(&resize, "resize", false, "resample the smaller image to fit")
	cmd.Flags().BoolVar(&expand, "expand", false, "pad the smaller image with black to fit")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("resize", "expand")
	return cmd
}

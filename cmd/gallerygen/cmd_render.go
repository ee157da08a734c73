package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-gallerygen/pkg/gallery"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		license string
		prefix  string
		thumb   bool
	)

	cmd := &cobra.Command{
		Use:   "render <image> [source-url] [attribution-url] [attribution-name]",
		Short: "Print the HTML fragment for a single image",
		Long: `Prints the fragment one manifest row produces. Omitted values take their
defaults and values past the fourth are ignored.

Example:
  gallerygen render images/cat.jpg https://example.com/cat https://example.com/ada Ada`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args))
			for i, arg := range args {
				values[i] = arg
			}
			img := gallery.New(values...)
			tmpl := gallery.NewTemplate(license, gallery.WithImagePrefix(prefix))

			fragment := tmpl.Render(img)
			if thumb {
				fragment = tmpl.RenderThumb(img)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), fragment)
			return err
		},
	}

	cmd.Flags().StringVar(&license, "license", gallery.LicenseCCBY, "license caption")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix prepended to the image path")
	cmd.Flags().BoolVar(&thumb, "thumb", false, "print the thumbnail link instead")
	return cmd
}

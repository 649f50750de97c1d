package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/N1K0232/winforms"
	"github.com/N1K0232/winforms/internal/render"
)

// newRenderCmd creates the render command: load a scene, optionally
// resize its root, and print an ASCII snapshot of the laid-out tree.
func newRenderCmd() *cobra.Command {
	var (
		width   int
		height  int
		measure bool
	)

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Lay out a scene file and print it as ASCII art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			scene, err := winforms.LoadScene(args[0])
			if err != nil {
				return err
			}
			root := scene.Root

			if width > 0 || height > 0 {
				b := root.Bounds()
				if width > 0 {
					b.Width = width
				}
				if height > 0 {
					b.Height = height
				}
				root.SetBounds(b, winforms.BoundsWidth|winforms.BoundsHeight)
			}

			logger.Debug("scene loaded", "root", root.Name(), "children", len(root.Children()), "bounds", root.Bounds())

			if measure {
				pref := winforms.Measure(root, winforms.NewSize(winforms.Unbounded, winforms.Unbounded))
				logger.Infof("preferred size: %dx%d", pref.Width, pref.Height)
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Snapshot(root))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "override the root width before layout")
	cmd.Flags().IntVar(&height, "height", 0, "override the root height before layout")
	cmd.Flags().BoolVar(&measure, "measure", false, "also report the root's measured preferred size")

	return cmd
}

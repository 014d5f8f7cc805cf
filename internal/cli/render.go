package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netlistkit/netrw/pkg/netio"
	"github.com/netlistkit/netrw/pkg/render"
)

// renderCommand creates the render command for connectivity diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [design.json]",
		Short: "Render a design as a connectivity diagram",
		Long: `Render a design as a connectivity diagram.

Cells are drawn as boxes and every net as edges from its driver to each
of its users. Output formats: svg (default), png, dot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with new extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label edges with port names and nodes with cell types")

	return cmd
}

func (c *CLI) runRender(input, output, format string, detailed bool) error {
	switch format {
	case "svg", "png", "dot":
	default:
		return fmt.Errorf("unknown format %q (want svg, png, or dot)", format)
	}

	d, err := netio.ReadDesignFile(input)
	if err != nil {
		return fmt.Errorf("load design %s: %w", input, err)
	}

	dot := render.ToDOT(d, render.Options{Detailed: detailed})

	if output == "" {
		output = strings.TrimSuffix(input, ".json") + "." + format
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		sp := newSpinner(fmt.Sprintf("Rendering %d cells...", d.CellCount()))
		sp.Start()
		if format == "svg" {
			data, err = render.RenderSVG(dot)
		} else {
			data, err = render.RenderPNG(dot)
		}
		if err != nil {
			sp.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		sp.Stop()
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Rendered %s", d.Name())
	printFile(output)
	return nil
}

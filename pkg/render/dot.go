// Package render draws netlist designs as Graphviz diagrams: cells become
// boxes, and every net contributes one edge from its driver to each user.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/netlistkit/netrw/pkg/netlist"
)

// Options configures netlist rendering.
type Options struct {
	// Detailed labels edges with the driving and consuming port names in
	// addition to the net name, and includes the cell type in node labels.
	Detailed bool
}

// ToDOT converts a design to Graphviz DOT format. The resulting string can
// be rendered with [RenderSVG] or [RenderPNG].
//
// Driven nets appear as direct driver→user edges. Undriven nets (legal
// transiently, and common for top-level I/O stubs) are drawn as grey
// ellipse nodes connected to their users so they are not silently dropped.
func ToDOT(d *netlist.Design, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph netlist {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, c := range d.Cells() {
		label := c.Name
		if opts.Detailed && c.Type != "" {
			label = c.Name + "\n" + c.Type
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", c.Name, label)
	}

	buf.WriteString("\n")
	for _, n := range d.Nets() {
		if n.Driver.IsSet() {
			for _, u := range n.Users {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", n.Driver.Cell, u.Cell, edgeLabel(n, u, opts))
			}
			continue
		}
		if len(n.Users) == 0 {
			continue
		}
		stub := "net:" + n.Name
		fmt.Fprintf(&buf, "  %q [shape=ellipse, fillcolor=lightgrey, label=%q];\n", stub, n.Name)
		for _, u := range n.Users {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", stub, u.Cell)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeLabel(n *netlist.Net, user netlist.PortRef, opts Options) string {
	if !opts.Detailed {
		return n.Name
	}
	return strings.Join([]string{n.Name, n.Driver.Port + "->" + user.Port}, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/netlistkit/netrw/pkg/netio"
	"github.com/netlistkit/netrw/pkg/netlist"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [design.json]",
		Short: "Print cell, net, and port counts for a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := netio.ReadDesignFile(args[0])
			if err != nil {
				return fmt.Errorf("load design %s: %w", args[0], err)
			}
			printStats(d)
			return nil
		},
	}
}

func printStats(d *netlist.Design) {
	if d.Name() != "" {
		printKeyValue("design", d.Name())
	}
	printKeyValue("cells", fmt.Sprintf("%d", d.CellCount()))
	printKeyValue("nets", fmt.Sprintf("%d", d.NetCount()))
	printKeyValue("ports", fmt.Sprintf("%d", d.PortCount()))

	undriven, unused := 0, 0
	for _, n := range d.Nets() {
		if !n.Driver.IsSet() {
			undriven++
		}
		if len(n.Users) == 0 {
			unused++
		}
	}
	if undriven > 0 {
		printKeyValue("undriven", fmt.Sprintf("%d", undriven))
	}
	if unused > 0 {
		printKeyValue("unused", fmt.Sprintf("%d", unused))
	}

	byType := cellTypeCounts(d)
	for _, typ := range slices.Sorted(maps.Keys(byType)) {
		printKeyValue("  "+typ, fmt.Sprintf("%d", byType[typ]))
	}
}

// cellTypeCounts tallies cells per type tag.
func cellTypeCounts(d *netlist.Design) map[string]int {
	counts := make(map[string]int)
	for _, c := range d.Cells() {
		counts[c.Type]++
	}
	return counts
}

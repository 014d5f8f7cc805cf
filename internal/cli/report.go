package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netlistkit/netrw/pkg/device"
	"github.com/netlistkit/netrw/pkg/netio"
	"github.com/netlistkit/netrw/pkg/netlist"
)

// reportCommand creates the report command for device utilization.
func (c *CLI) reportCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "report [design.json]",
		Short: "Report device utilization for a design",
		Long: `Report device utilization for a design.

Each cell is classified into a resource bucket via the device profile's
cell-type table, and counted against the capacity of the profile's
non-hidden placement sites. Buckets with zero capacity are omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(args[0], profilePath)
		},
	}

	cmd.Flags().StringVarP(&profilePath, "device", "d", "", "TOML device profile (required)")
	cmd.MarkFlagRequired("device")

	return cmd
}

func (c *CLI) runReport(designPath, profilePath string) error {
	prog := newProgress(c.Logger)

	d, err := netio.ReadDesignFile(designPath)
	if err != nil {
		return fmt.Errorf("load design %s: %w", designPath, err)
	}
	grid, err := device.LoadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("load device profile %s: %w", profilePath, err)
	}
	prog.done(fmt.Sprintf("Loaded %d cells against device %s", d.CellCount(), grid.Name()))

	rows := netlist.UtilizationReport(d, grid)
	if len(rows) == 0 {
		printWarning("Device profile has no usable capacity")
		return nil
	}

	printInfo("Device utilization:")
	printUtilization(rows)

	unclassified := 0
	for _, cell := range d.Cells() {
		if _, ok := grid.CellBucket(cell.Type); !ok {
			unclassified++
		}
	}
	if unclassified > 0 {
		printWarning("%d cells have types the device profile does not classify", unclassified)
	}
	return nil
}

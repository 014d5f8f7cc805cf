package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netlistkit/netrw/pkg/netio"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [design.json]",
		Short: "Check a design's structural integrity",
		Long: `Check a design's structural integrity.

Loading already rejects files that violate construction invariants
(duplicate names, multiple drivers, bad directions); validate additionally
cross-checks every stored back-reference against the net records, which
catches corruption introduced by external tools that edit design files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := netio.ReadDesignFile(args[0])
			if err != nil {
				return fmt.Errorf("load design %s: %w", args[0], err)
			}
			if err := d.Validate(); err != nil {
				printError("Design is corrupt: %v", err)
				return err
			}
			printSuccess("Design is structurally consistent (%d cells, %d nets)", d.CellCount(), d.NetCount())
			return nil
		},
	}
}

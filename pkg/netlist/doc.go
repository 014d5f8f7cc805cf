// Package netlist provides the mutation layer for a netlist intermediate
// representation: a graph of logic cells, their direction-typed ports, and
// the nets connecting them.
//
// # Overview
//
// Transformation passes (technology mapping, cell swapping, bus splitting,
// buffer insertion) rewrite the graph's connectivity through this package:
// attach, detach, rename, relocate, and duplicate connections. Every
// exported operation preserves the graph's structural invariants:
//
//   - a connected port appears in exactly one net's records, as the driver
//     (Out ports) or exactly once as a user (In/InOut ports)
//   - a net has at most one driver, and every user has direction In or InOut
//   - cell and net names are unique within the design
//   - a port's direction never changes after creation
//
// Placement, routing, and timing analysis all assume these invariants; a
// breach here corrupts the design silently and surfaces far downstream,
// which is why violations are reported as fatal [ContractError] values
// rather than tolerated.
//
// # Basic Usage
//
// Create a design with [NewDesign], populate it with [Design.AddCell],
// [Design.AddPort], and [Design.AddNet], then rewire:
//
//	d := netlist.NewDesign("top")
//	lut, _ := d.AddCell("lut0", "LUT4")
//	dff, _ := d.AddCell("dff0", "DFF")
//	d.AddPort(lut, "O", netlist.Out)
//	d.AddPort(dff, "D", netlist.In)
//	d.ConnectPorts(lut, "O", dff, "D")
//
// The primitive pair [Design.Connect] / [Design.Disconnect] underlies all
// higher-level operations: [Design.RenamePort], [Design.RenameNet],
// [Design.ReplacePort], [Design.CopyPort], and the bus-indexed batches
// [Design.ReplaceBus] and [Design.CopyBus].
//
// # Error Policy
//
// Operating on a nonexistent port is tolerated as a silent no-op by the
// tolerant operations (disconnect, rename, replace, copy), accommodating
// passes that rewire speculatively. Invariant breaches (double connect,
// second driver, direction mismatch, name collision) return a
// [ContractError] wrapping a sentinel kind; these signal a programming
// error in the calling pass and should abort the enclosing run, not be
// retried. Composite operations are not transactional: a fatal error
// mid-batch leaves the completed sub-steps applied.
//
// # Concurrency
//
// A Design has no internal locking. The caller holds exclusive access for
// the duration of any rewiring sequence; concurrent mutation, or reads
// concurrent with mutation, are not supported.
package netlist

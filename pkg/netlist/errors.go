package netlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyConnected is returned by [Design.Connect] when the target
	// port already references a net. Connecting an occupied port is a
	// contract violation in the calling pass, not a recoverable condition.
	ErrAlreadyConnected = errors.New("port already connected")

	// ErrMultipleDrivers is returned when an Out port is connected to a net
	// that already has a driver. A net has exactly one driver.
	ErrMultipleDrivers = errors.New("net already has a driver")

	// ErrDirectionMismatch is returned by [Design.ReplacePort] when the
	// replacement port exists with a different direction than the source.
	ErrDirectionMismatch = errors.New("port direction mismatch")

	// ErrNameCollision is returned when a cell, net, or port name is
	// already taken, including the derived net name synthesized by
	// [Design.ConnectPorts].
	ErrNameCollision = errors.New("name already in use")

	// ErrInvalidPortType is returned when a port carries a direction value
	// outside the enum. This indicates memory corruption or a construction
	// bug, never a legitimate runtime state.
	ErrInvalidPortType = errors.New("invalid port direction")

	// ErrPortNotFound is returned by [Design.Connect] when the named port
	// does not exist on the cell. The connect primitive requires its target
	// to exist; only the tolerant operations (disconnect, rename, replace,
	// copy) treat a missing port as a silent no-op.
	ErrPortNotFound = errors.New("no such port")

	// ErrCorruptDesign is returned by [Design.Validate] when the stored
	// cross-references disagree with each other (stale back-reference,
	// dangling driver or user entry, registry key mismatch).
	ErrCorruptDesign = errors.New("design integrity violation")
)

// ContractError reports a violated rewiring contract along with the
// identities involved. It wraps one of the sentinel errors above, so
// callers match with errors.Is and decide whether to propagate or abort.
//
// Contract errors must not be caught and retried: by the time one is
// returned the calling pass has already broken an invariant, and the
// design may be partially rewired.
type ContractError struct {
	Op   string // operation that detected the violation
	Cell string // cell involved, if any
	Port string // port involved, if any
	Net  string // net involved, if any
	Err  error  // sentinel kind
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Op, e.Err)
	if e.Cell != "" {
		fmt.Fprintf(&b, " (cell %q", e.Cell)
		if e.Port != "" {
			fmt.Fprintf(&b, ", port %q", e.Port)
		}
		b.WriteString(")")
	}
	if e.Net != "" {
		fmt.Fprintf(&b, " (net %q)", e.Net)
	}
	return b.String()
}

// Unwrap returns the sentinel kind for errors.Is matching.
func (e *ContractError) Unwrap() error { return e.Err }

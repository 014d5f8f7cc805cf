package netlist

import (
	"maps"
	"slices"
)

// Direction classifies a port's role on its cell.
type Direction int

const (
	// Out marks a port that drives a net. A net has at most one Out port.
	Out Direction = iota
	// In marks a port that consumes a net's value.
	In
	// InOut marks a bidirectional port. For connectivity bookkeeping it is
	// treated like In: it appears in a net's user list, never as the driver.
	InOut
)

// String returns the lowercase wire name of the direction ("out", "in",
// "inout"), or "invalid" for values outside the enum.
func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case InOut:
		return "inout"
	default:
		return "invalid"
	}
}

// ParseDirection converts a wire name back into a Direction.
// Returns false for anything other than "out", "in", or "inout".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "out":
		return Out, true
	case "in":
		return In, true
	case "inout":
		return InOut, true
	default:
		return 0, false
	}
}

// PortRef identifies a port by the name of its owning cell and the port name.
// It is a non-owning relation: the referenced port is resolved against the
// Design at use time, so refs survive operations that move storage around.
// The zero value means "unset" (e.g. a net with no driver).
type PortRef struct {
	Cell string
	Port string
}

// IsSet reports whether the ref points at anything.
func (r PortRef) IsSet() bool { return r.Cell != "" || r.Port != "" }

// Port is a named, direction-typed connection point on a cell.
// Net is nil while the port is unconnected. A port's direction never
// changes after creation.
type Port struct {
	Name string
	Dir  Direction
	Net  *Net
}

// Cell is a logic or device instance with a typed set of named ports.
// Cells are owned by the Design that created them.
type Cell struct {
	Name  string
	Type  string
	Ports map[string]*Port
}

// Port returns the named port, or nil if the cell has no port of that name.
func (c *Cell) Port(name string) *Port { return c.Ports[name] }

// PortNames returns the cell's port names in sorted order.
func (c *Cell) PortNames() []string {
	return slices.Sorted(maps.Keys(c.Ports))
}

// Net is a named equivalence class connecting one driver port to zero or
// more user ports. Driver is the zero PortRef while the net is undriven;
// both driver and users may be empty transiently during rewiring.
type Net struct {
	Name   string
	Driver PortRef
	Users  []PortRef
}

// Design is the owned store of cells and nets and the context every
// rewiring operation runs against. It is a plain in-memory registry with
// no internal locking: callers must hold exclusive access for the duration
// of any mutation sequence.
//
// The zero value is not usable - use NewDesign.
type Design struct {
	name  string
	cells map[string]*Cell
	nets  map[string]*Net
}

// NewDesign creates an empty design. The name is informational only
// (it shows up in diagnostics) and may be empty.
func NewDesign(name string) *Design {
	return &Design{
		name:  name,
		cells: make(map[string]*Cell),
		nets:  make(map[string]*Net),
	}
}

// Name returns the design's informational name.
func (d *Design) Name() string { return d.name }

// AddCell creates a cell with the given name and type tag.
// Returns ErrNameCollision if a cell with that name already exists.
func (d *Design) AddCell(name, typ string) (*Cell, error) {
	if _, exists := d.cells[name]; exists {
		return nil, &ContractError{Op: "AddCell", Cell: name, Err: ErrNameCollision}
	}
	c := &Cell{Name: name, Type: typ, Ports: make(map[string]*Port)}
	d.cells[name] = c
	return c, nil
}

// AddPort creates an unconnected port on the cell.
// Returns ErrNameCollision if the cell already has a port of that name,
// or ErrInvalidPortType if dir is outside the enum.
func (d *Design) AddPort(cell *Cell, name string, dir Direction) (*Port, error) {
	if _, exists := cell.Ports[name]; exists {
		return nil, &ContractError{Op: "AddPort", Cell: cell.Name, Port: name, Err: ErrNameCollision}
	}
	switch dir {
	case Out, In, InOut:
	default:
		return nil, &ContractError{Op: "AddPort", Cell: cell.Name, Port: name, Err: ErrInvalidPortType}
	}
	p := &Port{Name: name, Dir: dir}
	cell.Ports[name] = p
	return p, nil
}

// AddNet creates an empty net (no driver, no users).
// Returns ErrNameCollision if a net with that name already exists.
func (d *Design) AddNet(name string) (*Net, error) {
	if _, exists := d.nets[name]; exists {
		return nil, &ContractError{Op: "AddNet", Net: name, Err: ErrNameCollision}
	}
	n := &Net{Name: name}
	d.nets[name] = n
	return n, nil
}

// Cell returns the named cell, or nil if it does not exist.
func (d *Design) Cell(name string) *Cell { return d.cells[name] }

// Net returns the named net, or nil if it does not exist.
func (d *Design) Net(name string) *Net { return d.nets[name] }

// Cells returns all cells sorted by name.
func (d *Design) Cells() []*Cell {
	cells := make([]*Cell, 0, len(d.cells))
	for _, name := range slices.Sorted(maps.Keys(d.cells)) {
		cells = append(cells, d.cells[name])
	}
	return cells
}

// Nets returns all nets sorted by name.
func (d *Design) Nets() []*Net {
	nets := make([]*Net, 0, len(d.nets))
	for _, name := range slices.Sorted(maps.Keys(d.nets)) {
		nets = append(nets, d.nets[name])
	}
	return nets
}

// CellCount returns the number of cells in the design.
func (d *Design) CellCount() int { return len(d.cells) }

// NetCount returns the number of nets in the design.
func (d *Design) NetCount() int { return len(d.nets) }

// PortCount returns the total number of ports across all cells.
func (d *Design) PortCount() int {
	total := 0
	for _, c := range d.cells {
		total += len(c.Ports)
	}
	return total
}

// resolve looks a PortRef up against the design. Returns nil if either
// the cell or the port no longer exists.
func (d *Design) resolve(ref PortRef) *Port {
	c := d.cells[ref.Cell]
	if c == nil {
		return nil
	}
	return c.Ports[ref.Port]
}

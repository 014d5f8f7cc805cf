// Package netio reads and writes netlist designs as JSON.
//
// The netlist core itself never serializes; this package converts between
// the in-memory [netlist.Design] and a canonical on-disk format. Designs
// are rebuilt through the core's construction and connect operations, so
// every structural invariant is enforced on load: a malformed file cannot
// produce a corrupt design.
package netio

import (
	"fmt"
	"slices"
	"strings"

	"github.com/netlistkit/netrw/pkg/netlist"
)

// =============================================================================
// Design - Canonical Serialization Format
// =============================================================================

// Design is the canonical JSON shape of a netlist. The format is
// human-readable and round-trip faithful: import → rewire → export →
// re-import preserves connectivity exactly.
type Design struct {
	Name  string `json:"name,omitempty"`
	Cells []Cell `json:"cells"`
	Nets  []Net  `json:"nets"`
}

// Cell is one cell instance with its typed ports.
type Cell struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Ports []Port `json:"ports"`
}

// Port is a named connection point. Dir is "out", "in", or "inout".
type Port struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// Net connects an optional driver to zero or more users.
type Net struct {
	Name   string    `json:"name"`
	Driver *PortRef  `json:"driver,omitempty"`
	Users  []PortRef `json:"users,omitempty"`
}

// PortRef names a port on a cell.
type PortRef struct {
	Cell string `json:"cell"`
	Port string `json:"port"`
}

// =============================================================================
// Design ↔ netlist.Design Conversion
// =============================================================================

// FromDesign converts an in-memory design to its serialization format.
// Cells, ports, nets, and user lists are all sorted for deterministic
// output.
func FromDesign(d *netlist.Design) Design {
	out := Design{Name: d.Name()}

	for _, c := range d.Cells() {
		cell := Cell{Name: c.Name, Type: c.Type}
		for _, pname := range c.PortNames() {
			cell.Ports = append(cell.Ports, Port{Name: pname, Dir: c.Port(pname).Dir.String()})
		}
		out.Cells = append(out.Cells, cell)
	}

	for _, n := range d.Nets() {
		net := Net{Name: n.Name}
		if n.Driver.IsSet() {
			net.Driver = &PortRef{Cell: n.Driver.Cell, Port: n.Driver.Port}
		}
		for _, u := range n.Users {
			net.Users = append(net.Users, PortRef{Cell: u.Cell, Port: u.Port})
		}
		slices.SortFunc(net.Users, func(a, b PortRef) int {
			if c := strings.Compare(a.Cell, b.Cell); c != 0 {
				return c
			}
			return strings.Compare(a.Port, b.Port)
		})
		out.Nets = append(out.Nets, net)
	}

	return out
}

// ToDesign rebuilds an in-memory design from its serialization format.
// Construction goes through the core's AddCell/AddPort/AddNet/Connect
// surface, so duplicate names, unknown directions, missing refs, double
// connections, and multiple drivers are all rejected here.
func ToDesign(dj Design) (*netlist.Design, error) {
	d := netlist.NewDesign(dj.Name)

	for _, cj := range dj.Cells {
		c, err := d.AddCell(cj.Name, cj.Type)
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", cj.Name, err)
		}
		for _, pj := range cj.Ports {
			dir, ok := netlist.ParseDirection(pj.Dir)
			if !ok {
				return nil, fmt.Errorf("cell %q port %q: unknown direction %q", cj.Name, pj.Name, pj.Dir)
			}
			if _, err := d.AddPort(c, pj.Name, dir); err != nil {
				return nil, fmt.Errorf("cell %q port %q: %w", cj.Name, pj.Name, err)
			}
		}
	}

	for _, nj := range dj.Nets {
		n, err := d.AddNet(nj.Name)
		if err != nil {
			return nil, fmt.Errorf("net %q: %w", nj.Name, err)
		}
		if nj.Driver != nil {
			if err := connectRef(d, n, *nj.Driver, true); err != nil {
				return nil, fmt.Errorf("net %q driver: %w", nj.Name, err)
			}
		}
		for _, u := range nj.Users {
			if err := connectRef(d, n, u, false); err != nil {
				return nil, fmt.Errorf("net %q user: %w", nj.Name, err)
			}
		}
	}

	return d, nil
}

func connectRef(d *netlist.Design, n *netlist.Net, ref PortRef, wantDriver bool) error {
	c := d.Cell(ref.Cell)
	if c == nil {
		return fmt.Errorf("unknown cell %q", ref.Cell)
	}
	p := c.Port(ref.Port)
	if p == nil {
		return fmt.Errorf("unknown port %s/%s", ref.Cell, ref.Port)
	}
	if wantDriver && p.Dir != netlist.Out {
		return fmt.Errorf("%s/%s: not an out port", ref.Cell, ref.Port)
	}
	if !wantDriver && p.Dir == netlist.Out {
		return fmt.Errorf("%s/%s: out port listed as user", ref.Cell, ref.Port)
	}
	return d.Connect(n, c, ref.Port)
}

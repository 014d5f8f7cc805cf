package netlist

import "fmt"

// Validate checks the design's structural integrity and returns nil if it
// is consistent. It verifies, for every cell, port, and net:
//
//  1. A connected port appears in its net's records exactly once, as the
//     driver for Out ports or as a user for In/InOut ports, and the net is
//     registered under its own name.
//  2. Every net driver resolves to a live Out port that points back at the
//     net; every user entry resolves to a live In/InOut port that points
//     back at the net.
//  3. Registry keys agree with the stored entity names.
//
// Violations are reported as ErrCorruptDesign (or ErrInvalidPortType for
// an out-of-enum direction) wrapped with the identities involved. Use it
// in tests and after external construction passes; the rewiring operations
// themselves maintain these invariants.
func (d *Design) Validate() error {
	for name, c := range d.cells {
		if c.Name != name {
			return fmt.Errorf("%w: cell registered as %q but named %q", ErrCorruptDesign, name, c.Name)
		}
		for pname, p := range c.Ports {
			if p.Name != pname {
				return fmt.Errorf("%w: port registered as %q but named %q on cell %q", ErrCorruptDesign, pname, p.Name, name)
			}
			switch p.Dir {
			case Out, In, InOut:
			default:
				return fmt.Errorf("%w: port %q on cell %q", ErrInvalidPortType, pname, name)
			}
			if p.Net == nil {
				continue
			}
			if d.nets[p.Net.Name] != p.Net {
				return fmt.Errorf("%w: port %q on cell %q references unregistered net %q", ErrCorruptDesign, pname, name, p.Net.Name)
			}
			ref := PortRef{Cell: name, Port: pname}
			if err := checkMembership(p, ref); err != nil {
				return err
			}
		}
	}

	for name, n := range d.nets {
		if n.Name != name {
			return fmt.Errorf("%w: net registered as %q but named %q", ErrCorruptDesign, name, n.Name)
		}
		if n.Driver.IsSet() {
			p := d.resolve(n.Driver)
			if p == nil {
				return fmt.Errorf("%w: net %q driver %s/%s does not resolve", ErrCorruptDesign, name, n.Driver.Cell, n.Driver.Port)
			}
			if p.Dir != Out {
				return fmt.Errorf("%w: net %q driver %s/%s is not an out port", ErrCorruptDesign, name, n.Driver.Cell, n.Driver.Port)
			}
			if p.Net != n {
				return fmt.Errorf("%w: net %q driver %s/%s does not reference it back", ErrCorruptDesign, name, n.Driver.Cell, n.Driver.Port)
			}
		}
		for _, u := range n.Users {
			p := d.resolve(u)
			if p == nil {
				return fmt.Errorf("%w: net %q user %s/%s does not resolve", ErrCorruptDesign, name, u.Cell, u.Port)
			}
			if p.Dir != In && p.Dir != InOut {
				return fmt.Errorf("%w: net %q user %s/%s is not an in/inout port", ErrCorruptDesign, name, u.Cell, u.Port)
			}
			if p.Net != n {
				return fmt.Errorf("%w: net %q user %s/%s does not reference it back", ErrCorruptDesign, name, u.Cell, u.Port)
			}
		}
	}
	return nil
}

// checkMembership verifies that a connected port appears in its net's
// records exactly once and in the role its direction demands.
func checkMembership(p *Port, ref PortRef) error {
	n := p.Net
	isDriver := n.Driver == ref
	userCount := 0
	for _, u := range n.Users {
		if u == ref {
			userCount++
		}
	}
	switch p.Dir {
	case Out:
		if !isDriver || userCount != 0 {
			return fmt.Errorf("%w: out port %s/%s must be net %q's driver and nothing else", ErrCorruptDesign, ref.Cell, ref.Port, n.Name)
		}
	case In, InOut:
		if isDriver || userCount != 1 {
			return fmt.Errorf("%w: port %s/%s must appear exactly once as a user of net %q", ErrCorruptDesign, ref.Cell, ref.Port, n.Name)
		}
	}
	return nil
}

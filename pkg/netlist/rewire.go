package netlist

import "slices"

// Connect attaches net to the named port of cell. This is the primitive
// every other rewiring operation builds on, and the single place the
// driver/user invariants are enforced:
//
//   - an Out port becomes the net's driver, and the net must not already
//     have one (ErrMultipleDrivers)
//   - an In or InOut port is appended to the net's user list
//   - the port must exist (ErrPortNotFound) and must be unconnected
//     (ErrAlreadyConnected)
//
// A nil net is a no-op, not an error: it represents "leave unconnected"
// and lets composed operations pass through an absent source net.
func (d *Design) Connect(net *Net, cell *Cell, port string) error {
	if net == nil {
		return nil
	}
	p := cell.Ports[port]
	if p == nil {
		return &ContractError{Op: "Connect", Cell: cell.Name, Port: port, Net: net.Name, Err: ErrPortNotFound}
	}
	if p.Net != nil {
		return &ContractError{Op: "Connect", Cell: cell.Name, Port: port, Net: p.Net.Name, Err: ErrAlreadyConnected}
	}
	ref := PortRef{Cell: cell.Name, Port: port}
	switch p.Dir {
	case Out:
		if net.Driver.IsSet() {
			return &ContractError{Op: "Connect", Cell: cell.Name, Port: port, Net: net.Name, Err: ErrMultipleDrivers}
		}
		net.Driver = ref
	case In, InOut:
		net.Users = append(net.Users, ref)
	default:
		return &ContractError{Op: "Connect", Cell: cell.Name, Port: port, Net: net.Name, Err: ErrInvalidPortType}
	}
	p.Net = net
	rewireHooks().OnConnect(net.Name, cell.Name, port)
	return nil
}

// Disconnect detaches whatever net the named port currently references.
// A missing port or an unconnected port is a silent no-op, which makes
// the operation tolerant of stale references left by earlier partial
// rewiring, and calling it twice has the same effect as calling it once.
//
// All user entries matching the port are removed (at most one exists
// while the invariants hold), and the driver slot is cleared when it
// matches.
func (d *Design) Disconnect(cell *Cell, port string) {
	p := cell.Ports[port]
	if p == nil || p.Net == nil {
		return
	}
	net := p.Net
	ref := PortRef{Cell: cell.Name, Port: port}
	net.Users = slices.DeleteFunc(net.Users, func(u PortRef) bool { return u == ref })
	if net.Driver == ref {
		net.Driver = PortRef{}
	}
	p.Net = nil
	rewireHooks().OnDisconnect(net.Name, cell.Name, port)
}

// ConnectPorts ensures both ports end up sharing one net. If portA is
// already connected, portB simply joins its net. Otherwise a fresh net is
// created under a name derived from cellA and portA ("<cell>$conn$<port>");
// the "$conn$" infix keeps derived names out of the namespace user-chosen
// names normally occupy, and a collision with a live net or cell is a
// fatal ErrNameCollision rather than silent reuse.
//
// ConnectPorts does not check whether the two ports are already wired
// together through some other net; avoiding duplicate wiring is the
// caller's responsibility.
func (d *Design) ConnectPorts(cellA *Cell, portA string, cellB *Cell, portB string) error {
	pa := cellA.Ports[portA]
	if pa == nil {
		return &ContractError{Op: "ConnectPorts", Cell: cellA.Name, Port: portA, Err: ErrPortNotFound}
	}
	if pa.Net == nil {
		name := cellA.Name + "$conn$" + portA
		if _, taken := d.nets[name]; taken {
			return &ContractError{Op: "ConnectPorts", Net: name, Err: ErrNameCollision}
		}
		if _, taken := d.cells[name]; taken {
			return &ContractError{Op: "ConnectPorts", Net: name, Err: ErrNameCollision}
		}
		net := &Net{Name: name}
		d.nets[name] = net
		if err := d.Connect(net, cellA, portA); err != nil {
			return err
		}
	}
	return d.Connect(pa.Net, cellB, portB)
}

// RenamePort moves a port to a new name on the same cell, keeping its
// connectivity. The attached net's driver and user entries that named the
// old port are rewritten to the new name. A missing old name is a silent
// no-op.
func (d *Design) RenamePort(cell *Cell, oldName, newName string) {
	p := cell.Ports[oldName]
	if p == nil {
		return
	}
	if p.Net != nil {
		ref := PortRef{Cell: cell.Name, Port: oldName}
		if p.Net.Driver == ref {
			p.Net.Driver.Port = newName
		}
		for i, u := range p.Net.Users {
			if u == ref {
				p.Net.Users[i].Port = newName
			}
		}
	}
	delete(cell.Ports, oldName)
	p.Name = newName
	cell.Ports[newName] = p
	rewireHooks().OnRenamePort(cell.Name, oldName, newName)
}

// RenameNet moves a net to a new name. Returns ErrNameCollision if the
// name already denotes a live net. Port back-references hold the net by
// identity, not by name, so they stay valid without any rewriting.
// A nil net is a no-op.
func (d *Design) RenameNet(net *Net, newName string) error {
	if net == nil {
		return nil
	}
	if _, taken := d.nets[newName]; taken {
		return &ContractError{Op: "RenameNet", Net: newName, Err: ErrNameCollision}
	}
	oldName := net.Name
	delete(d.nets, oldName)
	net.Name = newName
	d.nets[newName] = net
	rewireHooks().OnRenameNet(oldName, newName)
	return nil
}

// ReplacePort migrates a connection from one cell's port to another's.
// The replacement port is created with the source port's direction when it
// does not exist yet; when it does exist the directions must match
// (ErrDirectionMismatch). The net's driver or user records are updated in
// place rather than removed and re-added, so net identity and any caller
// references to those records survive the move. A missing source port is a
// silent no-op.
func (d *Design) ReplacePort(oldCell *Cell, oldPort string, newCell *Cell, newPort string) error {
	po := oldCell.Ports[oldPort]
	if po == nil {
		return nil
	}
	pn := newCell.Ports[newPort]
	if pn == nil {
		pn = &Port{Name: newPort, Dir: po.Dir}
		newCell.Ports[newPort] = pn
	}
	if pn.Dir != po.Dir {
		return &ContractError{Op: "ReplacePort", Cell: newCell.Name, Port: newPort, Err: ErrDirectionMismatch}
	}

	net := po.Net
	pn.Net = net
	po.Net = nil
	if net != nil {
		oldRef := PortRef{Cell: oldCell.Name, Port: oldPort}
		newRef := PortRef{Cell: newCell.Name, Port: newPort}
		switch pn.Dir {
		case Out:
			net.Driver = newRef
		case In, InOut:
			for i, u := range net.Users {
				if u == oldRef {
					net.Users[i] = newRef
				}
			}
		default:
			return &ContractError{Op: "ReplacePort", Cell: newCell.Name, Port: newPort, Net: net.Name, Err: ErrInvalidPortType}
		}
	}
	rewireHooks().OnReplacePort(oldCell.Name, oldPort, newCell.Name, newPort)
	return nil
}

// CopyPort duplicates a connection: a port with the source port's
// direction is created on newCell (if not already present) and connected,
// through the Connect primitive, to the same net the source uses. The
// source connection is left untouched.
//
// Copying an Out port would give the net a second driver; Connect rejects
// that with ErrMultipleDrivers. Use CopyPort on fan-out (In/InOut) ports,
// or disconnect the old driver first.
func (d *Design) CopyPort(oldCell *Cell, oldPort string, newCell *Cell, newPort string) error {
	po := oldCell.Ports[oldPort]
	if po == nil {
		return nil
	}
	if newCell.Ports[newPort] == nil {
		newCell.Ports[newPort] = &Port{Name: newPort, Dir: po.Dir}
	}
	return d.Connect(po.Net, newCell, newPort)
}

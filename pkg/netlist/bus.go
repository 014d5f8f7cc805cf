package netlist

import "strconv"

// BusPortName derives the port name for one index of a bus: "base[idx]"
// when bracketed, "baseidx" otherwise.
func BusPortName(base string, index int, bracketed bool) string {
	if bracketed {
		return base + "[" + strconv.Itoa(index) + "]"
	}
	return base + strconv.Itoa(index)
}

// ReplaceBus applies [Design.ReplacePort] across an indexed range of
// ports: for each i in [0, width), the port named (oldBase, i+oldOffset)
// moves to (newBase, i+newOffset). Naming convention and offset are
// independent per side, so a bus can be renamed, renumbered, and
// re-bracketed in one call.
//
// The batch is not transactional: the first fatal error aborts the loop
// and leaves the lower indices already rewired.
func (d *Design) ReplaceBus(oldCell *Cell, oldBase string, oldOffset int, oldBracketed bool,
	newCell *Cell, newBase string, newOffset int, newBracketed bool, width int) error {
	for i := 0; i < width; i++ {
		oldPort := BusPortName(oldBase, i+oldOffset, oldBracketed)
		newPort := BusPortName(newBase, i+newOffset, newBracketed)
		if err := d.ReplacePort(oldCell, oldPort, newCell, newPort); err != nil {
			return err
		}
	}
	return nil
}

// CopyBus applies [Design.CopyPort] across an indexed range of ports,
// parameterized identically to [Design.ReplaceBus]. Like ReplaceBus it
// stops at the first fatal error with no rollback.
func (d *Design) CopyBus(oldCell *Cell, oldBase string, oldOffset int, oldBracketed bool,
	newCell *Cell, newBase string, newOffset int, newBracketed bool, width int) error {
	for i := 0; i < width; i++ {
		oldPort := BusPortName(oldBase, i+oldOffset, oldBracketed)
		newPort := BusPortName(newBase, i+newOffset, newBracketed)
		if err := d.CopyPort(oldCell, oldPort, newCell, newPort); err != nil {
			return err
		}
	}
	return nil
}

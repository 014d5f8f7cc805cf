package netlist

import (
	"errors"
	"testing"
)

func TestValidate_CleanDesign(t *testing.T) {
	d := NewDesign("t")
	drv := addCell(t, d, "drv", "LUT4", map[string]Direction{"O": Out})
	usr := addCell(t, d, "usr", "DFF", map[string]Direction{"D": In})
	if err := d.ConnectPorts(drv, "O", usr, "D"); err != nil {
		t.Fatalf("ConnectPorts() error: %v", err)
	}

	if err := d.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidate_SurvivesRewiring(t *testing.T) {
	d := NewDesign("t")
	drv := addCell(t, d, "drv", "LUT4", map[string]Direction{"O": Out})
	a := addCell(t, d, "a", "DFF", map[string]Direction{"D": In})
	b := addCell(t, d, "b", "DFF", nil)
	if err := d.ConnectPorts(drv, "O", a, "D"); err != nil {
		t.Fatalf("ConnectPorts() error: %v", err)
	}

	if err := d.ReplacePort(a, "D", b, "D"); err != nil {
		t.Fatalf("ReplacePort() error: %v", err)
	}
	d.RenamePort(drv, "O", "Q")
	if err := d.RenameNet(d.Net("drv$conn$O"), "sig"); err != nil {
		t.Fatalf("RenameNet() error: %v", err)
	}

	if err := d.Validate(); err != nil {
		t.Errorf("Validate() after rewiring: %v", err)
	}
}

func TestValidate_StaleUserEntry(t *testing.T) {
	d := NewDesign("t")
	c := addCell(t, d, "c", "DFF", map[string]Direction{"D": In})
	n, _ := d.AddNet("n")
	if err := d.Connect(n, c, "D"); err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	// Corrupt: user entry pointing at a port that was deleted behind our back.
	n.Users = append(n.Users, PortRef{Cell: "c", Port: "GONE"})

	if err := d.Validate(); !errors.Is(err, ErrCorruptDesign) {
		t.Errorf("Validate() error = %v, want ErrCorruptDesign", err)
	}
}

func TestValidate_BackRefWithoutMembership(t *testing.T) {
	d := NewDesign("t")
	c := addCell(t, d, "c", "DFF", map[string]Direction{"D": In})
	n, _ := d.AddNet("n")
	// Corrupt: back-reference set without a matching user entry.
	c.Port("D").Net = n

	if err := d.Validate(); !errors.Is(err, ErrCorruptDesign) {
		t.Errorf("Validate() error = %v, want ErrCorruptDesign", err)
	}
}

func TestValidate_DriverDirection(t *testing.T) {
	d := NewDesign("t")
	c := addCell(t, d, "c", "DFF", map[string]Direction{"D": In})
	n, _ := d.AddNet("n")
	if err := d.Connect(n, c, "D"); err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	// Corrupt: an In port recorded as driver.
	n.Driver = PortRef{Cell: "c", Port: "D"}

	if err := d.Validate(); !errors.Is(err, ErrCorruptDesign) {
		t.Errorf("Validate() error = %v, want ErrCorruptDesign", err)
	}
}

func TestValidate_InvalidDirection(t *testing.T) {
	d := NewDesign("t")
	c := addCell(t, d, "c", "DFF", nil)
	c.Ports["X"] = &Port{Name: "X", Dir: Direction(7)}

	if err := d.Validate(); !errors.Is(err, ErrInvalidPortType) {
		t.Errorf("Validate() error = %v, want ErrInvalidPortType", err)
	}
}

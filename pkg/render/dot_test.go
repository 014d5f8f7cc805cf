package render

import (
	"strings"
	"testing"

	"github.com/netlistkit/netrw/pkg/netlist"
)

func testDesign(t *testing.T) *netlist.Design {
	t.Helper()
	d := netlist.NewDesign("top")
	lut, _ := d.AddCell("lut0", "LUT4")
	ff, _ := d.AddCell("ff0", "DFF")
	d.AddPort(lut, "O", netlist.Out)
	d.AddPort(ff, "D", netlist.In)
	if err := d.ConnectPorts(lut, "O", ff, "D"); err != nil {
		t.Fatalf("ConnectPorts() error: %v", err)
	}
	return d
}

func TestToDOT_BasicShape(t *testing.T) {
	dot := ToDOT(testDesign(t), Options{})

	for _, want := range []string{
		"digraph netlist {",
		`"lut0" [label="lut0"];`,
		`"ff0" [label="ff0"];`,
		`"lut0" -> "ff0" [label="lut0$conn$O"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testDesign(t), Options{Detailed: true})

	if !strings.Contains(dot, `"lut0" [label="lut0\nLUT4"];`) {
		t.Errorf("detailed DOT missing typed node label:\n%s", dot)
	}
	if !strings.Contains(dot, `O->D`) {
		t.Errorf("detailed DOT missing port names on edge:\n%s", dot)
	}
}

func TestToDOT_UndrivenNet(t *testing.T) {
	d := testDesign(t)
	pad, _ := d.AddCell("pad0", "IOB")
	d.AddPort(pad, "IO", netlist.InOut)
	n, _ := d.AddNet("floating")
	if err := d.Connect(n, pad, "IO"); err != nil {
		t.Fatalf("Connect() error: %v", err)
	}

	dot := ToDOT(d, Options{})

	if !strings.Contains(dot, `"net:floating"`) {
		t.Errorf("undriven net not drawn as stub node:\n%s", dot)
	}
	if !strings.Contains(dot, `"net:floating" -> "pad0" [style=dashed];`) {
		t.Errorf("undriven net missing dashed user edge:\n%s", dot)
	}
}

func TestToDOT_EmptyNetOmitted(t *testing.T) {
	d := netlist.NewDesign("t")
	d.AddNet("empty")

	dot := ToDOT(d, Options{})

	if strings.Contains(dot, "empty") {
		t.Errorf("net with no refs should not appear:\n%s", dot)
	}
}

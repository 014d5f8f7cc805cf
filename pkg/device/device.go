// Package device provides the device-model side of utilization reporting:
// placement sites, resource buckets, and the cell-type classifier the
// netlist core consumes through its [netlist.Device] interface.
//
// A [Grid] can be built programmatically with [Grid.AddSites] and
// [Grid.MapCellType], or loaded from a TOML device profile with
// [LoadProfile]. The netlist core never imports this package; it only
// sees the interface.
package device

import (
	"fmt"

	"github.com/netlistkit/netrw/pkg/netlist"
)

// Grid is an in-memory device model: a list of placement sites and a
// cell-type→bucket classification table. It implements [netlist.Device].
type Grid struct {
	name  string
	sites []netlist.Site
	cells map[string]string // cell type -> bucket
}

// NewGrid creates an empty device grid. The name identifies the device
// part in diagnostics.
func NewGrid(name string) *Grid {
	return &Grid{name: name, cells: make(map[string]string)}
}

// Name returns the device part name.
func (g *Grid) Name() string { return g.name }

// AddSite appends one placement site.
func (g *Grid) AddSite(name, bucket string, hidden bool) {
	g.sites = append(g.sites, netlist.Site{Name: name, Bucket: bucket, Hidden: hidden})
}

// AddSites appends count sites in the given bucket, named
// "<bucket>_0" .. "<bucket>_<count-1>".
func (g *Grid) AddSites(bucket string, count int, hidden bool) {
	for i := 0; i < count; i++ {
		g.AddSite(fmt.Sprintf("%s_%d", bucket, i), bucket, hidden)
	}
}

// MapCellType records which bucket a cell type belongs to.
func (g *Grid) MapCellType(cellType, bucket string) {
	g.cells[cellType] = bucket
}

// CellBucket maps a cell type to its resource bucket.
// ok is false for unclassified cell types.
func (g *Grid) CellBucket(cellType string) (string, bool) {
	b, ok := g.cells[cellType]
	return b, ok
}

// Sites enumerates every placement site, hidden or not.
func (g *Grid) Sites() []netlist.Site { return g.sites }

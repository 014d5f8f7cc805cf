package netlist

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Site describes one placement-capable location on the target device.
// Hidden sites exist in the device model but are excluded from capacity
// accounting (carry logic, routing-only locations, and the like).
type Site struct {
	Name   string
	Bucket string
	Hidden bool
}

// Device is the slice of the device model the utilization reporter
// consumes: a cell-type classifier and the enumeration of placement
// sites. Implementations live outside the core (see pkg/device).
type Device interface {
	// CellBucket maps a cell type to its resource bucket.
	// ok is false for cell types the device does not classify.
	CellBucket(cellType string) (bucket string, ok bool)

	// Sites enumerates every placement site on the device, hidden or not.
	Sites() []Site
}

// BucketUsage is one row of a utilization report.
type BucketUsage struct {
	Bucket  string
	Used    int // cells classified into this bucket
	Total   int // non-hidden sites in this bucket
	Percent int // floor(100*Used/Total)
}

// UtilizationReport aggregates cell counts against device capacity.
// Each cell is classified into a bucket through the device's cell-type
// classifier; capacity is the count of non-hidden sites per bucket.
// Buckets with zero capacity are omitted, and rows come back sorted by
// bucket name. The report is purely read-only.
func UtilizationReport(d *Design, dev Device) []BucketUsage {
	used := make(map[string]int)
	for _, c := range d.cells {
		if bucket, ok := dev.CellBucket(c.Type); ok {
			used[bucket]++
		}
	}

	capacity := make(map[string]int)
	for _, s := range dev.Sites() {
		if !s.Hidden {
			capacity[s.Bucket]++
		}
	}

	rows := make([]BucketUsage, 0, len(capacity))
	for _, bucket := range slices.Sorted(maps.Keys(capacity)) {
		total := capacity[bucket]
		rows = append(rows, BucketUsage{
			Bucket:  bucket,
			Used:    used[bucket],
			Total:   total,
			Percent: 100 * used[bucket] / total,
		})
	}
	return rows
}

// WriteUtilization formats report rows as an aligned table, one bucket
// per line.
func WriteUtilization(w io.Writer, rows []BucketUsage) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%20s: %6d/%6d %4d%%\n", r.Bucket, r.Used, r.Total, r.Percent); err != nil {
			return err
		}
	}
	return nil
}

package device

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// profileFile is the on-disk TOML shape of a device profile:
//
//	name = "demo-25k"
//
//	[[sites]]
//	bucket = "SLICE"
//	count = 120
//
//	[[sites]]
//	bucket = "CARRY"
//	count = 30
//	hidden = true
//
//	[cells]
//	LUT4 = "SLICE"
//	DFF = "SLICE"
type profileFile struct {
	Name  string            `toml:"name"`
	Sites []profileSites    `toml:"sites"`
	Cells map[string]string `toml:"cells"`
}

type profileSites struct {
	Bucket string `toml:"bucket"`
	Count  int    `toml:"count"`
	Hidden bool   `toml:"hidden"`
}

// ParseProfile decodes a TOML device profile into a Grid.
// Each [[sites]] entry expands into Count generated sites (Count defaults
// to 1); entries with an empty bucket or a negative count are rejected.
func ParseProfile(data []byte) (*Grid, error) {
	var pf profileFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	g := NewGrid(pf.Name)
	for i, s := range pf.Sites {
		if s.Bucket == "" {
			return nil, fmt.Errorf("profile sites[%d]: bucket must not be empty", i)
		}
		if s.Count < 0 {
			return nil, fmt.Errorf("profile sites[%d] (%s): negative count %d", i, s.Bucket, s.Count)
		}
		count := s.Count
		if count == 0 {
			count = 1
		}
		g.AddSites(s.Bucket, count, s.Hidden)
	}
	for cellType, bucket := range pf.Cells {
		if bucket == "" {
			return nil, fmt.Errorf("profile cells: type %q maps to empty bucket", cellType)
		}
		g.MapCellType(cellType, bucket)
	}
	return g, nil
}

// LoadProfile reads and parses a TOML device profile file.
func LoadProfile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

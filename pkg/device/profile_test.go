package device

import (
	"strings"
	"testing"
)

const demoProfile = `
name = "demo-25k"

[[sites]]
bucket = "SLICE"
count = 3

[[sites]]
bucket = "BRAM"

[[sites]]
bucket = "CARRY"
count = 2
hidden = true

[cells]
LUT4 = "SLICE"
DFF = "SLICE"
RAMB = "BRAM"
`

func TestParseProfile(t *testing.T) {
	g, err := ParseProfile([]byte(demoProfile))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}

	if got, want := g.Name(), "demo-25k"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	// 3 SLICE + 1 BRAM (count defaults to 1) + 2 hidden CARRY.
	if got, want := len(g.Sites()), 6; got != want {
		t.Errorf("len(Sites()) = %d, want %d", got, want)
	}

	hidden := 0
	for _, s := range g.Sites() {
		if s.Hidden {
			hidden++
			if s.Bucket != "CARRY" {
				t.Errorf("hidden site in bucket %q, want CARRY", s.Bucket)
			}
		}
	}
	if hidden != 2 {
		t.Errorf("hidden sites = %d, want 2", hidden)
	}

	if b, ok := g.CellBucket("LUT4"); !ok || b != "SLICE" {
		t.Errorf("CellBucket(LUT4) = %q, %v, want SLICE, true", b, ok)
	}
	if _, ok := g.CellBucket("UNKNOWN"); ok {
		t.Error("CellBucket(UNKNOWN) classified, want unclassified")
	}
}

func TestParseProfile_GeneratedSiteNames(t *testing.T) {
	g, err := ParseProfile([]byte("[[sites]]\nbucket = \"SLICE\"\ncount = 2\n"))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}
	sites := g.Sites()
	if sites[0].Name != "SLICE_0" || sites[1].Name != "SLICE_1" {
		t.Errorf("site names = %q, %q, want SLICE_0, SLICE_1", sites[0].Name, sites[1].Name)
	}
}

func TestParseProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"bad toml", "[[sites]\n", "parse profile"},
		{"empty bucket", "[[sites]]\ncount = 1\n", "bucket must not be empty"},
		{"negative count", "[[sites]]\nbucket = \"X\"\ncount = -1\n", "negative count"},
		{"empty cell bucket", "[cells]\nLUT4 = \"\"\n", "empty bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ParseProfile() error = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestGrid_AddSite(t *testing.T) {
	g := NewGrid("x")
	g.AddSite("SLICE_X0Y0", "SLICE", false)
	g.MapCellType("LUT4", "SLICE")

	if got := len(g.Sites()); got != 1 {
		t.Fatalf("len(Sites()) = %d, want 1", got)
	}
	if s := g.Sites()[0]; s.Name != "SLICE_X0Y0" || s.Bucket != "SLICE" || s.Hidden {
		t.Errorf("site = %+v, want SLICE_X0Y0/SLICE visible", s)
	}
}

// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
)

// YAMLLevel represents the YAML structure for a level file.
//
// A level is described by layout rows (top row first, legend '#' wall,
// '.' empty, 'o' ball, '$' coin), by an explicit cell list, or both, in
// which case cells override the layout.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Time     int               `yaml:"time,omitempty"` // seconds, 0 uses the configured default
	Color    string            `yaml:"color,omitempty"`
	Size     *YAMLSize         `yaml:"size,omitempty"`
	Layout   []string          `yaml:"layout,omitempty"`
	Cells    []YAMLCell        `yaml:"cells,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLCell represents a single cell override in YAML format.
type YAMLCell struct {
	X    int  `yaml:"x"`
	Y    int  `yaml:"y"`
	Wall bool `yaml:"wall,omitempty"`
	Ball bool `yaml:"ball,omitempty"`
	Coin bool `yaml:"coin,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Time     int
	Color    core.PaintColor
	Snapshot core.Snapshot
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, errors.New("level id is required")
	}
	if yl.Time < 0 {
		return Level{}, fmt.Errorf("level %s: negative time %d", yl.ID, yl.Time)
	}

	color, ok := core.ParsePaintColor(yl.Color)
	if !ok {
		return Level{}, fmt.Errorf("level %s: unknown color %q", yl.ID, yl.Color)
	}

	snap, err := buildSnapshot(yl)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Time:     yl.Time,
		Color:    color,
		Snapshot: snap,
		Metadata: yl.Metadata,
	}, nil
}

// buildSnapshot merges layout rows and explicit cells into one snapshot.
func buildSnapshot(yl YAMLLevel) (core.Snapshot, error) {
	var snap core.Snapshot

	if len(yl.Layout) > 0 {
		s, err := core.SnapshotFromASCII(yl.Layout)
		if err != nil {
			return core.Snapshot{}, err
		}
		if yl.Size != nil && (yl.Size.W != s.W || yl.Size.H != s.H) {
			return core.Snapshot{}, fmt.Errorf("size %dx%d does not match %dx%d layout",
				yl.Size.W, yl.Size.H, s.W, s.H)
		}
		snap = s
	} else {
		if yl.Size == nil {
			return core.Snapshot{}, errors.New("either size or layout is required")
		}
		snap = core.Snapshot{W: yl.Size.W, H: yl.Size.H}
	}

	if snap.W < 1 || snap.H < 1 {
		return core.Snapshot{}, fmt.Errorf("%w: got %dx%d", core.ErrInvalidSize, snap.W, snap.H)
	}

	if len(yl.Cells) == 0 {
		return snap, nil
	}

	byCoord := make(map[core.Coord]core.CellRecord, len(snap.Cells)+len(yl.Cells))
	for _, r := range snap.Cells {
		byCoord[r.Coord] = r
	}
	for _, c := range yl.Cells {
		coord := core.C(c.X, c.Y)
		if c.X < 0 || c.X >= snap.W || c.Y < 0 || c.Y >= snap.H {
			return core.Snapshot{}, fmt.Errorf("cell %v outside %dx%d grid", coord, snap.W, snap.H)
		}
		byCoord[coord] = core.CellRecord{Coord: coord, Wall: c.Wall, Ball: c.Ball, Coin: c.Coin}
	}

	snap.Cells = snap.Cells[:0]
	for _, r := range byCoord {
		snap.Cells = append(snap.Cells, r)
	}
	sort.Slice(snap.Cells, func(i, j int) bool {
		a, b := snap.Cells[i].Coord, snap.Cells[j].Coord
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return snap, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Package levels provides level loading for PaintRoll.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned by LoadByID for unknown IDs.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Time     int
	Color    core.PaintColor
	Snapshot core.Snapshot
	Metadata map[string]string
	FilePath string
}

// Grid builds a fresh grid from the level.
func (l *Level) Grid() (*core.Grid, error) {
	return core.FromSnapshot(l.Snapshot)
}

// Size returns the level dimensions.
func (l *Level) Size() (w, h int) {
	return l.Snapshot.W, l.Snapshot.H
}

// SkippedFile records a level file LoadAll could not parse.
type SkippedFile struct {
	Path string
	Err  error
}

// Loader loads levels from a file system.
type Loader struct {
	Root string

	fsys    fs.FS
	skipped []SkippedFile
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{Root: name, fsys: fsys}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin fs: %v", err))
	}
	return NewFSLoader(sub, "builtin")
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped and reported by Skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	l.skipped = nil

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.skipped = append(l.skipped, SkippedFile{Path: p, Err: err})
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// Skipped returns the files the last LoadAll call could not parse.
func (l *Loader) Skipped() []SkippedFile {
	return l.skipped
}

// LoadFile loads a single level file. The path is relative to the
// loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Time:     parsed.Time,
		Color:    parsed.Color,
		Snapshot: parsed.Snapshot,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.Root, p),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

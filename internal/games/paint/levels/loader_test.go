package levels_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/levels"
)

func TestBuiltinLoadAll(t *testing.T) {
	loader := levels.Builtin()

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 8 {
		t.Errorf("expected 8 builtin levels, got %d", len(lvls))
	}
	if skipped := loader.Skipped(); len(skipped) != 0 {
		t.Errorf("expected no skipped files, got %+v", skipped)
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestBuiltinLevelsAreWinnable(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			g, err := lvl.Grid()
			if err != nil {
				t.Fatalf("Grid failed: %v", err)
			}
			if err := core.ValidateGrid(g); err != nil {
				t.Fatalf("invalid level: %v", err)
			}
			a := core.AnalyzeGrid(g, 0)
			if !a.Winnable {
				t.Errorf("expected winnable level, got %+v", a)
			}
		})
	}
}

func TestLoadByID(t *testing.T) {
	loader := levels.Builtin()

	lvl, err := loader.LoadByID("lvl08")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Coin Run" {
		t.Errorf("expected Name 'Coin Run', got %q", lvl.Name)
	}
	if w, h := lvl.Size(); w != 6 || h != 2 {
		t.Errorf("expected 6x2, got %dx%d", w, h)
	}
	if lvl.Color != core.PaintWhite {
		t.Errorf("expected white, got %s", lvl.Color)
	}
	if lvl.Metadata["author"] != "paintroll" {
		t.Errorf("expected author metadata, got %v", lvl.Metadata)
	}

	g, err := lvl.Grid()
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if coins := g.Coins(); len(coins) != 2 {
		t.Errorf("expected 2 coins, got %v", coins)
	}

	_, err = loader.LoadByID("nope")
	if !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml":        {Data: []byte("id: a\nlayout: [\"o.\"]\n")},
		"nested/more.yml":  {Data: []byte("id: b\nlayout: [\".o\"]\n")},
		"broken.yaml":      {Data: []byte("id: c\nlayout: [\"o?\"]\n")},
		"no-id.yaml":       {Data: []byte("layout: [\"o.\"]\n")},
		"notes.txt":        {Data: []byte("ignored")},
		"nested/README.md": {Data: []byte("ignored")},
	}
	loader := levels.NewFSLoader(fsys, "mem")

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 || lvls[0].ID != "a" || lvls[1].ID != "b" {
		t.Errorf("expected levels a and b, got %+v", lvls)
	}
	if len(loader.Skipped()) != 2 {
		t.Errorf("expected 2 skipped files, got %+v", loader.Skipped())
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 ids, got %v", ids)
	}
}

func TestNewLoaderReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	loader := levels.NewLoader(dir)

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 0 {
		t.Errorf("expected empty directory, got %d levels", len(lvls))
	}
}

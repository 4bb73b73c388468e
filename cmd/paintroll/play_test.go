package main

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paintroll/internal/games/paint/levels"
)

func TestLevelNumber(t *testing.T) {
	lvls := []levels.Level{{ID: "lvl01"}, {ID: "lvl02"}, {ID: "bonus"}}

	testCases := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"3", 3, false},
		{"lvl02", 2, false},
		{"bonus", 3, false},
		{"0", 0, true},
		{"4", 0, true},
		{"nope", 0, true},
	}

	for _, tc := range testCases {
		got, err := levelNumber(lvls, tc.arg)
		if (err != nil) != tc.wantErr {
			t.Errorf("%q: unexpected error %v", tc.arg, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %d, got %d", tc.arg, tc.want, got)
		}
	}
}

func TestPickLevels(t *testing.T) {
	lvls := []levels.Level{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got, err := pickLevels(lvls, []string{"c", "a"})
	if err != nil {
		t.Fatalf("pickLevels failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("expected [c a], got %+v", got)
	}

	if _, err := pickLevels(lvls, []string{"z"}); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadLevelsBuiltin(t *testing.T) {
	logger, err := newLogger(io.Discard)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}

	lvls, err := loadLevels(logger)
	if err != nil {
		t.Fatalf("loadLevels failed: %v", err)
	}
	if len(lvls) != 8 || lvls[0].ID != "lvl01" {
		t.Errorf("expected the 8 built-in levels, got %d", len(lvls))
	}
}

func TestLoadLevelsEmptyDir(t *testing.T) {
	flagLevels = t.TempDir()
	t.Cleanup(func() { flagLevels = "" })

	if _, err := loadLevels(log.New(io.Discard)); err == nil {
		t.Error("expected an error for a directory without levels")
	}
}

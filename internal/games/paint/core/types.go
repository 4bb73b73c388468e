// Package core contains the pure grid logic for PaintRoll: the cell data
// model, the simultaneous-slide resolver, paint tracking and the
// reachability solver. It has no dependency on the terminal platform.
package core

import (
	"fmt"
	"strings"
)

// Dir is a swipe direction.
type Dir uint8

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

// AllDirs lists the four swipe directions in solver expansion order.
var AllDirs = [4]Dir{DirLeft, DirRight, DirUp, DirDown}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four swipe directions.
func (d Dir) Valid() bool {
	return d <= DirDown
}

// Delta returns the unit step for the direction.
// Row 0 is the bottom row, so Up increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// Axis returns the axis the direction moves along.
func (d Dir) Axis() Axis {
	if d == DirLeft || d == DirRight {
		return AxisHorizontal
	}
	return AxisVertical
}

// towardStart reports whether balls travel toward lower coordinates.
func (d Dir) towardStart() bool {
	return d == DirLeft || d == DirDown
}

// ParseDir parses a direction name (case-insensitive, single letters allowed).
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Axis is a grid axis.
type Axis uint8

const (
	AxisHorizontal Axis = iota // rows, indexed by Y, positions along X
	AxisVertical               // columns, indexed by X, positions along Y
)

// BallID identifies a ball entity. NoBall marks an empty cell.
type BallID int

// NoBall is the zero BallID.
const NoBall BallID = 0

// Cell is the static and dynamic content of one grid position.
type Cell struct {
	Wall bool
	Coin bool
	Ball BallID
}

// HasBall reports whether a ball currently sits in the cell.
func (c Cell) HasBall() bool {
	return c.Ball != NoBall
}

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for grids narrower or shorter than one cell.
	ErrInvalidSize = errors.New("grid size must be at least 1x1")

	// ErrInvalidDirection is returned for a direction outside the four swipes.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidOccupancy is returned when a ball sits on a wall or outside the grid.
	ErrInvalidOccupancy = errors.New("invalid occupancy")

	// ErrInvalidCommit is returned when move commands do not match the grid.
	ErrInvalidCommit = errors.New("invalid move commit")
)

// ValidationError contains details about a level authoring problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

package core

import "strings"

// PaintColor is the color a level paints its cells with.
type PaintColor uint8

const (
	PaintRed PaintColor = iota
	PaintOrange
	PaintYellow
	PaintGreen
	PaintBlue
	PaintPurple
	PaintPink
	PaintWhite
	PaintBlack
)

var paintColorNames = [...]string{
	PaintRed:    "red",
	PaintOrange: "orange",
	PaintYellow: "yellow",
	PaintGreen:  "green",
	PaintBlue:   "blue",
	PaintPurple: "purple",
	PaintPink:   "pink",
	PaintWhite:  "white",
	PaintBlack:  "black",
}

// String returns the lowercase color name.
func (c PaintColor) String() string {
	if int(c) < len(paintColorNames) {
		return paintColorNames[c]
	}
	return "unknown"
}

// ParsePaintColor parses a color name. The empty string is red.
func ParsePaintColor(s string) (PaintColor, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PaintRed, true
	}
	for i, name := range paintColorNames {
		if name == s {
			return PaintColor(i), true
		}
	}
	return PaintRed, false
}

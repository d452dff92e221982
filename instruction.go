package hpgl

import (
	"fmt"
	"math"
)

// Point is an X,Y coordinate in plotter units
type Point struct {
	X int
	Y int
}

// Sub returns the displacement from q to p. ok is false if either
// component does not fit in an int.
func (p Point) Sub(q Point) (d Point, ok bool) {
	x, okx := subInt(p.X, q.X)
	y, oky := subInt(p.Y, q.Y)
	return Point{X: x, Y: y}, okx && oky
}

// Add returns p moved by d. ok is false if either component does not fit
// in an int.
func (p Point) Add(d Point) (sum Point, ok bool) {
	x, okx := addInt(p.X, d.X)
	y, oky := addInt(p.Y, d.Y)
	return Point{X: x, Y: y}, okx && oky
}

func addInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int) (int, bool) {
	if (b < 0 && a > math.MaxInt+b) || (b > 0 && a < math.MinInt+b) {
		return 0, false
	}
	return a - b, true
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// InstructionType tells the rewriter how a line has to be handled
type InstructionType int

// These are the line kinds the rewriter distinguishes
const (
	PassthroughInstruction InstructionType = iota
	AbsoluteMoveInstruction
	RelativeMoveInstruction
)

// Command markers and the terminator used by both move commands.
const (
	AbsoluteMarker = "PA"
	RelativeMarker = "PR"
	Terminator     = ";"
)

// Classify reports the kind of a single line. Only the first two characters
// are looked at.
func Classify(line string) InstructionType {
	if len(line) < 2 {
		return PassthroughInstruction
	}
	switch line[:2] {
	case AbsoluteMarker:
		return AbsoluteMoveInstruction
	case RelativeMarker:
		return RelativeMoveInstruction
	}
	return PassthroughInstruction
}

func formatMove(marker string, p Point) string {
	return marker + p.String() + Terminator
}

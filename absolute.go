package hpgl

import (
	"fmt"
	"io"
)

// Accumulator is the inverse of Rewriter: it sums relative moves, starting
// from the origin, and emits absolute moves.
type Accumulator struct {
	cursor Point
	line   int
}

// Cursor is the accumulated absolute position.
func (a *Accumulator) Cursor() Point {
	return a.cursor
}

// AbsoluteLine converts one relative move. Other lines are returned as is.
func (a *Accumulator) AbsoluteLine(line string) (string, error) {
	a.line++
	if Classify(line) != RelativeMoveInstruction {
		return line, nil
	}

	d, err := parsePoint(moveBody(line))
	if err != nil {
		return "", err
	}
	next, ok := a.cursor.Add(d)
	if !ok {
		return "", fmt.Errorf("%w: moving %s from %s overflows", ErrMalformedMove, d, a.cursor)
	}
	a.cursor = next
	return formatMove(AbsoluteMarker, a.cursor), nil
}

// WriteLines converts lines and writes each one followed by a line break.
func (a *Accumulator) WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		converted, err := a.AbsoluteLine(l)
		if err != nil {
			return fmt.Errorf("line %d: %w", a.line, err)
		}
		if _, err := io.WriteString(w, converted+"\n"); err != nil {
			return err
		}
	}
	return nil
}

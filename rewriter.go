package hpgl

import (
	"fmt"
	"io"
	"math"

	mt "github.com/rustyoz/Mtransform"
	"github.com/sirupsen/logrus"
)

// Rewriter turns absolute pen moves into relative ones. The zero value
// starts at the origin and is ready to use.
type Rewriter struct {
	// Transform, when set, is applied to every absolute target before the
	// displacement is computed. Results are rounded to whole plotter units.
	Transform *mt.Transform
	// Log receives a debug entry per converted line. Nil discards.
	Log logrus.FieldLogger

	cursor Point
	line   int
}

// NewRewriter returns a Rewriter positioned at the origin.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Cursor is the last absolute position the pen was moved to.
func (r *Rewriter) Cursor() Point {
	return r.cursor
}

// RewriteLine converts a single line. Lines that are not absolute moves are
// returned untouched.
func (r *Rewriter) RewriteLine(line string) (string, error) {
	r.line++
	if Classify(line) != AbsoluteMoveInstruction {
		return line, nil
	}

	target, err := parsePoint(moveBody(line))
	if err != nil {
		return "", err
	}
	target, err = r.apply(target)
	if err != nil {
		return "", err
	}

	d, ok := target.Sub(r.cursor)
	if !ok {
		return "", fmt.Errorf("%w: displacement from %s to %s overflows", ErrMalformedMove, r.cursor, target)
	}
	r.logger().WithFields(logrus.Fields{
		"line":         r.line,
		"target":       target.String(),
		"displacement": d.String(),
	}).Debug("converted absolute move")

	r.cursor = target
	return formatMove(RelativeMarker, d), nil
}

// Rewrite converts lines in order and returns output of the same length.
// Processing stops at the first malformed move.
func (r *Rewriter) Rewrite(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		converted, err := r.RewriteLine(l)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", r.line, err)
		}
		out = append(out, converted)
	}
	return out, nil
}

// WriteLines converts lines and writes each one followed by a line break. Lines
// written before a failure stay written.
func (r *Rewriter) WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		converted, err := r.RewriteLine(l)
		if err != nil {
			return fmt.Errorf("line %d: %w", r.line, err)
		}
		if _, err := io.WriteString(w, converted+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rewriter) apply(p Point) (Point, error) {
	if r.Transform == nil {
		return p, nil
	}
	x, y := r.Transform.Apply(float64(p.X), float64(p.Y))
	x, y = math.Round(x), math.Round(y)
	if !inIntRange(x) || !inIntRange(y) {
		return Point{}, fmt.Errorf("%w: transformed target %g,%g overflows", ErrMalformedMove, x, y)
	}
	return Point{X: int(x), Y: int(y)}, nil
}

// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
func inIntRange(f float64) bool {
	return f >= math.MinInt && f < math.MaxInt
}

func (r *Rewriter) logger() logrus.FieldLogger {
	if r.Log == nil {
		return discard
	}
	return r.Log
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

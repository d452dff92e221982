package hpgl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// ErrMalformedMove is returned for a move line whose coordinates cannot be
// read.
var ErrMalformedMove = errors.New("malformed move command")

// moveBody strips the two character marker and the single trailing
// terminator. The terminator is not checked.
func moveBody(line string) string {
	if len(line) <= len(AbsoluteMarker)+1 {
		return ""
	}
	return line[len(AbsoluteMarker) : len(line)-1]
}

// parsePoint reads "<int>,<int>".
func parsePoint(body string) (Point, error) {
	fields := strings.Split(body, ",")
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: expected 2 comma separated fields in %q, got %d", ErrMalformedMove, body, len(fields))
	}

	x, err := parseField("x", fields[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseField("y", fields[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseField(name, field string) (int, error) {
	l, _ := gl.Lex(name, field)
	defer func() {
		for range l.Items {
		}
	}()

	l.ConsumeWhiteSpace()
	i := l.NextItem()
	if i.Type != gl.ItemNumber || i.Value != strings.TrimSpace(field) {
		return 0, fmt.Errorf("%w: %s field %q is not a number", ErrMalformedMove, name, field)
	}

	n, err := strconv.Atoi(i.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s field %q is not an integer", ErrMalformedMove, name, field)
	}
	return n, nil
}

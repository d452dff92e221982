package hpgl

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Program is a plotter control file held in memory, one entry per line.
type Program struct {
	Name  string
	Lines []string
}

// newlines folds CRLF and lone CR line breaks into LF.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseProgram splits str on line breaks. "\r\n" and "\r" count as line
// breaks too, so output is always LF terminated. A trailing line break
// yields an empty last line, which is kept so output matches input line for
// line.
func ParseProgram(str string, name string) *Program {
	return &Program{Name: name, Lines: strings.Split(newlines.Replace(str), "\n")}
}

// ParseProgramFromReader reads all of r before splitting it into lines.
func ParseProgramFromReader(r io.Reader, name string) (*Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return ParseProgram(string(b), name), nil
}

// ParseProgramFile loads the program stored at path.
func ParseProgramFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ParseProgramFromReader(f, path)
}

// WriteRelative writes the program to w with every absolute move replaced
// by a relative one, starting from the origin.
func (p *Program) WriteRelative(w io.Writer, r *Rewriter) error {
	if r == nil {
		r = NewRewriter()
	}
	if err := r.WriteLines(w, p.Lines); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

// WriteAbsolute writes the program to w with every relative move replaced
// by the absolute position it reaches.
func (p *Program) WriteAbsolute(w io.Writer) error {
	var a Accumulator
	if err := a.WriteLines(w, p.Lines); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

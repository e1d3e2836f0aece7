package munch

import "fmt"

// InlineName is the source name used when parsing an in-memory string that
// did not come from a file.
const InlineName = "<inline>"

// Source is the full text being parsed plus a name identifying where it
// came from. It is used only for diagnostics and is never mutated.
type Source struct {
	Text string
	Name string
}

// NewSource returns a Source for text originating from name.
func NewSource(name, text string) Source {
	return Source{Text: text, Name: name}
}

func inlineSource(text string) Source {
	return Source{Text: text, Name: InlineName}
}

// Position is a location in a source text. Line and Column are 1-based;
// Column counts runes, Offset counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionAt computes the line and column for a byte offset into s.Text.
// Positions are recomputed per error rather than cached; offsets past the
// end of the text are clamped to it.
func (s Source) PositionAt(offset int) Position {
	if offset > len(s.Text) {
		offset = len(s.Text)
	}
	line, column := 1, 1
	for _, r := range s.Text[:offset] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Position{Offset: offset, Line: line, Column: column}
}

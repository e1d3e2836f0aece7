package munch

import "fmt"

// previewLen bounds the found-text preview carried by UnexpectedTokenError,
// so messages stay short even when the remaining input is huge.
const previewLen = 20

// UnexpectedEOFError reports that the input ran out while a matcher still
// required characters. Pos is the end of the whole source, not the local
// cursor: running out is a property of the source itself.
type UnexpectedEOFError struct {
	Expected string
	Pos      Position
	Source   Source
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("%s:%s: unexpected end of input, expected %s",
		e.Source.Name, e.Pos, e.Expected)
}

// UnexpectedTokenError reports input whose head did not satisfy a matcher.
// Found holds at most previewLen runes of the offending input; Pos is the
// offset where the mismatch starts.
type UnexpectedTokenError struct {
	Found    string
	Expected string
	Pos      Position
	Source   Source
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s:%s: expected %s, found %q",
		e.Source.Name, e.Pos, e.Expected, e.Found)
}

func unexpectedEOF(src Source, expected string) error {
	return &UnexpectedEOFError{
		Expected: expected,
		Pos:      src.PositionAt(len(src.Text)),
		Source:   src,
	}
}

// unexpectedToken builds the mismatch error for input, which must be a
// suffix of src.Text.
func unexpectedToken(src Source, input, expected string) error {
	return &UnexpectedTokenError{
		Found:    preview(input),
		Expected: expected,
		Pos:      src.PositionAt(len(src.Text) - len(input)),
		Source:   src,
	}
}

func preview(s string) string {
	n := 0
	for i := range s {
		if n == previewLen {
			return s[:i]
		}
		n++
	}
	return s
}

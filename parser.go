package munch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Parser is the single capability every matcher implements. Implementations
// are immutable after construction and safe for concurrent use.
type Parser[A any] interface {
	// Expected describes what the parser matches, for error messages.
	Expected() string

	// Eat consumes a prefix of input, which must be a suffix of src.Text,
	// and returns the parsed value together with the unconsumed remainder.
	// On failure it returns an *UnexpectedEOFError or *UnexpectedTokenError.
	Eat(src Source, input string) (Result[A], error)
}

// Parse matches p against an in-memory string and requires it to consume
// all of it.
func Parse[A any](p Parser[A], text string) (A, error) {
	return ParseSource(p, inlineSource(text))
}

// ParseFile reads the file at path and parses its entire contents. The
// source is named by the file's resolved absolute path.
func ParseFile[A any](p Parser[A], path string) (A, error) {
	var zero A
	abs, err := filepath.Abs(path)
	if err != nil {
		return zero, fmt.Errorf("resolve path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return zero, fmt.Errorf("read file: %w", err)
	}
	return ParseSource(p, NewSource(abs, string(data)))
}

// ParseSource matches p against src.Text. This is the only place that
// enforces whole-input consumption: a non-empty remainder becomes an
// *UnexpectedTokenError expecting "<EOF>". Individual matchers never
// require exhaustion on their own.
func ParseSource[A any](p Parser[A], src Source) (A, error) {
	res, err := p.Eat(src, src.Text)
	if err != nil {
		var zero A
		return zero, err
	}
	if res.Remainder != "" {
		var zero A
		return zero, unexpectedToken(src, res.Remainder, "<EOF>")
	}
	return res.Value, nil
}

// Func builds a one-off parser from an expected-description and a function
// implementing Eat. It is the escape hatch for composing primitives without
// declaring a named type.
func Func[A any](expected string, eat func(Source, string) (Result[A], error)) Parser[A] {
	return funcParser[A]{expected: expected, eat: eat}
}

type funcParser[A any] struct {
	expected string
	eat      func(Source, string) (Result[A], error)
}

func (p funcParser[A]) Expected() string { return p.expected }

func (p funcParser[A]) Eat(src Source, input string) (Result[A], error) {
	return p.eat(src, input)
}

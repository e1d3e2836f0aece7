package munch

import (
	"errors"
	"testing"
)

func TestRefResolvesOnEveryUse(t *testing.T) {
	target := Parser[rune](Char('a'))
	p := Ref(func() Parser[rune] { return target })

	if got := p.Expected(); got != "'a'" {
		t.Errorf("Expected() = %q, want %q", got, "'a'")
	}
	if _, err := Parse(p, "a"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Swapping the target changes how the reference behaves; nothing is
	// cached between calls.
	target = Char('b')
	if got := p.Expected(); got != "'b'" {
		t.Errorf("Expected() after swap = %q, want %q", got, "'b'")
	}
	if _, err := Parse(p, "b"); err != nil {
		t.Fatalf("Parse() after swap error = %v", err)
	}
	if _, err := Parse(p, "a"); err == nil {
		t.Error("Parse(\"a\") after swap succeeded, want error")
	}
}

// nesting returns a parser matching balanced parentheses and yielding the
// nesting depth. The rule refers to itself through a lazy reference.
func nesting() Parser[int] {
	open := Char('(')
	clos := Char(')')

	var nest Parser[int]
	inner := Ref(func() Parser[int] { return nest })
	nest = Func("nesting", func(src Source, input string) (Result[int], error) {
		head, err := open.Eat(src, input)
		if err != nil {
			return Result[int]{Value: 0, Remainder: input}, nil
		}
		body, err := inner.Eat(src, head.Remainder)
		if err != nil {
			return Result[int]{}, err
		}
		tail, err := clos.Eat(src, body.Remainder)
		if err != nil {
			return Result[int]{}, err
		}
		return Result[int]{Value: body.Value + 1, Remainder: tail.Remainder}, nil
	})
	return nest
}

func TestRefRecursiveGrammar(t *testing.T) {
	tests := []struct {
		input string
		depth int
	}{
		{"", 0},
		{"()", 1},
		{"(())", 2},
		{"((()))", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(nesting(), tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.depth {
				t.Errorf("Parse() = %d, want %d", got, tt.depth)
			}
		})
	}
}

func TestRefRecursiveGrammarMalformed(t *testing.T) {
	t.Run("unclosed", func(t *testing.T) {
		_, err := Parse(nesting(), "(()")
		var eof *UnexpectedEOFError
		if !errors.As(err, &eof) {
			t.Fatalf("Parse() error = %v, want UnexpectedEOFError", err)
		}
		if eof.Expected != "')'" {
			t.Errorf("Expected = %q, want %q", eof.Expected, "')'")
		}
	})

	t.Run("unopened", func(t *testing.T) {
		_, err := Parse(nesting(), "())")
		var tok *UnexpectedTokenError
		if !errors.As(err, &tok) {
			t.Fatalf("Parse() error = %v, want UnexpectedTokenError", err)
		}
		if tok.Expected != "<EOF>" {
			t.Errorf("Expected = %q, want %q", tok.Expected, "<EOF>")
		}
		if tok.Pos.Offset != 2 {
			t.Errorf("Pos.Offset = %d, want 2", tok.Pos.Offset)
		}
	})
}

package munch

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// eatRune implements the shared failure discipline for single-character
// matchers: check for end of input first, then the predicate on the head
// rune.
func eatRune(src Source, input, expected string, pred func(rune) bool) (Result[rune], error) {
	if input == "" {
		return Result[rune]{}, unexpectedEOF(src, expected)
	}
	r, size := utf8.DecodeRuneInString(input)
	if !pred(r) {
		return Result[rune]{}, unexpectedToken(src, input, expected)
	}
	return Result[rune]{Value: r, Remainder: input[size:]}, nil
}

// Empty matches nothing, consumes nothing, and always succeeds.
func Empty() Parser[struct{}] { return emptyParser{} }

type emptyParser struct{}

func (emptyParser) Expected() string { return "empty string" }

func (emptyParser) Eat(src Source, input string) (Result[struct{}], error) {
	return Result[struct{}]{Remainder: input}, nil
}

// Char matches exactly one occurrence of the character c.
func Char(c rune) Parser[rune] { return charParser{want: c} }

type charParser struct{ want rune }

func (p charParser) Expected() string { return strconv.QuoteRune(p.want) }

func (p charParser) Eat(src Source, input string) (Result[rune], error) {
	want := p.want
	return eatRune(src, input, p.Expected(), func(r rune) bool { return r == want })
}

// String matches the literal s at the head of the input. An empty literal
// degenerates to a zero-width match that always succeeds; a one-character
// literal shares the single-character logic. Both specializations report
// errors exactly like the general case.
func String(s string) Parser[string] {
	switch utf8.RuneCountInString(s) {
	case 0:
		return emptyStringParser{}
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return oneRuneParser{want: r, expected: strconv.Quote(s)}
	default:
		return stringParser{want: s}
	}
}

type emptyStringParser struct{}

func (emptyStringParser) Expected() string { return "empty string" }

func (emptyStringParser) Eat(src Source, input string) (Result[string], error) {
	return Result[string]{Value: "", Remainder: input}, nil
}

type oneRuneParser struct {
	want     rune
	expected string
}

func (p oneRuneParser) Expected() string { return p.expected }

func (p oneRuneParser) Eat(src Source, input string) (Result[string], error) {
	want := p.want
	res, err := eatRune(src, input, p.expected, func(r rune) bool { return r == want })
	if err != nil {
		return Result[string]{}, err
	}
	return Result[string]{Value: string(res.Value), Remainder: res.Remainder}, nil
}

type stringParser struct{ want string }

func (p stringParser) Expected() string { return strconv.Quote(p.want) }

func (p stringParser) Eat(src Source, input string) (Result[string], error) {
	if input == "" {
		return Result[string]{}, unexpectedEOF(src, p.Expected())
	}
	if !strings.HasPrefix(input, p.want) {
		return Result[string]{}, unexpectedToken(src, input, p.Expected())
	}
	return Result[string]{Value: p.want, Remainder: input[len(p.want):]}, nil
}

// AnyOf matches one character that is a member of chars.
func AnyOf(chars ...rune) Parser[rune] {
	return setParser{set: chars, expected: "any char of " + describeSet(chars)}
}

// Except matches one character that is not a member of chars.
func Except(chars ...rune) Parser[rune] {
	return setParser{set: chars, negate: true, expected: "any char except " + describeSet(chars)}
}

type setParser struct {
	set      []rune
	negate   bool
	expected string
}

func (p setParser) Expected() string { return p.expected }

func (p setParser) Eat(src Source, input string) (Result[rune], error) {
	return eatRune(src, input, p.expected, func(r rune) bool {
		return p.contains(r) != p.negate
	})
}

func (p setParser) contains(r rune) bool {
	for _, c := range p.set {
		if c == r {
			return true
		}
	}
	return false
}

func describeSet(chars []rune) string {
	quoted := make([]string, len(chars))
	for i, c := range chars {
		quoted[i] = strconv.QuoteRune(c)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// AnyChar matches any single character; it fails only at end of input.
func AnyChar() Parser[rune] { return anyCharParser{} }

type anyCharParser struct{}

func (anyCharParser) Expected() string { return "any char" }

func (anyCharParser) Eat(src Source, input string) (Result[rune], error) {
	return eatRune(src, input, "any char", func(rune) bool { return true })
}

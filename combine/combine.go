// Package combine builds parsers out of the munch primitives: value
// transformation, sequencing, alternation and repetition. Every combinator
// is a pure wrapper over munch.Func and passes failures through unchanged,
// so the positioned error from the deepest failing matcher is what the
// caller sees.
package combine

import (
	"strings"

	"github.com/dhamidi/munch"
)

// Map transforms the value produced by p with f.
func Map[A, B any](p munch.Parser[A], f func(A) B) munch.Parser[B] {
	return munch.Func(p.Expected(), func(src munch.Source, input string) (munch.Result[B], error) {
		res, err := p.Eat(src, input)
		if err != nil {
			return munch.Result[B]{}, err
		}
		return munch.Result[B]{Value: f(res.Value), Remainder: res.Remainder}, nil
	})
}

// Then matches a followed by b and combines their values with f.
func Then[A, B, C any](a munch.Parser[A], b munch.Parser[B], f func(A, B) C) munch.Parser[C] {
	return munch.Func(a.Expected(), func(src munch.Source, input string) (munch.Result[C], error) {
		ra, err := a.Eat(src, input)
		if err != nil {
			return munch.Result[C]{}, err
		}
		rb, err := b.Eat(src, ra.Remainder)
		if err != nil {
			return munch.Result[C]{}, err
		}
		return munch.Result[C]{Value: f(ra.Value, rb.Value), Remainder: rb.Remainder}, nil
	})
}

// SkipThen matches a then b, keeping b's value.
func SkipThen[A, B any](a munch.Parser[A], b munch.Parser[B]) munch.Parser[B] {
	return Then(a, b, func(_ A, v B) B { return v })
}

// ThenSkip matches a then b, keeping a's value.
func ThenSkip[A, B any](a munch.Parser[A], b munch.Parser[B]) munch.Parser[A] {
	return Then(a, b, func(v A, _ B) A { return v })
}

// Or tries each alternative against the same input and returns the first
// success. When every branch fails, the last branch's error is returned
// unchanged; merging alternatives into a combined diagnostic is left to
// callers that want it. Or panics when called with no alternatives.
func Or[A any](parsers ...munch.Parser[A]) munch.Parser[A] {
	if len(parsers) == 0 {
		panic("combine: Or requires at least one alternative")
	}
	descs := make([]string, len(parsers))
	for i, p := range parsers {
		descs[i] = p.Expected()
	}
	expected := strings.Join(descs, " or ")
	return munch.Func(expected, func(src munch.Source, input string) (munch.Result[A], error) {
		var last error
		for _, p := range parsers {
			res, err := p.Eat(src, input)
			if err == nil {
				return res, nil
			}
			last = err
		}
		return munch.Result[A]{}, last
	})
}

// Many applies p zero or more times, collecting the values. A failed
// attempt consumes nothing. A zero-width success stops the loop after one
// iteration so that repetition of a non-consuming parser terminates.
func Many[A any](p munch.Parser[A]) munch.Parser[[]A] {
	return munch.Func(p.Expected(), func(src munch.Source, input string) (munch.Result[[]A], error) {
		var values []A
		rest := input
		for {
			res, err := p.Eat(src, rest)
			if err != nil {
				return munch.Result[[]A]{Value: values, Remainder: rest}, nil
			}
			values = append(values, res.Value)
			if len(res.Remainder) == len(rest) {
				return munch.Result[[]A]{Value: values, Remainder: rest}, nil
			}
			rest = res.Remainder
		}
	})
}

// Many1 applies p one or more times.
func Many1[A any](p munch.Parser[A]) munch.Parser[[]A] {
	return Then(p, Many(p), func(head A, tail []A) []A {
		return append([]A{head}, tail...)
	})
}

// Opt applies p, yielding def and consuming nothing when p fails.
func Opt[A any](p munch.Parser[A], def A) munch.Parser[A] {
	return munch.Func(p.Expected(), func(src munch.Source, input string) (munch.Result[A], error) {
		res, err := p.Eat(src, input)
		if err != nil {
			return munch.Result[A]{Value: def, Remainder: input}, nil
		}
		return res, nil
	})
}

// SepBy matches zero or more items separated by sep, collecting the item
// values. A trailing separator is not consumed.
func SepBy[A, B any](item munch.Parser[A], sep munch.Parser[B]) munch.Parser[[]A] {
	more := Many(SkipThen(sep, item))
	return munch.Func(item.Expected(), func(src munch.Source, input string) (munch.Result[[]A], error) {
		first, err := item.Eat(src, input)
		if err != nil {
			return munch.Result[[]A]{Remainder: input}, nil
		}
		rest, err := more.Eat(src, first.Remainder)
		if err != nil {
			return munch.Result[[]A]{}, err
		}
		values := append([]A{first.Value}, rest.Value...)
		return munch.Result[[]A]{Value: values, Remainder: rest.Remainder}, nil
	})
}

// Between matches p surrounded by l and r, keeping p's value.
func Between[L, A, R any](l munch.Parser[L], p munch.Parser[A], r munch.Parser[R]) munch.Parser[A] {
	return SkipThen(l, ThenSkip(p, r))
}

package main

import (
	"github.com/dhamidi/munch"
	"github.com/dhamidi/munch/combine"
)

// SExpr is either an atom (List is nil) or a parenthesized list.
type SExpr struct {
	Atom string
	List []SExpr
}

// sexprDocument builds the parser for a whitespace-separated sequence of
// s-expressions. The list rule refers back to the value rule through a lazy
// reference, since a list contains values and a value may be a list.
func sexprDocument() munch.Parser[[]SExpr] {
	ws := combine.Many(munch.AnyOf(' ', '\t', '\n', '\r'))

	atom := combine.Map(
		combine.Many1(munch.Except(' ', '\t', '\n', '\r', '(', ')')),
		func(runes []rune) SExpr { return SExpr{Atom: string(runes)} },
	)

	var value munch.Parser[SExpr]
	list := combine.Map(
		combine.Between(
			munch.Char('('),
			combine.Many(combine.SkipThen(ws, munch.Ref(func() munch.Parser[SExpr] { return value }))),
			combine.SkipThen(ws, munch.Char(')')),
		),
		func(items []SExpr) SExpr { return SExpr{List: items} },
	)
	value = combine.Or(list, atom)

	return combine.ThenSkip(combine.Many(combine.SkipThen(ws, value)), ws)
}

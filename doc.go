// Package munch provides small composable parsing primitives for
// recursive-descent grammars over in-memory strings.
//
// # Overview
//
// A Parser consumes a prefix of its input and yields a typed value together
// with the unconsumed remainder, or fails with a positioned error. The
// package covers the terminal matchers (literal strings, single characters,
// character sets, any-character, the empty match), the entry points that
// turn "parse some" into "parse all, or fail", and a lazy reference for
// recursive or mutually-recursive rules. Higher-level combinators built on
// this contract live in the combine subpackage.
//
// Parsing is strictly left-to-right over a fully materialized string; there
// is no streaming, no backtracking inside a matcher, and no recovery after
// a failure. An alternation combinator can discard a returned error and try
// another branch, which is the only form of retry the contract supports.
//
// # Errors
//
// Failures come in exactly two kinds. UnexpectedEOFError means the input
// ran out while a matcher still required characters; its position is the
// end of the whole source. UnexpectedTokenError means the head of the input
// did not satisfy the matcher; it carries a bounded preview of the
// offending text and the position where the mismatch starts. Both carry
// the matcher's expected-description and the Source being parsed, so
// callers can render file:line:column diagnostics.
//
// # Concurrency
//
// Parsers are immutable after construction and Eat is a pure function, so a
// single parser instance may be shared freely across goroutines. There is
// no guard against unbounded recursion: a self-referential grammar without
// a base case will exhaust the stack.
package munch

package munch

// Result is the outcome of a successful match: the parsed value and the
// unconsumed suffix of the input that produced it. Remainder is always a
// suffix of the input passed to Eat; it equals the input only for
// zero-width matches.
type Result[A any] struct {
	Value     A
	Remainder string
}

package munch

// Ref defers resolution of a parser until the moment it is used, so a
// grammar rule can refer to a rule defined later in the file or back to
// itself. The resolver runs afresh on every call and its result is never
// cached, which keeps construction free of ordering constraints; in the
// steady state it resolves to a stable recursive grammar.
func Ref[A any](resolve func() Parser[A]) Parser[A] {
	return refParser[A]{resolve: resolve}
}

type refParser[A any] struct {
	resolve func() Parser[A]
}

func (p refParser[A]) Expected() string { return p.resolve().Expected() }

func (p refParser[A]) Eat(src Source, input string) (Result[A], error) {
	return p.resolve().Eat(src, input)
}

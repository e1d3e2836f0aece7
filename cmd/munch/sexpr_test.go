package main

import (
	"testing"

	"github.com/dhamidi/munch"
)

func TestSexprDocument(t *testing.T) {
	doc := sexprDocument()

	tests := []struct {
		name  string
		input string
		count int
	}{
		{"empty", "", 0},
		{"atoms", "a bc def", 3},
		{"empty list", "()", 1},
		{"nested", "(add 1 (mul 2 3))", 1},
		{"surrounding whitespace", "  (a)\n(b)\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := munch.Parse(doc, tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if len(got) != tt.count {
				t.Errorf("len = %d, want %d", len(got), tt.count)
			}
		})
	}
}

func TestSexprStructure(t *testing.T) {
	doc := sexprDocument()

	got, err := munch.Parse(doc, "(add 1 (mul 2 3))")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	top := got[0]
	if len(top.List) != 3 {
		t.Fatalf("len(top.List) = %d, want 3", len(top.List))
	}
	if top.List[0].Atom != "add" {
		t.Errorf("head = %q, want %q", top.List[0].Atom, "add")
	}
	inner := top.List[2]
	if len(inner.List) != 3 || inner.List[0].Atom != "mul" {
		t.Errorf("inner = %+v, want (mul 2 3)", inner)
	}
}

func TestSexprMalformed(t *testing.T) {
	doc := sexprDocument()

	for _, input := range []string{"(add 1", "a)", "((x)"} {
		t.Run(input, func(t *testing.T) {
			if _, err := munch.Parse(doc, input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}

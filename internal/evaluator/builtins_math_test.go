package evaluator

import (
	"errors"
	"testing"

	"github.com/funvibe/poly/internal/expr"
)

func TestArithmetic(t *testing.T) {
	node := testNode(t)

	tests := []struct {
		input    string
		expected string
	}{
		// Addition; Float result iff any argument is Float.
		{"(+ 1 2 3)", "6"},
		{"(+ 1.0 2 3)", "6.0"},
		{"(+)", "0"},
		{"(+ 5)", "5"},

		// Subtraction folds left from the first argument; one argument
		// negates; none is zero.
		{"(- 10 3 2)", "5"},
		{"(- 4)", "-4"},
		{"(-)", "0"},
		{"(- 1.5 0.5)", "1.0"},

		// Multiplication is actual multiplication.
		{"(* 2 3 4)", "24"},
		{"(*)", "1"},
		{"(* 7)", "7"},
		{"(* 2.0 3)", "6.0"},
		{"(* 0 5)", "0"},

		// Division is always Float.
		{"(/ 10 4)", "2.5"},
		{"(/ 1 2)", "0.5"},
		{"(/ 12 2 3)", "2.0"},
		{"(/ 2)", "0.5"},
		{"(/)", "1.0"},

		// Nested.
		{"(* (+ 1 2) (- 10 6))", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertEvals(t, node, tt.input, tt.expected)
		})
	}
}

func TestArithmeticBigIntegers(t *testing.T) {
	node := testNode(t)
	assertEvals(t, node,
		"(* 1000000000000000000000 1000000000000000000000)",
		"1000000000000000000000000000000000000000000")
	assertEvals(t, node, "(+ 9223372036854775807 1)", "9223372036854775808")
}

func TestArithmeticRejectsNonNumbers(t *testing.T) {
	node := testNode(t)
	_, err := evalString(t, node, `(+ 1 "two")`)
	var invalid *expr.InvalidTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
}

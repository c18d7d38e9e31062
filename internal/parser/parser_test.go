package parser

import (
	"math/big"
	"testing"

	"github.com/funvibe/poly/internal/expr"
)

func read(t *testing.T, input string) expr.Expr {
	t.Helper()
	e, err := ReadExpr(input)
	if err != nil {
		t.Fatalf("ReadExpr(%q): %v", input, err)
	}
	return e
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		input    string
		expected expr.Expr
	}{
		{"x", &expr.Var{Name: "x"}},
		{"ref/new", &expr.Var{Name: "ref/new"}},
		{"`two words`", &expr.Var{Name: "two words"}},
		{"_", expr.TheBlank},
		{"42", expr.NewInt(42)},
		{"3.5", &expr.Float{Value: 3.5}},
		{"0xff", expr.NewInt(255)},
		{"0xDEAD", expr.NewInt(0xdead)},
		{`"hi"`, &expr.String{Value: "hi"}},
		{"#ok", &expr.Symbol{Name: "ok"}},
		{"#`odd one`", &expr.Symbol{Name: "odd one"}},
		{"'x", &expr.Quote{Expr: &expr.Var{Name: "x"}}},
		{"()", expr.TheNil},
		{"[]", expr.TheNil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := read(t, tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("ReadExpr(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReadBigInt(t *testing.T) {
	got := read(t, "123456789012345678901234567890")
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	i, ok := got.(*expr.Int)
	if !ok || i.Value.Cmp(want) != 0 {
		t.Errorf("ReadExpr big int = %s", got)
	}
}

func TestReadLists(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(a b c)", "(a b c)"},
		{"[a b c]", "(a b c)"},
		{"(a (b c) d)", "(a (b c) d)"},
		{"(a b . c)", "(a b . c)"},
		{"(+ 1 2, 3)", "(+ 1 2 3)"},
		{"'(1 2)", "'(1 2)"},
		{"(a ; comment\n b)", "(a b)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := read(t, tt.input)
			if got.String() != tt.expected {
				t.Errorf("ReadExpr(%q) prints %q, want %q", tt.input, got.String(), tt.expected)
			}
		})
	}
}

func TestReadMap(t *testing.T) {
	got := read(t, `{#b 2 #a 1}`)
	m, ok := got.(*expr.Map)
	if !ok {
		t.Fatalf("got %T, want *expr.Map", got)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	// Canonical print order sorts the keys.
	if m.String() != "{#a 1 #b 2}" {
		t.Errorf("String() = %q, want %q", m.String(), "{#a 1 #b 2}")
	}
}

func TestReadMapDuplicateKey(t *testing.T) {
	_, err := ReadExpr(`{#a 1 #a 2}`)
	if err == nil {
		t.Fatal("expected DuplicateKey error")
	}
	if _, ok := err.(*expr.DuplicateKeyError); !ok {
		t.Fatalf("expected *expr.DuplicateKeyError, got %T (%v)", err, err)
	}
}

func TestReadErrors(t *testing.T) {
	inputs := []string{
		"",
		"(a b",
		"(a . b c)",
		"(.)",
		"{#a}",
		`"unterminated`,
		")",
		"a b", // trailing content
		"#",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ReadExpr(input)
			if err == nil {
				t.Fatalf("ReadExpr(%q) should fail", input)
			}
		})
	}
}

// Round-trip law: printing and re-reading the printable subset is identity.
func TestShowReadRoundTrip(t *testing.T) {
	inputs := []string{
		"()",
		"42",
		"-0.5",
		`"a\"b"`,
		"#sym",
		"'(a b)",
		"(1 2 3)",
		"(1 . 2)",
		"{1 #one 2 #two}",
		"(a (b . c) {#k (1 2)})",
		"`two words`",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := read(t, input)
			second := read(t, first.String())
			if !second.Equal(first) {
				t.Errorf("round-trip broke: %s -> %s", first, second)
			}
		})
	}
}

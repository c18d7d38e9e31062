package expr

import (
	"testing"
)

func sampleValues() []Expr {
	return []Expr{
		TheNil,
		TheBlank,
		&Var{Name: "x"},
		&Var{Name: "y"},
		NewInt(0),
		NewInt(42),
		&Float{Value: 42},
		&Symbol{Name: "tag"},
		&String{Value: "tag"},
		&Quote{Expr: &Var{Name: "x"}},
		&Ref{ID: 0},
		&Ref{ID: 1},
		MakeList([]Expr{NewInt(1), NewInt(2)}, nil),
		MakeList([]Expr{NewInt(1), NewInt(2)}, NewInt(3)),
		NewMap(),
	}
}

func TestEqualityIsStructural(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Expr
		equal bool
	}{
		{"nil vs nil", TheNil, &Nil{}, true},
		{"nil vs blank", TheNil, TheBlank, false},
		{"same var", &Var{Name: "x"}, &Var{Name: "x"}, true},
		{"different var", &Var{Name: "x"}, &Var{Name: "y"}, false},
		{"same int", NewInt(5), NewInt(5), true},
		{"int vs float", NewInt(5), &Float{Value: 5}, false},
		{"symbol vs string", &Symbol{Name: "a"}, &String{Value: "a"}, false},
		{"symbol vs var", &Symbol{Name: "a"}, &Var{Name: "a"}, false},
		{
			"same list",
			MakeList([]Expr{NewInt(1), &String{Value: "two"}}, nil),
			MakeList([]Expr{NewInt(1), &String{Value: "two"}}, nil),
			true,
		},
		{
			"proper vs improper",
			MakeList([]Expr{NewInt(1), NewInt(2)}, nil),
			MakeList([]Expr{NewInt(1)}, NewInt(2)),
			false,
		},
		{
			"same quote",
			&Quote{Expr: MakeList([]Expr{&Var{Name: "a"}}, nil)},
			&Quote{Expr: MakeList([]Expr{&Var{Name: "a"}}, nil)},
			true,
		},
		{"same ref", &Ref{ID: 7}, &Ref{ID: 7}, true},
		{"different ref", &Ref{ID: 7}, &Ref{ID: 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("%s.Equal(%s) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.equal)
			}
		})
	}
}

func TestMapEqualityIgnoresInsertionOrder(t *testing.T) {
	a := NewMap()
	a.Set(&Symbol{Name: "x"}, NewInt(1))
	a.Set(&Symbol{Name: "y"}, NewInt(2))

	b := NewMap()
	b.Set(&Symbol{Name: "y"}, NewInt(2))
	b.Set(&Symbol{Name: "x"}, NewInt(1))

	if !a.Equal(b) {
		t.Errorf("%s should equal %s", a, b)
	}

	b.Set(&Symbol{Name: "y"}, NewInt(3))
	if a.Equal(b) {
		t.Errorf("%s should not equal %s", a, b)
	}
}

// Equal values must hash equal; this pairs every sample with every other and
// checks the implication both ways it can be checked.
func TestHashConsistentWithEquality(t *testing.T) {
	values := sampleValues()
	for _, a := range values {
		for _, b := range values {
			if a.Equal(b) && a.Hash() != b.Hash() {
				t.Errorf("%s == %s but hashes differ (%d vs %d)", a, b, a.Hash(), b.Hash())
			}
		}
	}
}

func TestEqualMapsHashEqual(t *testing.T) {
	a := NewMap()
	a.Set(&Symbol{Name: "x"}, NewInt(1))
	a.Set(NewInt(9), &String{Value: "nine"})

	b := NewMap()
	b.Set(NewInt(9), &String{Value: "nine"})
	b.Set(&Symbol{Name: "x"}, NewInt(1))

	if a.Hash() != b.Hash() {
		t.Errorf("equal maps hash differently: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestConsHashMixesSpine(t *testing.T) {
	ab := MakeList([]Expr{&Var{Name: "a"}, &Var{Name: "b"}}, nil)
	ba := MakeList([]Expr{&Var{Name: "b"}, &Var{Name: "a"}}, nil)
	if ab.Hash() == ba.Hash() {
		t.Errorf("(a b) and (b a) should not collide trivially")
	}
}

func TestLessOrdersVariantsByTag(t *testing.T) {
	ordered := []Expr{
		TheNil,
		TheBlank,
		&Var{Name: "v"},
		NewInt(1),
		&Float{Value: 1},
		&Symbol{Name: "s"},
		&String{Value: "s"},
		&Quote{Expr: TheNil},
		&Ref{ID: 0},
		NewEnv(),
		NewOperative(TheBlank, TheBlank, TheNil, NewEnv()),
		&Wrapped{Func: &Prim{Name: "p"}},
		&Prim{Name: "p"},
		&Cons{Head: TheNil, Tail: TheNil},
		NewMap(),
		NewNative(1),
	}

	for i := range ordered {
		for j := range ordered {
			got := Less(ordered[i], ordered[j])
			want := i < j
			if got != want {
				t.Errorf("Less(%s, %s) = %v, want %v", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestLessOrdersAtomsNaturally(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
	}{
		{"ints", NewInt(1), NewInt(2)},
		{"floats", &Float{Value: 1.5}, &Float{Value: 2.5}},
		{"strings", &String{Value: "a"}, &String{Value: "b"}},
		{"symbols", &Symbol{Name: "a"}, &Symbol{Name: "b"}},
		{"vars", &Var{Name: "a"}, &Var{Name: "b"}},
		{"refs", &Ref{ID: 1}, &Ref{ID: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Less(tt.a, tt.b) {
				t.Errorf("Less(%s, %s) = false, want true", tt.a, tt.b)
			}
			if Less(tt.b, tt.a) {
				t.Errorf("Less(%s, %s) = true, want false", tt.b, tt.a)
			}
			if Less(tt.a, tt.a) {
				t.Errorf("Less(%s, %s) = true, want false (irreflexive)", tt.a, tt.a)
			}
		})
	}
}

func TestElementsRejectsImproperList(t *testing.T) {
	improper := &Cons{Head: NewInt(1), Tail: NewInt(2)}
	if _, err := improper.Elements(); err == nil {
		t.Fatal("expected ImproperList error")
	} else if _, ok := err.(*ImproperListError); !ok {
		t.Fatalf("expected *ImproperListError, got %T", err)
	}
}

func TestMapFromPairsRejectsDuplicates(t *testing.T) {
	_, err := MapFromPairs([]Expr{
		&Symbol{Name: "k"}, NewInt(1),
		&Symbol{Name: "k"}, NewInt(2),
	})
	if err == nil {
		t.Fatal("expected DuplicateKey error")
	}
	if _, ok := err.(*DuplicateKeyError); !ok {
		t.Fatalf("expected *DuplicateKeyError, got %T", err)
	}
}

package evaluator

import (
	"testing"

	"github.com/google/uuid"

	"github.com/funvibe/poly/internal/expr"
)

func TestUuidNew(t *testing.T) {
	node := testNode(t)
	a := mustEval(t, node, "(uuid/new)")
	b := mustEval(t, node, "(uuid/new)")

	sa, ok := a.(*expr.String)
	if !ok {
		t.Fatalf("uuid/new returned %T", a)
	}
	if _, err := uuid.Parse(sa.Value); err != nil {
		t.Errorf("uuid/new produced %q: %v", sa.Value, err)
	}
	if a.Equal(b) {
		t.Errorf("two uuid/new calls returned the same value %s", a)
	}
}

func TestUuidNil(t *testing.T) {
	node := testNode(t)
	assertEvals(t, node, "(uuid/nil)", `"00000000-0000-0000-0000-000000000000"`)
}

func TestUuidParse(t *testing.T) {
	node := testNode(t)
	assertEvals(t, node,
		`(uuid/parse "6BA7B810-9DAD-11D1-80B4-00C04FD430C8")`,
		`"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`)

	if _, err := evalString(t, node, `(uuid/parse "not-a-uuid")`); err == nil {
		t.Fatal("expected error for invalid uuid")
	}
}

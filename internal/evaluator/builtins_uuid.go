package evaluator

import (
	"github.com/google/uuid"

	"github.com/funvibe/poly/internal/expr"
)

func registerUuid() {
	wprim("uuid/new", primUuidNew)
	wprim("uuid/nil", primUuidNil)
	wprim("uuid/parse", primUuidParse)
}

// primUuidNew returns a fresh random UUID as a string.
func primUuidNew(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	if _, err := args(argExpr, 0); err != nil {
		return nil, err
	}
	return &expr.String{Value: uuid.NewString()}, nil
}

func primUuidNil(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	if _, err := args(argExpr, 0); err != nil {
		return nil, err
	}
	return &expr.String{Value: uuid.Nil.String()}, nil
}

// primUuidParse canonicalizes a UUID string, accepting the usual variant
// spellings and failing on anything else.
func primUuidParse(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	s, err := wantString(elems[0])
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(s.Value)
	if err != nil {
		return nil, &expr.InvalidTypeError{Expr: s, Want: "UUID string"}
	}
	return &expr.String{Value: id.String()}, nil
}

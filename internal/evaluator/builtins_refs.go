package evaluator

import "github.com/funvibe/poly/internal/expr"

func registerRefs() {
	wprim("ref/new", primRefNew)
	wprim("ref/get", primRefGet)
	wprim("ref/set!", primRefSet)
}

func wantRef(e expr.Expr) (*expr.Ref, error) {
	r, ok := e.(*expr.Ref)
	if !ok {
		return nil, &expr.InvalidTypeError{Expr: e, Want: "Ref"}
	}
	return r, nil
}

// primRefNew allocates a reference cell holding the given value.
func primRefNew(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	ref := node.MakeRef()
	if err := node.SetRef(ref.ID, elems[0]); err != nil {
		return nil, err
	}
	return ref, nil
}

func primRefGet(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	ref, err := wantRef(elems[0])
	if err != nil {
		return nil, err
	}
	return node.GetRef(ref.ID)
}

func primRefSet(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 2)
	if err != nil {
		return nil, err
	}
	ref, err := wantRef(elems[0])
	if err != nil {
		return nil, err
	}
	if err := node.SetRef(ref.ID, elems[1]); err != nil {
		return nil, err
	}
	return nil, nil
}

package evaluator

import (
	"math/big"

	"github.com/funvibe/poly/internal/expr"
)

func registerMath() {
	wprim("+", mathPrim(addInts, addFloats))
	wprim("-", mathPrim(subInts, subFloats))
	wprim("*", mathPrim(mulInts, mulFloats))
	wprim("/", primDiv)
}

// numbers splits evaluated arguments into numeric values, reporting whether
// any of them was a Float. The result type of an arithmetic primitive is
// Float iff an argument was; floats always carries the converted values so
// division can use it unconditionally.
func numbers(argExpr expr.Expr) (ints []*big.Int, floats []float64, anyFloat bool, err error) {
	elems, err := expr.ListElements(argExpr)
	if err != nil {
		return nil, nil, false, err
	}
	for _, elem := range elems {
		switch num := elem.(type) {
		case *expr.Int:
			f, _ := new(big.Float).SetInt(num.Value).Float64()
			ints = append(ints, num.Value)
			floats = append(floats, f)
		case *expr.Float:
			anyFloat = true
			ints = append(ints, nil)
			floats = append(floats, num.Value)
		default:
			return nil, nil, false, &expr.InvalidTypeError{Expr: elem, Want: "Num"}
		}
	}
	return ints, floats, anyFloat, nil
}

func mathPrim(overInts func([]*big.Int) *big.Int, overFloats func([]float64) float64) expr.PrimFunc {
	return func(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
		ints, floats, anyFloat, err := numbers(argExpr)
		if err != nil {
			return nil, err
		}
		if anyFloat {
			return &expr.Float{Value: overFloats(floats)}, nil
		}
		return &expr.Int{Value: overInts(ints)}, nil
	}
}

func addInts(vals []*big.Int) *big.Int {
	acc := big.NewInt(0)
	for _, v := range vals {
		acc.Add(acc, v)
	}
	return acc
}

func addFloats(vals []float64) float64 {
	acc := 0.0
	for _, v := range vals {
		acc += v
	}
	return acc
}

// subInts negates a single argument and folds subtraction over two or more;
// with no arguments the result is zero.
func subInts(vals []*big.Int) *big.Int {
	acc := big.NewInt(0)
	if len(vals) >= 2 {
		acc.Set(vals[0])
		vals = vals[1:]
	}
	for _, v := range vals {
		acc.Sub(acc, v)
	}
	return acc
}

func subFloats(vals []float64) float64 {
	acc := 0.0
	if len(vals) >= 2 {
		acc = vals[0]
		vals = vals[1:]
	}
	for _, v := range vals {
		acc -= v
	}
	return acc
}

func mulInts(vals []*big.Int) *big.Int {
	acc := big.NewInt(1)
	for _, v := range vals {
		acc.Mul(acc, v)
	}
	return acc
}

func mulFloats(vals []float64) float64 {
	acc := 1.0
	for _, v := range vals {
		acc *= v
	}
	return acc
}

// primDiv always returns Float. With two or more arguments the first is the
// dividend; with fewer the accumulator starts at 1.0.
func primDiv(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	_, floats, _, err := numbers(argExpr)
	if err != nil {
		return nil, err
	}

	acc := 1.0
	if len(floats) >= 2 {
		acc = floats[0]
		floats = floats[1:]
	}
	for _, v := range floats {
		acc /= v
	}
	return &expr.Float{Value: acc}, nil
}

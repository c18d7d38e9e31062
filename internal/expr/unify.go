package expr

// Unify structurally matches pattern against value, producing an environment
// of bindings or a MatchError. Rules in order of specificity: Blank matches
// anything binding nothing; Var binds the value; Cons matches pairwise with
// the right-hand bindings winning on conflict; everything else matches by
// structural equality. There is no occurs-check, binding is first-order.
func Unify(pattern, value Expr) (*Env, error) {
	switch p := pattern.(type) {
	case *Blank:
		return NewEnv(), nil
	case *Var:
		env := NewEnv()
		env.Define(p.Name, value)
		return env, nil
	case *Cons:
		v, ok := value.(*Cons)
		if !ok {
			return nil, &MatchError{Pattern: pattern, Value: value}
		}
		headEnv, err := Unify(p.Head, v.Head)
		if err != nil {
			return nil, err
		}
		tailEnv, err := Unify(p.Tail, v.Tail)
		if err != nil {
			return nil, err
		}
		return headEnv.Merge(tailEnv), nil
	default:
		if pattern.Equal(value) {
			return NewEnv(), nil
		}
		return nil, &MatchError{Pattern: pattern, Value: value}
	}
}

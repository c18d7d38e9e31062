package evaluator

import (
	"gopkg.in/yaml.v3"

	"github.com/funvibe/poly/internal/expr"
)

func registerYaml() {
	wprim("yaml/parse", primYamlParse)
	wprim("yaml/show", primYamlShow)
}

// primYamlParse decodes a YAML document into expression values: mappings
// become maps, sequences proper lists, scalars the matching atoms, booleans
// the symbols #true and #false, null Nil.
func primYamlParse(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	s, err := wantString(elems[0])
	if err != nil {
		return nil, err
	}

	var data any
	if err := yaml.Unmarshal([]byte(s.Value), &data); err != nil {
		return nil, &expr.InvalidTypeError{Expr: s, Want: "YAML document"}
	}
	return exprFromYaml(data)
}

func exprFromYaml(data any) (expr.Expr, error) {
	switch v := data.(type) {
	case nil:
		return expr.TheNil, nil
	case bool:
		if v {
			return &expr.Symbol{Name: "true"}, nil
		}
		return &expr.Symbol{Name: "false"}, nil
	case int:
		return expr.NewInt(int64(v)), nil
	case int64:
		return expr.NewInt(v), nil
	case uint64:
		out := expr.NewInt(0)
		out.Value.SetUint64(v)
		return out, nil
	case float64:
		return &expr.Float{Value: v}, nil
	case string:
		return &expr.String{Value: v}, nil
	case []any:
		items := make([]expr.Expr, len(v))
		for i, item := range v {
			conv, err := exprFromYaml(item)
			if err != nil {
				return nil, err
			}
			items[i] = conv
		}
		return expr.MakeList(items, nil), nil
	case map[string]any:
		m := expr.NewMap()
		for key, item := range v {
			conv, err := exprFromYaml(item)
			if err != nil {
				return nil, err
			}
			m.Set(&expr.String{Value: key}, conv)
		}
		return m, nil
	default:
		return expr.NewNative(v), nil
	}
}

// primYamlShow encodes an expression value as a YAML document string.
func primYamlShow(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	data, err := yamlFromExpr(elems[0])
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, &expr.InvalidTypeError{Expr: elems[0], Want: "YAML-encodable value"}
	}
	return &expr.String{Value: string(out)}, nil
}

func yamlFromExpr(e expr.Expr) (any, error) {
	switch v := e.(type) {
	case *expr.Nil:
		return nil, nil
	case *expr.Int:
		if v.Value.IsInt64() {
			return v.Value.Int64(), nil
		}
		return v.Value.String(), nil
	case *expr.Float:
		return v.Value, nil
	case *expr.String:
		return v.Value, nil
	case *expr.Symbol:
		switch v.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return v.Name, nil
	case *expr.Cons:
		items, err := v.Elements()
		if err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, item := range items {
			conv, err := yamlFromExpr(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case *expr.Map:
		out := make(map[string]any, v.Len())
		for _, entry := range v.Entries() {
			key, ok := entry.Key.(*expr.String)
			if !ok {
				return nil, &expr.InvalidTypeError{Expr: entry.Key, Want: "String"}
			}
			conv, err := yamlFromExpr(entry.Value)
			if err != nil {
				return nil, err
			}
			out[key.Value] = conv
		}
		return out, nil
	default:
		return nil, &expr.InvalidTypeError{Expr: e, Want: "YAML-encodable value"}
	}
}

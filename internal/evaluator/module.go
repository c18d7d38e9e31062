package evaluator

import "github.com/funvibe/poly/internal/expr"

// ModuleDef is the payload a module form returns inside a native value:
// the module's name plus its definitions in declaration order.
type ModuleDef struct {
	Name  string
	Names []string
	Defs  map[string]expr.Expr
}

func (d *ModuleDef) String() string { return "module " + d.Name }

// AsModule extracts a module definition from an evaluated module form.
func AsModule(e expr.Expr) (*ModuleDef, bool) {
	native, ok := e.(*expr.Native)
	if !ok || len(native.Data) != 1 {
		return nil, false
	}
	def, ok := native.Data[0].(*ModuleDef)
	return def, ok
}

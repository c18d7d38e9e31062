package expr

import (
	"fmt"
	"strings"
)

// Native is an opaque host-side payload escorted through the evaluator
// unchanged. Primitives that return a non-Expr host value surface it as a
// Native.
type Native struct {
	Data []any
}

// NewNative wraps host values.
func NewNative(data ...any) *Native {
	return &Native{Data: data}
}

func (*Native) Order() Order { return OrderNative }

func (n *Native) String() string {
	parts := make([]string, len(n.Data))
	for i, d := range n.Data {
		parts[i] = fmt.Sprintf("%v", d)
	}
	return "(native-value " + strings.Join(parts, " ") + ")"
}

func (n *Native) Equal(other Expr) bool {
	o, ok := other.(*Native)
	return ok && n == o
}

func (n *Native) Hash() uint64 { return hashString(n.String()) + uint64(OrderNative) }

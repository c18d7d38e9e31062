package expr

import "strings"

// Cons is a pair. Proper lists are Cons spines terminated by Nil.
type Cons struct {
	Head Expr
	Tail Expr
}

func (*Cons) Order() Order { return OrderCons }

func (c *Cons) String() string {
	var parts []string
	cur := c
	for {
		parts = append(parts, cur.Head.String())
		switch tail := cur.Tail.(type) {
		case *Nil:
			return "(" + strings.Join(parts, " ") + ")"
		case *Cons:
			cur = tail
		default:
			parts = append(parts, ".", tail.String())
			return "(" + strings.Join(parts, " ") + ")"
		}
	}
}

func (c *Cons) Equal(other Expr) bool {
	o, ok := other.(*Cons)
	return ok && c.Head.Equal(o.Head) && c.Tail.Equal(o.Tail)
}

// Hash combines element hashes along the spine with a multiplicative mixer.
// An improper tail contributes its own hash as a final element.
func (c *Cons) Hash() uint64 {
	var h uint64
	cur := c
	for {
		h = mixHash(h, cur.Head)
		switch tail := cur.Tail.(type) {
		case *Nil:
			return h
		case *Cons:
			cur = tail
		default:
			return mixHash(h, tail)
		}
	}
}

// Elements returns the spine of a proper list. It fails with ImproperList
// when the walk hits a non-Cons non-Nil tail.
func (c *Cons) Elements() ([]Expr, error) {
	var elems []Expr
	cur := c
	for {
		elems = append(elems, cur.Head)
		switch tail := cur.Tail.(type) {
		case *Nil:
			return elems, nil
		case *Cons:
			cur = tail
		default:
			return nil, &ImproperListError{Expr: c}
		}
	}
}

// MakeList builds a list from elements onto tail. A nil tail means Nil, so
// MakeList(elems, nil) yields a proper list.
func MakeList(elems []Expr, tail Expr) Expr {
	if tail == nil {
		tail = TheNil
	}
	out := tail
	for i := len(elems) - 1; i >= 0; i-- {
		out = &Cons{Head: elems[i], Tail: out}
	}
	return out
}

// ListElements is Elements generalized to Nil, so callers can accept any
// proper list including the empty one.
func ListElements(e Expr) ([]Expr, error) {
	switch t := e.(type) {
	case *Nil:
		return nil, nil
	case *Cons:
		return t.Elements()
	default:
		return nil, &ImproperListError{Expr: e}
	}
}

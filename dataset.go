package dap

import (
	"fmt"
	"strings"
)

// Var is one node of a dataset description tree: the dataset root, a
// container (Structure, Sequence, Grid), or an array variable. Only leaves
// carry a Dtype and Shape. Trees decode directly from dataset documents;
// see OpenDataset.
type Var struct {
	Name     string `json:"name"`
	Dtype    *Dtype `json:"dtype,omitempty"`
	Shape    Shape  `json:"shape,omitempty"`
	Children []*Var `json:"children,omitempty"`
}

// Child returns the direct child named name, or nil.
func (v *Var) Child(name string) *Var {
	for _, c := range v.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Keys returns the names of v's direct children in order.
func (v *Var) Keys() []string {
	keys := make([]string, len(v.Children))
	for i, c := range v.Children {
		keys[i] = c.Name
	}
	return keys
}

// VarPath is a variable id split at its '.' separators. The root of the
// tree has the empty path.
type VarPath []string

func NewVarPath(id string) VarPath {
	return strings.Split(id, ".")
}

func (p VarPath) String() string {
	return strings.Join(p, ".")
}

func (p VarPath) Shift() (head string, rest VarPath) {
	switch len(p) {
	case 0:
		return "", nil
	case 1:
		return p[0], nil
	default:
		return p[0], p[1:]
	}
}

// Walk calls fn for v and every descendant, parents before children, with
// each variable's id relative to v.
func Walk(v *Var, fn func(id VarPath, v *Var)) {
	walkVar(v, nil, fn)
}

func walkVar(v *Var, id VarPath, fn func(id VarPath, v *Var)) {
	fn(id, v)
	for _, c := range v.Children {
		cid := append(append(VarPath{}, id...), c.Name)
		walkVar(c, cid, fn)
	}
}

// GetVar returns the variable with the given dotted id, descending from the
// dataset root one name at a time.
func GetVar(ds *Var, id string) (*Var, error) {
	v := ds
	p := NewVarPath(id)
	for len(p) > 0 {
		var name string
		name, p = p.Shift()
		child := v.Child(name)
		if child == nil {
			return nil, fmt.Errorf("%w: no variable %q under %q", ErrNotfound, name, v.Name)
		}
		v = child
	}
	return v, nil
}

// FixShorthand expands shorthand notation in a projection. Some clients
// request variables by bare name rather than by fully qualified id; each
// single-segment variable whose name is not a dataset key is searched for in
// the tree and replaced by its full dotted chain. A name matching more than
// one variable is ambiguous. A name matching none is left as-is and will
// fail lookup downstream.
func FixShorthand(proj Projection, ds *Var) (Projection, error) {
	out := make(Projection, 0, len(proj))
	for _, pv := range proj {
		if len(pv) != 1 || ds.Child(pv[0].Name) != nil {
			out = append(out, pv)
			continue
		}

		token := pv[0]
		var matches []VarPath
		Walk(ds, func(id VarPath, v *Var) {
			if len(id) > 0 && v.Name == token.Name {
				matches = append(matches, id)
			}
		})

		switch len(matches) {
		case 0:
			out = append(out, pv)
		case 1:
			full := make(ProjectionVar, 0, len(matches[0]))
			for _, parent := range matches[0][:len(matches[0])-1] {
				full = append(full, Segment{Name: parent})
			}
			full = append(full, Segment{Name: token.Name, Slice: token.Slice})
			out = append(out, full)
		default:
			return nil, fmt.Errorf("%w: ambiguous shorthand notation request: %s", ErrConstraintExpression, token.Name)
		}
	}
	return out, nil
}

package dap

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a projected variable: a name plus the hyperslab
// applied at that level of the dataset tree. An empty Slice means the whole
// variable.
type Segment struct {
	Name  string
	Slice IndexExpr
}

// ProjectionVar is the dotted chain of segments naming one variable in a
// projection, outermost first.
type ProjectionVar []Segment

// ID returns the variable's fully qualified dotted id.
func (v ProjectionVar) ID() string {
	names := make([]string, len(v))
	for i, seg := range v {
		names[i] = seg.Name
	}
	return strings.Join(names, ".")
}

func (v ProjectionVar) String() string {
	b := &strings.Builder{}
	for i, seg := range v {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(Quote(seg.Name))
		b.WriteString(Hyperslab(seg.Slice))
	}
	return b.String()
}

// Projection is the list of variables requested by a constraint expression.
type Projection []ProjectionVar

func (p Projection) String() string {
	vars := make([]string, len(p))
	for i, v := range p {
		vars[i] = v.String()
	}
	return strings.Join(vars, ",")
}

// ParseHyperslab parses a run of bracket groups in the DAP wire notation
// into an index expression. "[i]" is a single pick; "[a:b]" selects a
// through b inclusive with unit step; "[a:s:b]" selects a through b
// inclusive with step s. The empty string parses to an empty expression.
func ParseHyperslab(s string) (IndexExpr, error) {
	var expr IndexExpr
	rest := s
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: expected '[' in hyperslab %q", ErrConstraintExpression, s)
		}
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			return nil, fmt.Errorf("%w: unterminated hyperslab in %q", ErrConstraintExpression, s)
		}
		sel, err := parseBracket(rest[1:j])
		if err != nil {
			return nil, err
		}
		expr = append(expr, sel)
		rest = rest[j+1:]
	}
	return expr, nil
}

// parseBracket parses the interior of one "[...]" group. The wire stop is
// inclusive, so it parses to a Slice stop one past the written index.
func parseBracket(body string) (Selection, error) {
	fields := strings.Split(body, ":")
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index %q", ErrConstraintExpression, f)
		}
		ints[i] = n
	}

	switch len(ints) {
	case 1:
		return Index(ints[0]), nil
	case 2:
		return Slice{Start: At(ints[0]), Stop: At(ints[1] + 1), Step: At(1)}, nil
	case 3:
		if ints[1] == 0 {
			return nil, fmt.Errorf("%w: zero step", ErrMalformedIndex)
		}
		return Slice{Start: At(ints[0]), Stop: At(ints[2] + 1), Step: At(ints[1])}, nil
	default:
		return nil, fmt.Errorf("%w: hyperslab %q has %d fields", ErrConstraintExpression, body, len(ints))
	}
}

// ParseProjection parses the projection half of a constraint expression: a
// comma-separated list of variables, each a dotted chain of quoted names
// with optional hyperslabs.
func ParseProjection(s string) (Projection, error) {
	if s == "" {
		return Projection{}, nil
	}
	proj := make(Projection, 0, strings.Count(s, ",")+1)
	for _, part := range strings.Split(s, ",") {
		v, err := parseProjectionVar(part)
		if err != nil {
			return nil, err
		}
		proj = append(proj, v)
	}
	return proj, nil
}

func parseProjectionVar(s string) (ProjectionVar, error) {
	var pv ProjectionVar
	rest := s
	for {
		var raw string
		if i := strings.IndexAny(rest, "[."); i == -1 {
			raw, rest = rest, ""
		} else {
			raw, rest = rest[:i], rest[i:]
		}
		if raw == "" {
			return nil, fmt.Errorf("%w: empty name in %q", ErrConstraintExpression, s)
		}

		seg := Segment{Name: Unquote(raw)}
		for rest != "" && rest[0] == '[' {
			j := strings.IndexByte(rest, ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated hyperslab in %q", ErrConstraintExpression, s)
			}
			sel, err := parseBracket(rest[1:j])
			if err != nil {
				return nil, err
			}
			seg.Slice = append(seg.Slice, sel)
			rest = rest[j+1:]
		}
		pv = append(pv, seg)

		if rest == "" {
			return pv, nil
		}
		if rest[0] != '.' {
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrConstraintExpression, rest[0], s)
		}
		rest = rest[1:]
	}
}

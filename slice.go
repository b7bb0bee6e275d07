package dap

import "fmt"

// Shape is the ordered list of axis lengths describing an array's
// dimensionality. Lengths are non-negative and fixed for a given array.
type Shape []int

// Bound is an optional index bound. The zero value is open: no explicit
// bound was given, as with an omitted start or stop in a range. Open is a
// distinct state, not a sentinel integer, so a bound fixed at zero never
// collides with "unbounded".
type Bound struct {
	N  int
	Ok bool
}

// At returns a bound fixed at index n.
func At(n int) Bound { return Bound{N: n, Ok: true} }

// Or returns the bound's index, or def when the bound is open.
func (b Bound) Or(def int) int {
	if b.Ok {
		return b.N
	}
	return def
}

// Selection selects elements along one array axis. Exactly three types
// implement it: Index, Slice and Ellipsis.
type Selection interface {
	axisSelection()
}

// Index picks a single element along an axis. It may be negative before
// normalization, counting back from the end of the axis.
type Index int

func (Index) axisSelection() {}

// Slice selects a strided range along an axis. Open Start and Stop mean the
// range is unbounded on that side. An open Step means the default step of 1;
// an explicit zero step is malformed. The zero value selects the whole axis.
type Slice struct {
	Start Bound
	Stop  Bound
	Step  Bound
}

func (Slice) axisSelection() {}

// step returns the effective step, defaulting an open step to 1.
func (s Slice) step() int { return s.Step.Or(1) }

// full reports whether s selects an entire axis with unit step.
func (s Slice) full() bool {
	return !s.Start.Ok && !s.Stop.Ok && s.step() == 1
}

// Ellipsis stands for as many whole-axis selections as are needed to make an
// index expression span a shape. At most one may appear per expression, and
// only before normalization.
type Ellipsis struct{}

func (Ellipsis) axisSelection() {}

// IndexExpr is an ordered multidimensional index expression, one Selection
// per axis. Before normalization it may be shorter than the target shape and
// may contain one Ellipsis; FixSlice produces the canonical fixed-length
// form. Expressions are never mutated after construction.
type IndexExpr []Selection

// FixSlice returns expr normalized against shape: the ellipsis expanded,
// the expression padded on the right with whole-axis slices to the length of
// shape, and negative indexes and bounds resolved against their axis length.
// Open bounds stay open. Out-of-range indexes are not clamped; bounds
// checking belongs to whatever applies the expression to data.
//
// This follows the indexing rules described in
// http://docs.scipy.org/doc/numpy/reference/arrays.indexing.html
func FixSlice(expr IndexExpr, shape Shape) (IndexExpr, error) {
	ellipses := 0
	for _, sel := range expr {
		if _, ok := sel.(Ellipsis); ok {
			ellipses++
		}
	}
	if ellipses > 1 {
		return nil, fmt.Errorf("%w: more than one ellipsis", ErrMalformedIndex)
	}
	if n := len(expr) - ellipses; n > len(shape) {
		return nil, fmt.Errorf("%w: %d selections for %d axes", ErrShapeMismatch, n, len(shape))
	}

	// expand the ellipsis and make the expression at least as long as shape
	expand := len(shape) - len(expr)
	out := make(IndexExpr, 0, len(shape))
	for _, sel := range expr {
		if _, ok := sel.(Ellipsis); ok {
			for i := 0; i < expand+1; i++ {
				out = append(out, Slice{})
			}
			expand = 0
			continue
		}
		out = append(out, sel)
	}
	for ; expand > 0; expand-- {
		out = append(out, Slice{})
	}

	for i, n := range shape {
		switch sel := out[i].(type) {
		case Index:
			if sel < 0 {
				out[i] = sel + Index(n)
			}
		case Slice:
			if sel.Step.Ok && sel.Step.N == 0 {
				return nil, fmt.Errorf("%w: zero step", ErrMalformedIndex)
			}
			start, stop := sel.Start, sel.Stop
			if start.Ok && start.N < 0 {
				start = At(start.N + n)
			}
			if stop.Ok && stop.N < 0 {
				stop = At(stop.N + n)
			}
			out[i] = Slice{Start: start, Stop: stop, Step: At(sel.step())}
		}
	}

	return out, nil
}

// CombineSlices returns the single index expression equivalent to applying
// expr1 to an array and then expr2 to the result:
//
//	x[ CombineSlices(s1, s2) ] == x[s1][s2]
//
// The shorter expression is treated as padded on the right with whole-axis
// slices. Index selections are widened to unit ranges, so the result is
// always in range form; a caller that needs pick semantics (axis removal)
// re-collapses unit ranges itself. The identity above is exact when expr1
// has unit steps, which holds for every expression this package produces
// from a wire hyperslab without an explicit stride on the outer request.
func CombineSlices(expr1, expr2 IndexExpr) (IndexExpr, error) {
	n := len(expr1)
	if len(expr2) > n {
		n = len(expr2)
	}

	out := make(IndexExpr, 0, n)
	for i := 0; i < n; i++ {
		s1, err := rangeForm(selectionAt(expr1, i))
		if err != nil {
			return nil, err
		}
		s2, err := rangeForm(selectionAt(expr2, i))
		if err != nil {
			return nil, err
		}

		start := s1.Start.Or(0) + s2.Start.Or(0)
		step := s1.step() * s2.step()

		var stop Bound
		switch {
		case !s1.Stop.Ok && !s2.Stop.Ok:
			// open on both sides stays open
		case !s1.Stop.Ok:
			stop = At(s1.Start.Or(0) + s2.Stop.N)
		case !s2.Stop.Ok:
			stop = s1.Stop
		default:
			stop = At(minInt(s1.Stop.N, s1.Start.Or(0)+s2.Stop.N))
		}

		out = append(out, Slice{Start: At(start), Stop: stop, Step: At(step)})
	}

	return out, nil
}

// selectionAt returns the i'th selection of expr, filling past the end with
// whole-axis slices.
func selectionAt(expr IndexExpr, i int) Selection {
	if i < len(expr) {
		return expr[i]
	}
	return Slice{}
}

// rangeForm widens a selection to its Slice equivalent for composition.
func rangeForm(sel Selection) (Slice, error) {
	switch s := sel.(type) {
	case Index:
		return Slice{Start: At(int(s)), Stop: At(int(s) + 1), Step: At(1)}, nil
	case Slice:
		if s.Step.Ok && s.Step.N == 0 {
			return Slice{}, fmt.Errorf("%w: zero step", ErrMalformedIndex)
		}
		return s, nil
	case Ellipsis:
		return Slice{}, fmt.Errorf("%w: unresolved ellipsis in combination", ErrMalformedIndex)
	default:
		return Slice{}, fmt.Errorf("%w: unknown selection type %T", ErrMalformedIndex, sel)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

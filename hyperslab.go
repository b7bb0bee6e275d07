package dap

import (
	"fmt"
	"math"
	"strings"
)

// MaxStopIndex is the index printed (plus one) for an open stop bound in a
// hyperslab. It is the largest representable index for the platform's index
// type; no real axis can reach it, so it never collides with a genuine
// bound. Consumers treat any hyperslab ending at MaxStopIndex-1 as "to the
// end of the axis".
const MaxStopIndex = math.MaxInt

// Hyperslab returns the DAP wire representation of a multidimensional index
// expression: one "[start:step:last]" group per axis, concatenated in axis
// order with no separators. An open start prints as 0, an open step as 1,
// and the last index is stop-1, or MaxStopIndex-1 when the stop is open.
// Index selections print as unit ranges. Whole-axis selections are elided
// from the right; a fully unconstrained expression prints as the empty
// string. Ellipsis markers have no wire form and must be resolved with
// FixSlice before serializing.
func Hyperslab(expr IndexExpr) string {
	end := len(expr)
	for end > 0 {
		s, ok := expr[end-1].(Slice)
		if !ok || !s.full() {
			break
		}
		end--
	}

	b := &strings.Builder{}
	for _, sel := range expr[:end] {
		switch s := sel.(type) {
		case Index:
			fmt.Fprintf(b, "[%d:1:%d]", int(s), int(s))
		case Slice:
			fmt.Fprintf(b, "[%d:%d:%d]", s.Start.Or(0), s.step(), s.Stop.Or(MaxStopIndex)-1)
		}
	}
	return b.String()
}

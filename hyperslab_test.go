package dap

import (
	"fmt"
	"testing"
)

func TestHyperslab(t *testing.T) {
	openLast := fmt.Sprintf("%d", MaxStopIndex-1)

	cases := []struct {
		expr IndexExpr
		want string
	}{
		// trailing whole-axis selections are elided
		{IndexExpr{Slice{Start: At(1), Stop: At(3), Step: At(1)}, Slice{}}, "[1:1:2]"},
		{IndexExpr{Slice{Start: At(1), Stop: At(3), Step: At(1)}, Slice{Step: At(1)}}, "[1:1:2]"},
		{IndexExpr{Slice{}, Slice{}}, ""},
		{IndexExpr{}, ""},
		// an interior whole-axis selection still prints
		{IndexExpr{Slice{}, Index(2)}, "[0:1:" + openLast + "][2:1:2]"},
		// open stop prints the sentinel last index
		{IndexExpr{Slice{Start: At(2), Step: At(1)}}, "[2:1:" + openLast + "]"},
		// a whole axis with a stride is not a whole-axis selection
		{IndexExpr{Slice{Step: At(2)}}, "[0:2:" + openLast + "]"},
		// indexes print as unit ranges
		{IndexExpr{Index(3)}, "[3:1:3]"},
		// a bounded zero stop is not open
		{IndexExpr{Slice{Stop: At(0), Step: At(1)}}, "[0:1:-1]"},
	}

	for i, c := range cases {
		if got := Hyperslab(c.expr); got != c.want {
			t.Errorf("case %d: got %q, want %q", i, got, c.want)
		}
	}
}

func TestHyperslabParseRoundTrip(t *testing.T) {
	cases := []string{
		"[1:1:2]",
		"[0:2:9]",
		"[3:1:3]",
		"[1:1:2][0:3:17]",
	}
	for _, c := range cases {
		expr, err := ParseHyperslab(c)
		if err != nil {
			t.Fatal(err)
		}
		if got := Hyperslab(expr); got != c {
			t.Errorf("round trip of %q yielded %q", c, got)
		}
	}
}

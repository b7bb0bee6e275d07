package dap

import "errors"

var (
	// ErrMalformedIndex signals an index expression this algebra cannot
	// interpret: more than one ellipsis, a zero step, or an ellipsis where
	// only resolved selections are valid.
	ErrMalformedIndex = errors.New("malformed index expression")

	// ErrShapeMismatch signals an index expression with more explicit axis
	// selections than the target shape has axes.
	ErrShapeMismatch = errors.New("index expression does not match shape")

	// ErrConstraintExpression signals an invalid or ambiguous constraint
	// expression.
	ErrConstraintExpression = errors.New("constraint expression error")

	ErrNotfound = errors.New("not found")
)

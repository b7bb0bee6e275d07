// Package dap implements the index algebra used by DAP (OPeNDAP) servers and
// clients to describe rectangular subsets of multidimensional arrays: slice
// normalization against an array shape, sequential slice composition, and the
// bracketed hyperslab wire notation. It also carries the small constraint-
// expression helpers that surround the algebra: identifier quoting, scalar
// encoding, dataset tree traversal, and shorthand-name resolution.
//
// The package operates purely on index metadata. It never touches array
// contents.
package dap

const (
	// DAPVersion is the version of the DAP specification this package
	// implements.
	DAPVersion = "2.15"
)

// Markers delimiting records of a sequence variable in the DODS data
// encoding. Consumers writing or scanning data responses emit these verbatim.
const (
	StartOfSequence = "\x5a\x00\x00\x00"
	EndOfSequence   = "\xa5\x00\x00\x00"
)

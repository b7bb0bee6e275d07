package dap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Dtype describes a variable's storage type as a NumPy array protocol type
// string (typestr). The format consists of 3 parts:
//   - One character describing the byteorder of the data:
//     "<": little-endian; ">": big-endian; "|": not-relevant
//   - One character code giving the basic type of the array:
//     "b": boolean, "i": integer, "u": unsigned integer, "f": floating
//     point, "c": complex floating point, "S": string, "U": unicode
//   - An integer specifying the number of bytes the type uses.
//
// Dataset descriptions carry typestrs per variable; DAPType maps a Dtype to
// the DAP2 atomic type it travels as on the wire.
type Dtype struct {
	ByteOrder ByteOrder
	BasicType BasicType
	ByteSize  int
}

var (
	_ json.Unmarshaler = (*Dtype)(nil)
	_ json.Marshaler   = (*Dtype)(nil)
)

// DefaultStringDtype is the typestr assigned to string data of unknown
// width.
var DefaultStringDtype = Dtype{ByteOrder: BONotRelevant, BasicType: BTString, ByteSize: 128}

func ParseDtype(s string) (dt Dtype, err error) {
	// some producers HTML-escape their typestrs when serializing JSON
	s = strings.Replace(s, "&lt;", "<", 1)
	s = strings.Replace(s, "&gt;", ">", 1)

	if len(s) < 3 {
		return dt, fmt.Errorf("invalid Dtype string. %q is too short", s)
	}

	boByte, s := s[0], s[1:]
	dt.ByteOrder, err = ParseByteOrder(rune(boByte))
	if err != nil {
		return dt, err
	}

	typeByte, s := s[0], s[1:]
	dt.BasicType, err = ParseBasicType(rune(typeByte))
	if err != nil {
		return dt, err
	}

	size, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return dt, err
	}
	dt.ByteSize = int(size)

	return dt, nil
}

func (dt Dtype) String() string {
	return fmt.Sprintf("%s%s%d", string(dt.ByteOrder), string(dt.BasicType), dt.ByteSize)
}

// DAPType returns the name of the DAP2 atomic type dt is transmitted as.
// String-ish types collapse to String regardless of width; there is no
// signed byte on the wire, so one-byte integers widen to Int16.
func (dt Dtype) DAPType() (string, error) {
	switch dt.BasicType {
	case BTBoolean:
		return "Byte", nil
	case BTInteger:
		switch dt.ByteSize {
		case 1, 2:
			return "Int16", nil
		case 4, 8:
			return "Int32", nil
		}
	case BTUnsigned:
		switch dt.ByteSize {
		case 1:
			return "Byte", nil
		case 2:
			return "UInt16", nil
		case 4, 8:
			return "UInt32", nil
		}
	case BTFloatingPoint:
		switch dt.ByteSize {
		case 4:
			return "Float32", nil
		case 8:
			return "Float64", nil
		}
	case BTString, BTUnicode:
		return "String", nil
	}
	return "", fmt.Errorf("no DAP type for dtype %q", dt.String())
}

func (dt Dtype) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.String() + `"`), nil
}

func (dt *Dtype) UnmarshalJSON(d []byte) error {
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return err
	}
	t, err := ParseDtype(s)
	if err != nil {
		return err
	}

	*dt = t
	return nil
}

type ByteOrder rune

func ParseByteOrder(r rune) (ByteOrder, error) {
	o := ByteOrder(r)
	if _, ok := byteOrders[o]; !ok {
		return o, fmt.Errorf("unsupported byte order format: %q", r)
	}
	return o, nil
}

const (
	BONotRelevant  ByteOrder = '|'
	BOLittleEndian ByteOrder = '<'
	BOBigEndian    ByteOrder = '>'
)

var byteOrders = map[ByteOrder]struct{}{
	BONotRelevant:  {},
	BOLittleEndian: {},
	BOBigEndian:    {},
}

type BasicType rune

func ParseBasicType(r rune) (BasicType, error) {
	t := BasicType(r)
	if _, ok := supportedBasicTypes[t]; !ok {
		return t, fmt.Errorf("unsupported basic type: %q", r)
	}
	return t, nil
}

func (bt BasicType) Human() string {
	return supportedBasicTypes[bt]
}

const (
	BTBoolean       BasicType = 'b'
	BTInteger       BasicType = 'i'
	BTUnsigned      BasicType = 'u'
	BTFloatingPoint BasicType = 'f'
	BTComplex       BasicType = 'c'
	BTString        BasicType = 'S'
	BTUnicode       BasicType = 'U'
)

var supportedBasicTypes = map[BasicType]string{
	BTBoolean:       "bool",
	BTInteger:       "int",
	BTUnsigned:      "uint",
	BTFloatingPoint: "float",
	BTComplex:       "complex",
	BTString:        "string",
	BTUnicode:       "unicode",
}

package dap

import (
	"fmt"
	"strings"
)

// quoteSafe are the bytes besides alphanumerics that survive Quote
// unescaped. '%' is safe so already-quoted identifiers pass through
// unchanged.
const quoteSafe = `%_!~*'-"`

const upperhex = "0123456789ABCDEF"

// Quote returns name quoted according to the DAP specification. Quoting is
// percent-escaping of UTF-8 bytes, close to URL escaping except that the
// DAP-safe punctuation above is kept and periods are always escaped: '.'
// separates components of a variable id, so a period inside a name must
// travel as "%2E".
func Quote(name string) string {
	b := &strings.Builder{}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.':
			b.WriteString("%2E")
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(quoteSafe, c) != -1:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

// Unquote reverses Quote. Like the URL unescaping it mirrors it is lenient:
// a '%' not followed by two hex digits is kept as-is rather than rejected.
func Unquote(s string) string {
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Encode returns a value encoded to its DAP textual representation: numbers
// in "%.6g" form, everything else double-quoted with interior quotes
// escaped.
func Encode(v interface{}) string {
	switch n := v.(type) {
	case int:
		return fmt.Sprintf("%.6g", float64(n))
	case int8:
		return fmt.Sprintf("%.6g", float64(n))
	case int16:
		return fmt.Sprintf("%.6g", float64(n))
	case int32:
		return fmt.Sprintf("%.6g", float64(n))
	case int64:
		return fmt.Sprintf("%.6g", float64(n))
	case uint:
		return fmt.Sprintf("%.6g", float64(n))
	case uint8:
		return fmt.Sprintf("%.6g", float64(n))
	case uint16:
		return fmt.Sprintf("%.6g", float64(n))
	case uint32:
		return fmt.Sprintf("%.6g", float64(n))
	case uint64:
		return fmt.Sprintf("%.6g", float64(n))
	case float32:
		return fmt.Sprintf("%.6g", n)
	case float64:
		return fmt.Sprintf("%.6g", n)
	case bool:
		if n {
			return "1"
		}
		return "0"
	default:
		s := fmt.Sprint(v)
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
}

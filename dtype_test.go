package dap

import (
	"encoding/json"
	"testing"
)

func TestParseDtype(t *testing.T) {
	dt, err := ParseDtype("<f8")
	if err != nil {
		t.Fatal(err)
	}
	want := Dtype{ByteOrder: BOLittleEndian, BasicType: BTFloatingPoint, ByteSize: 8}
	if dt != want {
		t.Errorf("got %#v, want %#v", dt, want)
	}
	if dt.String() != "<f8" {
		t.Errorf("String: got %q", dt.String())
	}
}

func TestParseDtypeHTMLEscaped(t *testing.T) {
	dt, err := ParseDtype("&lt;i4")
	if err != nil {
		t.Fatal(err)
	}
	if dt.ByteOrder != BOLittleEndian || dt.BasicType != BTInteger || dt.ByteSize != 4 {
		t.Errorf("got %#v", dt)
	}
}

func TestParseDtypeErrors(t *testing.T) {
	for _, in := range []string{"", "<f", "xf8", "<x8", "<fx"} {
		if _, err := ParseDtype(in); err == nil {
			t.Errorf("ParseDtype(%q): expected error", in)
		}
	}
}

func TestDAPType(t *testing.T) {
	cases := []struct {
		typestr string
		want    string
	}{
		{"<i2", "Int16"},
		{"<i4", "Int32"},
		{"<i8", "Int32"},
		{">u1", "Byte"},
		{">u2", "UInt16"},
		{">u4", "UInt32"},
		{"<f4", "Float32"},
		{"<f8", "Float64"},
		{"|b1", "Byte"},
		{"|S128", "String"},
		{"<U16", "String"},
	}
	for _, c := range cases {
		dt, err := ParseDtype(c.typestr)
		if err != nil {
			t.Fatal(err)
		}
		got, err := dt.DAPType()
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%q: got %q, want %q", c.typestr, got, c.want)
		}
	}

	cdt, err := ParseDtype("<c16")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cdt.DAPType(); err == nil {
		t.Error("expected no DAP type for complex dtypes")
	}
}

func TestDefaultStringDtype(t *testing.T) {
	if got := DefaultStringDtype.String(); got != "|S128" {
		t.Errorf("got %q, want %q", got, "|S128")
	}
	if dap, err := DefaultStringDtype.DAPType(); err != nil || dap != "String" {
		t.Errorf("got (%q, %v)", dap, err)
	}
}

func TestDtypeJSON(t *testing.T) {
	var dt Dtype
	if err := json.Unmarshal([]byte(`"&lt;f8"`), &dt); err != nil {
		t.Fatal(err)
	}
	d, err := json.Marshal(dt)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `"<f8"` {
		t.Errorf("got %s", d)
	}
}

package dap

import (
	"errors"
	"strings"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if s.Type() != MemoryStoreType {
		t.Errorf("got type %q", s.Type())
	}

	if _, err := s.Get("missing.json"); !errors.Is(err, ErrNotfound) {
		t.Errorf("got error %v, want %v", err, ErrNotfound)
	}

	if err := s.Put("coads.json", strings.NewReader(`{"name":"coads"}`)); err != nil {
		t.Fatal(err)
	}
	f, err := s.Get("coads.json")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
}

func TestKeyDocType(t *testing.T) {
	cases := []struct {
		key  string
		want DocType
		ok   bool
	}{
		{"coads.json", DTDataset, true},
		{"coads.json.gz", DTDataset, true},
		{"coads.dds", DTDescriptor, true},
		{"coads.das", DTAttributes, true},
		{"nested/coads.json.zst", DTDataset, true},
		{"coads.nc", "", false},
		{"coads", "", false},
	}
	for _, c := range cases {
		dt, ok := KeyDocType(c.key)
		if ok != c.ok || (ok && dt != c.want) {
			t.Errorf("KeyDocType(%q): got (%q, %v), want (%q, %v)", c.key, dt, ok, c.want, c.ok)
		}
	}
}

func TestOpenDataset(t *testing.T) {
	s := NewMemoryStore()
	doc := `{
		"name": "simple",
		"children": [
			{"name": "x", "dtype": "<i4", "shape": [10]}
		]
	}`
	if err := s.Put("simple.json", strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}

	ds, err := OpenDataset(s, "simple.json")
	if err != nil {
		t.Fatal(err)
	}
	if ds.Name != "simple" {
		t.Errorf("got dataset %q", ds.Name)
	}
	x, err := GetVar(ds, "x")
	if err != nil {
		t.Fatal(err)
	}
	if x.Dtype == nil || x.Dtype.BasicType != BTInteger || x.Shape[0] != 10 {
		t.Errorf("got variable %#v", x)
	}
}

func TestOpenDatasetBadKey(t *testing.T) {
	s := NewMemoryStore()
	if _, err := OpenDataset(s, "coads.dds"); err == nil {
		t.Error("expected an error for a non-dataset document key")
	}
}

func TestOpenDatasetLocalStore(t *testing.T) {
	s, err := NewLocalStore("./testdata")
	if err != nil {
		t.Fatal(err)
	}

	ds, err := OpenDataset(s, "coads.json")
	if err != nil {
		t.Fatal(err)
	}

	sst, err := GetVar(ds, "SST")
	if err != nil {
		t.Fatal(err)
	}
	if dt, err := sst.Dtype.DAPType(); err != nil || dt != "Float64" {
		t.Errorf("got (%q, %v)", dt, err)
	}

	fixed, err := FixSlice(IndexExpr{Index(0), Ellipsis{}}, sst.Shape)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Hyperslab(fixed), "[0:1:0]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package dap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/qri-io/dataset/compression"
)

const (
	MemoryStoreType   = "MemoryStore"
	LocalStoreType    = "LocalStore"
	dirPermissionBits = 0755
)

// Store is keyed storage for dataset description documents. It holds
// descriptions only; array data never passes through it.
type Store interface {
	Get(key string) (io.ReadCloser, error)
	Put(key string, val io.Reader) error
	Type() string
}

// DocType enumerates the DAP document kinds a store can hold.
type DocType string

const (
	// DTDescriptor is a dataset structure description (DDS)
	DTDescriptor DocType = ".dds"
	// DTAttributes is a dataset attribute description (DAS)
	DTAttributes DocType = ".das"
	// DTDataset is a JSON dataset document decodable into a Var tree
	DTDataset DocType = ".json"
)

var docTypes = map[DocType]struct{}{
	DTDescriptor: {},
	DTAttributes: {},
	DTDataset:    {},
}

// KeyDocType reports the document kind a store key holds, looking past a
// trailing compression extension.
func KeyDocType(key string) (dt DocType, ok bool) {
	if ext := filepath.Ext(key); ext == ".gz" || ext == ".zst" {
		key = strings.TrimSuffix(key, ext)
	}
	dt = DocType(filepath.Ext(key))
	_, ok = docTypes[dt]
	return dt, ok
}

// DocReader opens the document at key, transparently decompressing when the
// key carries a compression extension.
func DocReader(s Store, key string) (io.ReadCloser, error) {
	f, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	switch ext := filepath.Ext(key); ext {
	case ".gz", ".zst":
		return compression.Decompressor(strings.TrimPrefix(ext, "."), f)
	default:
		return f, nil
	}
}

// OpenDataset decodes the dataset document at key into a variable tree.
func OpenDataset(s Store, key string) (*Var, error) {
	if dt, ok := KeyDocType(key); !ok || dt != DTDataset {
		return nil, fmt.Errorf("%q is not a dataset document key", key)
	}
	f, err := DocReader(s, key)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds := &Var{}
	if err := json.NewDecoder(f).Decode(ds); err != nil {
		return nil, fmt.Errorf("reading dataset document %q: %w", key, err)
	}
	return ds, nil
}

type MemoryStore struct {
	lk   sync.Mutex
	data map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: map[string][]byte{},
	}
}

func (s *MemoryStore) Type() string { return MemoryStoreType }

func (s *MemoryStore) Get(key string) (io.ReadCloser, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	d, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotfound, key)
	}
	return io.NopCloser(bytes.NewBuffer(d)), nil
}

func (s *MemoryStore) Put(key string, val io.Reader) error {
	d, err := io.ReadAll(val)
	if err != nil {
		return err
	}

	s.lk.Lock()
	defer s.lk.Unlock()
	s.data[key] = d

	return nil
}

type LocalStore struct {
	base string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(base string) (*LocalStore, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(base, dirPermissionBits); err != nil {
		return nil, err
	}

	return &LocalStore{
		base: base,
	}, nil
}

func (s *LocalStore) Type() string { return LocalStoreType }

func (s *LocalStore) Get(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.base, key))
}

func (s *LocalStore) Put(key string, val io.Reader) error {
	path := filepath.Join(s.base, key)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissionBits); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, val); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

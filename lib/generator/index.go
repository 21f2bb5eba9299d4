package generator

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Index records what a generate run wrote. It is stored as canonical CBOR
// so identical runs produce identical index bytes.
type Index struct {
	Bundles  []IndexEntry `cbor:"bundles"`
	Registry string       `cbor:"registry,omitempty"`
}

// IndexEntry describes one written bundle.
type IndexEntry struct {
	ModulesID  string   `cbor:"modules_id"`
	BundleID   string   `cbor:"bundle_id"`
	File       string   `cbor:"file"`
	Priority   string   `cbor:"priority"` // encoded: "0" low, "1" high
	Components []string `cbor:"components"`
}

// Lookup returns the entry for a modules id.
func (idx *Index) Lookup(modulesID string) (IndexEntry, bool) {
	for _, e := range idx.Bundles {
		if e.ModulesID == modulesID {
			return e, true
		}
	}
	return IndexEntry{}, false
}

var indexEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("generator: failed to create CBOR enc mode: %v", err))
	}
	indexEncMode = em
}

// MarshalIndex serializes an Index to CBOR bytes.
func MarshalIndex(idx *Index) ([]byte, error) {
	return indexEncMode.Marshal(idx)
}

// UnmarshalIndex deserializes an Index from CBOR bytes.
func UnmarshalIndex(data []byte) (*Index, error) {
	var idx Index
	if err := cbor.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("generator: unmarshal index: %w", err)
	}
	return &idx, nil
}

// ReadIndex loads an index file. A missing file is reported with an error
// matching os.ErrNotExist.
func ReadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalIndex(data)
}

package dataset

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// GeoJSON properties are loosely typed; nested values need registering
// before they can travel through an interface field.
func init() {
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// indexSnapshot is the gob-encodable form of an Index. Derived lookups are
// rebuilt on decode rather than stored.
type indexSnapshot struct {
	Routes     []Route
	Airports   map[string]Airport
	AirportsFC *FeatureCollection
}

// SerializeIndex encodes an Index to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-fetching the datasets.
//
// Example:
//
//	idx, _ := dataset.NewIndexFromConfig(cfg)
//	data, err := dataset.SerializeIndex(idx)
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("/path/to/cache/index.gob", data, 0644)
//
// Thread safety: safe for concurrent use once the index is fully constructed.
func SerializeIndex(idx *Index) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeIndexToWriter(idx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeIndex decodes an Index from bytes using gob encoding.
// Use this to load a previously serialized index from disk cache.
func DeserializeIndex(data []byte) (*Index, error) {
	return DeserializeIndexFromReader(bytes.NewReader(data))
}

// SerializeIndexToFile writes an Index to a file using gob encoding.
func SerializeIndexToFile(idx *Index, filepath string) error {
	data, err := SerializeIndex(idx)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// DeserializeIndexFromFile reads an Index from a file using gob encoding.
//
// Example:
//
//	idx, err := dataset.DeserializeIndexFromFile("/cache/index.gob")
//	if err != nil {
//	    // Cache miss or corrupted, fetch fresh data
//	    idx, _ = dataset.NewIndexFromConfig(cfg)
//	}
func DeserializeIndexFromFile(filepath string) (*Index, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeIndex(data)
}

// SerializeIndexToWriter writes an Index to an io.Writer using gob encoding.
func SerializeIndexToWriter(idx *Index, w io.Writer) error {
	snap := indexSnapshot{
		Routes:     idx.routes,
		Airports:   idx.airports,
		AirportsFC: idx.airportsFC,
	}
	if err := gob.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	return nil
}

// DeserializeIndexFromReader reads an Index from an io.Reader using gob encoding.
func DeserializeIndexFromReader(r io.Reader) (*Index, error) {
	var snap indexSnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}
	idx := NewIndex()
	if snap.Routes != nil {
		idx.routes = snap.Routes
	}
	if snap.Airports != nil {
		idx.airports = snap.Airports
	}
	idx.airportsFC = snap.AirportsFC
	idx.buildDerived()
	return idx, nil
}

package dataset

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSerializeIndex_RoundTrip(t *testing.T) {
	idx := loadTestIndex(t)
	data, err := SerializeIndex(idx)
	if err != nil {
		t.Fatalf("SerializeIndex: %v", err)
	}
	got, err := DeserializeIndex(data)
	if err != nil {
		t.Fatalf("DeserializeIndex: %v", err)
	}
	if got.RouteCount() != idx.RouteCount() || got.AirportCount() != idx.AirportCount() {
		t.Errorf("counts after round trip: %d/%d, want %d/%d",
			got.RouteCount(), got.AirportCount(), idx.RouteCount(), idx.AirportCount())
	}
	// Derived lookups are rebuilt on decode.
	if !reflect.DeepEqual(got.SourceAirports(), idx.SourceAirports()) {
		t.Errorf("SourceAirports after round trip = %v, want %v", got.SourceAirports(), idx.SourceAirports())
	}
	a, _ := idx.ResolvePairs("ATL", false)
	b, _ := got.ResolvePairs("ATL", false)
	if !reflect.DeepEqual(a, b) {
		t.Error("ResolvePairs differs after round trip")
	}
}

func TestSerializeIndexToFile_RoundTrip(t *testing.T) {
	idx := loadTestIndex(t)
	p := filepath.Join(t.TempDir(), "index.gob")
	if err := SerializeIndexToFile(idx, p); err != nil {
		t.Fatalf("SerializeIndexToFile: %v", err)
	}
	got, err := DeserializeIndexFromFile(p)
	if err != nil {
		t.Fatalf("DeserializeIndexFromFile: %v", err)
	}
	if got.RouteCount() != idx.RouteCount() {
		t.Errorf("RouteCount = %d, want %d", got.RouteCount(), idx.RouteCount())
	}
}

func TestDeserializeIndexFromFile_Missing(t *testing.T) {
	if _, err := DeserializeIndexFromFile(filepath.Join(t.TempDir(), "nope.gob")); err == nil {
		t.Error("missing snapshot should return error")
	}
}

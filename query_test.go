package flightmap

import (
	"testing"
)

func TestNormalizeAirportCode(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ATL", "ATL", false},
		{"atl", "ATL", false},
		{" jfk ", "JFK", false},
		{"", "", true},
		{"AT", "", true},
		{"ATLL", "", true},
		{"A1L", "", true},
		{"A-L", "", true},
	}
	for _, c := range cases {
		got, err := NormalizeAirportCode(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("NormalizeAirportCode(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAirportCode(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeAirportCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEnsureOriginExists(t *testing.T) {
	idx := loadTestIndex(t)
	if err := ensureOriginExists("ATL", idx); err != nil {
		t.Errorf("ATL should exist: %v", err)
	}
	if err := ensureOriginExists("ZZZ", idx); err == nil {
		t.Error("ZZZ should not exist")
	}
}

package flightmap

import (
	"strings"

	"github.com/flightviz/flightmap/dataset"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// NormalizeAirportCode validates and canonicalizes an airport code parameter.
// Codes are 3 letters; input is uppercased so "atl" selects ATL. Filtering
// itself stays case-sensitive against the canonical form.
func NormalizeAirportCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return "", &QueryError{Msg: "Airport code must be exactly 3 letters."}
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", &QueryError{Msg: "Airport code must contain only letters."}
		}
	}
	return strings.ToUpper(s), nil
}

// ensureOriginExists rejects codes with no departing routes. The routes API
// applies it when the caller opts in via requireOrigin; the map page accepts
// unknown codes and renders an empty route set.
func ensureOriginExists(code string, idx *dataset.Index) error {
	if !idx.HasOrigin(code) {
		return &QueryError{Msg: "No routes from airport: " + code + "."}
	}
	return nil
}

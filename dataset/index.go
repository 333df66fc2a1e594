package dataset

import (
	"fmt"
	"sort"

	"github.com/flightviz/flightmap/config"
)

// Index stores the routes table and airport table in memory for fast lookups.
// Both datasets are immutable once loaded.
type Index struct {
	routes      []Route            // CSV order
	byOrigin    map[string][]int   // src code -> positions into routes, CSV order
	airports    map[string]Airport // code -> airport record
	airportsFC  *FeatureCollection // raw GeoJSON, embedded into the page
	srcAirports []string           // sorted unique source codes
}

// NewIndex creates a new empty index
func NewIndex() *Index {
	// Slices start non-nil so empty datasets embed as [] rather than null.
	return &Index{
		routes:   []Route{},
		byOrigin: map[string][]int{},
		airports: map[string]Airport{},
	}
}

// NewIndexFromConfig creates and loads an index from dataset configuration
func NewIndexFromConfig(cfg config.DatasetConfig) (*Index, error) {
	idx := NewIndex()
	if cfg.Routes != "" {
		if err := idx.loadRoutes(cfg.Routes); err != nil {
			return idx, err
		}
	}
	if cfg.Airports != "" {
		if err := idx.loadAirports(cfg.Airports); err != nil {
			return idx, err
		}
	}
	idx.buildDerived()
	return idx, nil
}

func (idx *Index) buildDerived() {
	idx.byOrigin = map[string][]int{}
	for i, rt := range idx.routes {
		idx.byOrigin[rt.SrcAirport] = append(idx.byOrigin[rt.SrcAirport], i)
	}
	idx.srcAirports = make([]string, 0, len(idx.byOrigin))
	for code := range idx.byOrigin {
		idx.srcAirports = append(idx.srcAirports, code)
	}
	sort.Strings(idx.srcAirports)
}

// Accessor methods

// RoutesFrom returns the routes whose origin equals code, preserving CSV order.
// Matching is case-sensitive exact. An unknown code yields an empty slice.
func (idx *Index) RoutesFrom(code string) []Route {
	positions := idx.byOrigin[code]
	out := make([]Route, 0, len(positions))
	for _, p := range positions {
		out = append(out, idx.routes[p])
	}
	return out
}

// Airport looks up an airport record by code.
func (idx *Index) Airport(code string) (Airport, bool) {
	a, ok := idx.airports[code]
	return a, ok
}

// AirportName returns the airport's display name, falling back to the code.
func (idx *Index) AirportName(code string) string {
	if a, ok := idx.airports[code]; ok && a.Name != "" {
		return a.Name
	}
	return code
}

// HasOrigin reports whether any route departs from code.
func (idx *Index) HasOrigin(code string) bool {
	_, ok := idx.byOrigin[code]
	return ok
}

// AllRoutes returns the whole route table in CSV order.
func (idx *Index) AllRoutes() []Route { return idx.routes }

// SourceAirports returns the sorted unique list of origin codes.
func (idx *Index) SourceAirports() []string { return idx.srcAirports }

func (idx *Index) RouteCount() int { return len(idx.routes) }

func (idx *Index) AirportCount() int { return len(idx.airports) }

// AirportFeatures returns the raw airports GeoJSON as loaded.
func (idx *Index) AirportFeatures() *FeatureCollection {
	if idx.airportsFC == nil {
		return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	}
	return idx.airportsFC
}

// ResolvePairs filters routes by origin and joins destination coordinates
// against the airport table. Destination coordinates always come from the
// airport table; origin coordinates prefer the airport table and fall back to
// the CSV row. With strict=false a destination absent from the airport table
// drops the pair; with strict=true it is an error.
func (idx *Index) ResolvePairs(code string, strict bool) ([]CoordPair, error) {
	routes := idx.RoutesFrom(code)
	pairs := make([]CoordPair, 0, len(routes))
	for _, rt := range routes {
		dst, ok := idx.airports[rt.DstAirport]
		if !ok {
			if strict {
				return nil, fmt.Errorf("destination airport %q not in airport table", rt.DstAirport)
			}
			continue
		}
		src := [2]float64{rt.SrcLon, rt.SrcLat}
		if a, ok := idx.airports[rt.SrcAirport]; ok {
			src = [2]float64{a.Lon, a.Lat}
		}
		pairs = append(pairs, CoordPair{
			SrcAirport: rt.SrcAirport,
			DstAirport: rt.DstAirport,
			Src:        src,
			Dst:        [2]float64{dst.Lon, dst.Lat},
		})
	}
	return pairs, nil
}

// ConnectedCodes returns the destination codes of the filtered routes plus the
// origin itself, the set the scatter layer renders.
func (idx *Index) ConnectedCodes(code string) []string {
	seen := map[string]struct{}{code: {}}
	out := []string{code}
	for _, rt := range idx.RoutesFrom(code) {
		if _, ok := seen[rt.DstAirport]; ok {
			continue
		}
		seen[rt.DstAirport] = struct{}{}
		out = append(out, rt.DstAirport)
	}
	return out
}

// Stats summarizes the filtered route set for one origin. TotalKM is the sum
// of great-circle distances over the resolvable pairs.
func (idx *Index) Stats(code string) RouteStats {
	pairs, _ := idx.ResolvePairs(code, false)
	dests := map[string]struct{}{}
	totalKM := 0.0
	for _, p := range pairs {
		dests[p.DstAirport] = struct{}{}
		totalKM += HaversineKM(p.Src[1], p.Src[0], p.Dst[1], p.Dst[0])
	}
	return RouteStats{
		Routes:       len(idx.RoutesFrom(code)),
		Destinations: len(dests),
		TotalKM:      totalKM,
	}
}

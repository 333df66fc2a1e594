package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flightviz/flightmap/config"
	"github.com/flightviz/flightmap/dataset"
)

const routesCSV = `src_airport,dst_airport,src_lat,src_lon,dst_lat,dst_lon
ATL,JFK,33.6407,-84.4277,40.6413,-73.7781
`

const airportsGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"id": "ATL", "name": "Hartsfield-Jackson Atlanta International Airport"},
     "geometry": {"type": "Point", "coordinates": [-84.4277, 33.6407]}},
    {"type": "Feature", "properties": {"id": "JFK", "name": "John F Kennedy International Airport"},
     "geometry": {"type": "Point", "coordinates": [-73.7781, 40.6413]}}
  ]
}`

func testMapConfig() config.MapConfig {
	return config.MapConfig{
		DefaultAirport: "ATL",
		SourceColor:    []int{0, 255, 128},
		TargetColor:    []int{255, 200, 0},
		ArcWidth:       2,
		PointRadiusM:   5000,
		CenterLat:      33.75,
		CenterLon:      -84.4,
		Zoom:           3,
		StyleURL:       "https://tiles.openfreemap.org/styles/liberty",
	}
}

func loadTestIndex(t *testing.T) *dataset.Index {
	t.Helper()
	dir := t.TempDir()
	routesPath := filepath.Join(dir, "routes.csv")
	airportsPath := filepath.Join(dir, "airports.geojson")
	if err := os.WriteFile(routesPath, []byte(routesCSV), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if err := os.WriteFile(airportsPath, []byte(airportsGeoJSON), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	idx, err := dataset.NewIndexFromConfig(config.DatasetConfig{Routes: routesPath, Airports: airportsPath})
	if err != nil {
		t.Fatalf("Failed to load index: %v", err)
	}
	return idx
}

func TestBuildHTML_EmbedsDataAndStyling(t *testing.T) {
	idx := loadTestIndex(t)
	page, err := NewPage(idx, testMapConfig(), "Global Flight Routes", "ATL")
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	buf, err := BuildHTML(page)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	html := string(buf)

	for _, want := range []string{
		"<title>Global Flight Routes</title>",
		"const ROUTES_DATA = ",
		"const AIRPORTS_GEOJSON = ",
		"const SRC_AIRPORTS = ",
		`"src_airport":"ATL"`,
		`"dst_airport":"JFK"`,
		"John F Kennedy International Airport",
		`currentAirport = "ATL"`,
		"const SOURCE_COLOR = [0,255,128]",
		"const TARGET_COLOR = [255,200,0]",
		"tiles.openfreemap.org/styles/liberty",
		"deck.ArcLayer",
		"deck.ScatterplotLayer",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("generated page missing %q", want)
		}
	}
	t.Logf("✓ Generated page is %d bytes", len(buf))
}

func TestBuildHTML_UnknownAirportStillRenders(t *testing.T) {
	idx := loadTestIndex(t)
	page, err := NewPage(idx, testMapConfig(), "Global Flight Routes", "ZZZ")
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	buf, err := BuildHTML(page)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(string(buf), `currentAirport = "ZZZ"`) {
		t.Error("page should preselect the requested code even when it has no routes")
	}
}

func TestBuildHTML_Deterministic(t *testing.T) {
	idx := loadTestIndex(t)
	page, _ := NewPage(idx, testMapConfig(), "t", "ATL")
	a, err := BuildHTML(page)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	b, _ := BuildHTML(page)
	if string(a) != string(b) {
		t.Error("identical inputs should render identical pages")
	}
}

func TestBuildJSON(t *testing.T) {
	buf := BuildJSON(map[string]int{"routes": 2})
	var decoded map[string]int
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("BuildJSON produced invalid JSON: %v", err)
	}
	if decoded["routes"] != 2 {
		t.Errorf("decoded = %v", decoded)
	}
}

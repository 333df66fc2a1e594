package flightmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flightviz/flightmap/config"
	"github.com/flightviz/flightmap/dataset"
)

const routesCSV = `src_airport,dst_airport,src_lat,src_lon,dst_lat,dst_lon
ATL,JFK,33.6407,-84.4277,40.6413,-73.7781
ATL,XXX,33.6407,-84.4277,0,0
JFK,ATL,40.6413,-73.7781,33.6407,-84.4277
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

func testAppConfig() config.AppConfig {
	return config.AppConfig{
		Server: config.ServerConfig{Port: 8090},
		Map: config.MapConfig{
			DefaultAirport: "ATL",
			SourceColor:    []int{0, 255, 128},
			TargetColor:    []int{255, 200, 0},
			ArcWidth:       2,
			PointRadiusM:   5000,
			CenterLat:      33.75,
			CenterLon:      -84.4,
			Zoom:           3,
			StyleURL:       "https://tiles.openfreemap.org/styles/liberty",
		},
		Output: config.OutputConfig{Path: "index.html", Title: "Global Flight Routes"},
	}
}

package render

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/flightviz/flightmap/config"
	"github.com/flightviz/flightmap/dataset"
)

// Page carries everything the map template needs: embedded data as ready
// JavaScript values plus the styling parameters from configuration.
type Page struct {
	Title           string
	SelectedAirport string

	RoutesData      template.JS
	AirportsGeoJSON template.JS
	SrcAirports     template.JS

	SourceColor template.JS
	TargetColor template.JS
	ArcWidth    float64
	PointRadius float64
	CenterLat   float64
	CenterLon   float64
	Zoom        float64
	StyleURL    string
}

// NewPage assembles a Page from the loaded index and map configuration.
// The full datasets are embedded so the emitted page stays interactive
// (airport dropdown) without any server.
func NewPage(idx *dataset.Index, mapCfg config.MapConfig, title, selected string) (Page, error) {
	// The full route table is embedded, not just the selection: the page
	// filters client-side, the selection only picks the initial airport.
	routesJSON, err := json.Marshal(idx.AllRoutes())
	if err != nil {
		return Page{}, err
	}
	airportsJSON, err := json.Marshal(idx.AirportFeatures())
	if err != nil {
		return Page{}, err
	}
	srcJSON, err := json.Marshal(idx.SourceAirports())
	if err != nil {
		return Page{}, err
	}
	srcColor, _ := json.Marshal(mapCfg.SourceColor)
	dstColor, _ := json.Marshal(mapCfg.TargetColor)
	return Page{
		Title:           title,
		SelectedAirport: selected,
		RoutesData:      template.JS(routesJSON),
		AirportsGeoJSON: template.JS(airportsJSON),
		SrcAirports:     template.JS(srcJSON),
		SourceColor:     template.JS(srcColor),
		TargetColor:     template.JS(dstColor),
		ArcWidth:        mapCfg.ArcWidth,
		PointRadius:     mapCfg.PointRadiusM,
		CenterLat:       mapCfg.CenterLat,
		CenterLon:       mapCfg.CenterLon,
		Zoom:            mapCfg.Zoom,
		StyleURL:        mapCfg.StyleURL,
	}, nil
}

// BuildHTML renders the standalone map page.
func BuildHTML(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var pageTemplate = template.Must(template.New("map").Parse(pageHTML))

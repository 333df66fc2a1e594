package dataset

// Route is one directed flight connection from the routes CSV.
// Coordinates are carried from the source row; the authoritative destination
// position comes from the airport table at join time.
type Route struct {
	SrcAirport string  `json:"src_airport"`
	DstAirport string  `json:"dst_airport"`
	SrcLat     float64 `json:"src_lat"`
	SrcLon     float64 `json:"src_lon"`
	DstLat     float64 `json:"dst_lat"`
	DstLon     float64 `json:"dst_lon"`
}

// Airport is one entry of the airport reference table.
type Airport struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// CoordPair is one resolved origin/destination arc, ready for rendering.
type CoordPair struct {
	SrcAirport string     `json:"src_airport"`
	DstAirport string     `json:"dst_airport"`
	Src        [2]float64 `json:"src"` // [lon, lat]
	Dst        [2]float64 `json:"dst"` // [lon, lat]
}

// RouteStats summarizes the filtered route set for one origin.
type RouteStats struct {
	Routes       int     `json:"routes"`
	Destinations int     `json:"destinations"`
	TotalKM      float64 `json:"total_km"`
}

// FeatureCollection follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry represents the geometry of a feature. Only Point geometries carry
// airport positions; Coordinates is [lon, lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

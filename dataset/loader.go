package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// openSource returns a reader for either an http(s) URL or a local file path.
func openSource(location string) (io.ReadCloser, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		resp, err := http.Get(location)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %s", location, resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(location)
}

func (idx *Index) loadRoutes(location string) error {
	r, err := openSource(location)
	if err != nil {
		return err
	}
	defer r.Close()
	return idx.consumeRoutesCSV(r)
}

func (idx *Index) consumeRoutesCSV(r io.Reader) error {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	col := func(name string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	src := col("src_airport")
	dst := col("dst_airport")
	srcLat := col("src_lat")
	srcLon := col("src_lon")
	dstLat := col("dst_lat")
	dstLon := col("dst_lon")
	if src < 0 || dst < 0 {
		return fmt.Errorf("routes CSV missing src_airport/dst_airport columns")
	}
	get := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return row[i]
		}
		return ""
	}
	for _, row := range rec[1:] {
		sc := strings.TrimSpace(get(row, src))
		dc := strings.TrimSpace(get(row, dst))
		if sc == "" || dc == "" {
			continue
		}
		rt := Route{SrcAirport: sc, DstAirport: dc}
		rt.SrcLat, _ = strconv.ParseFloat(get(row, srcLat), 64)
		rt.SrcLon, _ = strconv.ParseFloat(get(row, srcLon), 64)
		rt.DstLat, _ = strconv.ParseFloat(get(row, dstLat), 64)
		rt.DstLon, _ = strconv.ParseFloat(get(row, dstLon), 64)
		idx.routes = append(idx.routes, rt)
	}
	return nil
}

func (idx *Index) loadAirports(location string) error {
	r, err := openSource(location)
	if err != nil {
		return err
	}
	defer r.Close()
	return idx.consumeAirportsGeoJSON(r)
}

func (idx *Index) consumeAirportsGeoJSON(r io.Reader) error {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return err
	}
	for _, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			continue
		}
		code := propString(f.Properties, "id")
		if code == "" {
			continue
		}
		idx.airports[code] = Airport{
			Code: code,
			Name: propString(f.Properties, "name"),
			Lon:  f.Geometry.Coordinates[0],
			Lat:  f.Geometry.Coordinates[1],
		}
	}
	idx.airportsFC = &fc
	return nil
}

// propString reads a string-valued property, tolerating absent keys and
// numeric ids the way loosely typed GeoJSON sources encode them.
func propString(props map[string]any, key string) string {
	switch t := props[key].(type) {
	case string:
		return t
	case float64:
		return strconv.Itoa(int(t))
	case json.Number:
		return t.String()
	}
	return ""
}

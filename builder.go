package flightmap

import (
	"log"
	"os"

	"github.com/flightviz/flightmap/config"
	"github.com/flightviz/flightmap/dataset"
	"github.com/flightviz/flightmap/render"
)

// GenerateMap renders the map page for the selected airport and writes it to
// outPath. The page is built fully in memory first so a render failure never
// leaves a partial artifact behind.
func GenerateMap(cfg config.AppConfig, idx *dataset.Index, airport, outPath string) error {
	// Surface unresolvable destinations before rendering when strict mode
	// is on; the default is the silent drop the datasets were built around.
	if _, err := idx.ResolvePairs(airport, cfg.Map.StrictDestinations); err != nil {
		return err
	}
	page, err := render.NewPage(idx, cfg.Map, cfg.Output.Title, airport)
	if err != nil {
		return err
	}
	buf, err := render.BuildHTML(page)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf, 0644); err != nil {
		return err
	}
	log.Printf("generated %s (%.2f MB)", outPath, float64(len(buf))/1024/1024)
	return nil
}

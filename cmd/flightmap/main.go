package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/flightviz/flightmap"
	"github.com/flightviz/flightmap/config"
	"github.com/flightviz/flightmap/dataset"
	"github.com/flightviz/flightmap/render"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	airport := flag.String("airport", "", "source airport code (overrides config defaultAirport)")
	format := flag.String("format", "html", "html|json")
	out := flag.String("out", "", "output path (overrides config output.path; '-' for stdout with -format=json)")
	profile := flag.String("profile", "", "dataset profile name from config.profiles[]")
	routes := flag.String("routes", "", "routes CSV URL or path (overrides config)")
	airports := flag.String("airports", "", "airports GeoJSON URL or path (overrides config)")
	strict := flag.Bool("strict", false, "error on destinations missing from the airport table")
	indexCache := flag.String("indexCache", "", "gob snapshot path; loaded if present, written after a fresh load")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	if *strict {
		config.Config.Map.StrictDestinations = true
	}

	dsCfg := config.SelectDatasets(*profile)
	if *routes != "" {
		dsCfg.Routes = *routes
	}
	if *airports != "" {
		dsCfg.Airports = *airports
	}

	idx := loadIndex(dsCfg, *indexCache)
	log.Printf("loaded %d routes, %d airports", idx.RouteCount(), idx.AirportCount())

	code := *airport
	if code == "" {
		code = config.Config.Map.DefaultAirport
	}
	code, err := lib.NormalizeAirportCode(code)
	if err != nil {
		log.Fatalf("invalid airport code: %v", err)
	}

	switch *mode {
	case "oneshot":
		switch *format {
		case "html":
			outPath := *out
			if outPath == "" {
				outPath = config.Config.Output.Path
			}
			if err := lib.GenerateMap(config.Config, idx, code, outPath); err != nil {
				log.Fatalf("generate map: %v", err)
			}
		case "json":
			pairs, err := idx.ResolvePairs(code, config.Config.Map.StrictDestinations)
			if err != nil {
				log.Fatalf("resolve routes: %v", err)
			}
			buf := render.BuildJSON(lib.RoutesResponse{
				Airport: code,
				Name:    idx.AirportName(code),
				Pairs:   pairs,
				Stats:   idx.Stats(code),
			})
			if *out != "" && *out != "-" {
				if err := os.WriteFile(*out, buf, 0644); err != nil {
					log.Fatalf("write output: %v", err)
				}
			} else {
				fmt.Println(string(buf))
			}
		default:
			panic("unknown format")
		}
	case "serve":
		lib.StartServer(idx)
		lib.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}

// loadIndex loads the datasets, going through the gob snapshot when one is
// configured and readable.
func loadIndex(dsCfg config.DatasetConfig, cachePath string) *dataset.Index {
	if cachePath != "" {
		if idx, err := dataset.DeserializeIndexFromFile(cachePath); err == nil {
			log.Printf("loaded index snapshot from %s", cachePath)
			return idx
		}
	}
	idx, err := dataset.NewIndexFromConfig(dsCfg)
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}
	if cachePath != "" {
		if err := dataset.SerializeIndexToFile(idx, cachePath); err != nil {
			log.Printf("snapshot write failed: %v", err)
		}
	}
	return idx
}

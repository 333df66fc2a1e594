package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default dataset release URLs (opengeos world datasets)
const (
	DefaultRoutesURL   = "https://github.com/opengeos/datasets/releases/download/world/airport_routes.csv"
	DefaultAirportsURL = "https://github.com/opengeos/datasets/releases/download/world/airports.geojson"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./golang/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Map); err != nil {
		return err
	}
	// profiles are optional; if present validate each
	for _, p := range cfg.Profiles {
		if err := v.Struct(p); err != nil {
			return err
		}
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Datasets.Routes == "" {
		cfg.Datasets.Routes = DefaultRoutesURL
	}
	if cfg.Datasets.Airports == "" {
		cfg.Datasets.Airports = DefaultAirportsURL
	}
	if cfg.Map.DefaultAirport == "" {
		cfg.Map.DefaultAirport = "ATL"
	}
	if len(cfg.Map.SourceColor) == 0 {
		cfg.Map.SourceColor = []int{0, 255, 128}
	}
	if len(cfg.Map.TargetColor) == 0 {
		cfg.Map.TargetColor = []int{255, 200, 0}
	}
	if cfg.Map.ArcWidth == 0 {
		cfg.Map.ArcWidth = 2
	}
	if cfg.Map.PointRadiusM == 0 {
		cfg.Map.PointRadiusM = 5000
	}
	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLon == 0 {
		cfg.Map.CenterLat = 33.75
		cfg.Map.CenterLon = -84.4
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 3
	}
	if cfg.Map.StyleURL == "" {
		cfg.Map.StyleURL = "https://tiles.openfreemap.org/styles/liberty"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "index.html"
	}
	if cfg.Output.Title == "" {
		cfg.Output.Title = "Global Flight Routes"
	}
}

// SelectDatasets chooses a dataset profile by name; fallback to first; if none, use top-level datasets.
func SelectDatasets(name string) DatasetConfig {
	if name != "" {
		for _, p := range Config.Profiles {
			if p.Name == name {
				return p.Datasets
			}
		}
	}
	if len(Config.Profiles) > 0 {
		return Config.Profiles[0].Datasets
	}
	return Config.Datasets
}

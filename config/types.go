package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DatasetConfig points at the two source datasets. Each entry is either an
// http(s) URL or a local file path.
type DatasetConfig struct {
	Routes   string `yaml:"routes" validate:"omitempty"`
	Airports string `yaml:"airports" validate:"omitempty"`
}

// MapConfig contains the styling parameters handed to the map page
type MapConfig struct {
	DefaultAirport     string  `yaml:"defaultAirport" validate:"omitempty,len=3,alpha"`
	SourceColor        []int   `yaml:"sourceColor" validate:"omitempty,min=3,max=4,dive,gte=0,lte=255"`
	TargetColor        []int   `yaml:"targetColor" validate:"omitempty,min=3,max=4,dive,gte=0,lte=255"`
	ArcWidth           float64 `yaml:"arcWidth" validate:"gte=0"`
	PointRadiusM       float64 `yaml:"pointRadiusMeters" validate:"gte=0"`
	CenterLat          float64 `yaml:"centerLat" validate:"gte=-90,lte=90"`
	CenterLon          float64 `yaml:"centerLon" validate:"gte=-180,lte=180"`
	Zoom               float64 `yaml:"zoom" validate:"gte=0,lte=24"`
	StyleURL           string  `yaml:"styleURL" validate:"omitempty,url"`
	StrictDestinations bool    `yaml:"strictDestinations"`
}

// OutputConfig controls the generated artifact
type OutputConfig struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// Profile represents a named pair of route/airport datasets
type Profile struct {
	Name     string        `yaml:"name" validate:"required"`
	Datasets DatasetConfig `yaml:"datasets" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig  `yaml:"server" validate:"required"`
	Datasets DatasetConfig `yaml:"datasets"`
	Map      MapConfig     `yaml:"map"`
	Output   OutputConfig  `yaml:"output"`
	Profiles []Profile     `yaml:"profiles"`
}

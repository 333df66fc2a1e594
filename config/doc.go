// Package config loads the application configuration from config.yml and
// validates it with go-playground/validator.
//
// Configuration covers four areas:
//   - server: HTTP port for serve mode
//   - datasets: locations of the routes CSV and airports GeoJSON (URL or path)
//   - map: styling parameters injected into the generated page
//   - output: path and title of the generated HTML artifact
//
// Named dataset profiles (profiles[]) allow switching between data sources
// without editing the top-level dataset entries.
package config

// Package render emits the map artifacts: the standalone interactive HTML
// page (MapLibre GL + deck.gl with embedded data) and JSON payloads for the
// machine-readable API.
package render

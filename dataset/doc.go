// Package dataset loads and indexes the two source datasets: the airport
// routes CSV and the airports GeoJSON reference table.
//
// Columns in the routes CSV are resolved from the header by name, so column
// order does not matter and extra columns are ignored. Airport features must
// be Point geometries carrying an "id" property (the airport code); anything
// else is skipped.
//
// The Index is loaded once per run and is immutable afterwards, which makes
// read access safe from concurrent request handlers. A gob snapshot of the
// index can be written to disk to skip re-fetching on subsequent runs.
package dataset

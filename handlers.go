package flightmap

import (
	"net/http"

	"github.com/flightviz/flightmap/config"
)

// airportParam resolves the airport query parameter, falling back to the
// configured default when absent.
func airportParam(r *http.Request) (string, error) {
	raw := r.URL.Query().Get("airport")
	if raw == "" {
		raw = config.Config.Map.DefaultAirport
	}
	return NormalizeAirportCode(raw)
}

func handleMap(w http.ResponseWriter, r *http.Request) {
	code, err := airportParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Unknown codes still get a page; the arc set is just empty.
	buf, err := mapCache.GetMapHTML(code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf)
}

func handleRoutesJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	code, err := airportParam(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("routes", err.Error()))
		return
	}
	// ?requireOrigin=true turns the empty-result case into a 404 so API
	// clients can distinguish "no such origin" from "origin with no pairs".
	if r.URL.Query().Get("requireOrigin") == "true" {
		if err := ensureOriginExists(code, mapCache.idx); err != nil {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write(buildErrorPayload("routes", err.Error()))
			return
		}
	}
	buf, err := mapCache.GetRoutesJSON(code)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(buildErrorPayload("routes", err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleAirportsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(mapCache.GetAirportsJSON())
}

package flightmap

import (
	"github.com/flightviz/flightmap/dataset"
	"github.com/flightviz/flightmap/render"
)

// RoutesResponse is the machine-readable route payload for one origin.
type RoutesResponse struct {
	Airport string              `json:"airport"`
	Name    string              `json:"name"`
	Pairs   []dataset.CoordPair `json:"pairs"`
	Stats   dataset.RouteStats  `json:"stats"`
}

// AirportsResponse lists the origins the dropdown (and API callers) can select.
type AirportsResponse struct {
	SourceAirports []string `json:"source_airports"`
}

type errorBody struct {
	Call    string `json:"call"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func buildErrorPayload(call, msg string) []byte {
	return render.BuildJSON(errorResponse{Error: errorBody{Call: call, Message: msg}})
}

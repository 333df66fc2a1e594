package flightmap

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Routes   int    `json:"routes"`
	Airports int    `json:"airports"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok"}
	if mapCache != nil {
		resp.Routes = mapCache.idx.RouteCount()
		resp.Airports = mapCache.idx.AirportCount()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

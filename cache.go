package flightmap

import (
	"bytes"
	"sync"

	"github.com/flightviz/flightmap/config"
	"github.com/flightviz/flightmap/dataset"
	"github.com/flightviz/flightmap/render"
)

// MapCache renders map pages and JSON payloads on demand and memoizes the
// results. The underlying index is immutable, so an entry never goes stale
// within a run. One MapCache is shared by all handler goroutines, so the
// memo map is guarded by mu.
type MapCache struct {
	idx           *dataset.Index
	cfg           config.AppConfig
	mu            sync.RWMutex
	responseCache map[string][]byte
}

func NewMapCache(idx *dataset.Index, cfg config.AppConfig) *MapCache {
	return &MapCache{idx: idx, cfg: cfg, responseCache: map[string][]byte{}}
}

func (mc *MapCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (mc *MapCache) cached(key string) ([]byte, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	buf, ok := mc.responseCache[key]
	return buf, ok
}

func (mc *MapCache) store(key string, buf []byte) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.responseCache[key] = buf
}

// GetMapHTML returns the standalone map page preselecting the given airport.
// An airport with no routes still renders a page with an empty arc set.
func (mc *MapCache) GetMapHTML(airport string) ([]byte, error) {
	key := mc.memoKey("map", "html", airport)
	if buf, ok := mc.cached(key); ok {
		return buf, nil
	}
	if mc.cfg.Map.StrictDestinations {
		if _, err := mc.idx.ResolvePairs(airport, true); err != nil {
			return nil, err
		}
	}
	page, err := render.NewPage(mc.idx, mc.cfg.Map, mc.cfg.Output.Title, airport)
	if err != nil {
		return nil, err
	}
	buf, err := render.BuildHTML(page)
	if err != nil {
		return nil, err
	}
	mc.store(key, buf)
	return buf, nil
}

// GetRoutesJSON returns the resolved coordinate pairs for the given airport.
func (mc *MapCache) GetRoutesJSON(airport string) ([]byte, error) {
	key := mc.memoKey("routes", "json", airport)
	if buf, ok := mc.cached(key); ok {
		return buf, nil
	}
	pairs, err := mc.idx.ResolvePairs(airport, mc.cfg.Map.StrictDestinations)
	if err != nil {
		return nil, err
	}
	res := RoutesResponse{
		Airport: airport,
		Name:    mc.idx.AirportName(airport),
		Pairs:   pairs,
		Stats:   mc.idx.Stats(airport),
	}
	buf := render.BuildJSON(res)
	mc.store(key, buf)
	return buf, nil
}

// GetAirportsJSON returns the sorted source airport list.
func (mc *MapCache) GetAirportsJSON() []byte {
	key := mc.memoKey("airports", "json")
	if buf, ok := mc.cached(key); ok {
		return buf
	}
	buf := render.BuildJSON(AirportsResponse{SourceAirports: mc.idx.SourceAirports()})
	mc.store(key, buf)
	return buf
}

// Package geodata ships the simplified region boundary geometry served to
// map frontends.  The geometry is display-only; nothing downstream computes
// on it.
package geodata

import (
	_ "embed"
	"encoding/json"

	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

//go:embed data/india_states.geojson
var embeddedBoundaries []byte

// FeatureCollection is the minimal GeoJSON envelope the provider validates.
type FeatureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		Type       string `json:"type"`
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
		Geometry json.RawMessage `json:"geometry"`
	} `json:"features"`
}

// Provider serves the embedded boundary document.
type Provider struct {
	raw []byte
}

// NewProvider validates the embedded document once at startup.
func NewProvider() (*Provider, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(embeddedBoundaries, &fc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetCorrupt, "decoding boundary geometry")
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) == 0 {
		return nil, errors.New(errors.ErrCodeDatasetCorrupt, "boundary document is not a populated FeatureCollection")
	}
	return &Provider{raw: embeddedBoundaries}, nil
}

// GeoJSON returns the raw boundary document for direct serving.
func (p *Provider) GeoJSON() []byte {
	return p.raw
}

// RegionNames lists the region names present in the boundary document.
func (p *Provider) RegionNames() ([]string, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(p.raw, &fc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetCorrupt, "decoding boundary geometry")
	}
	names := make([]string, len(fc.Features))
	for i, f := range fc.Features {
		names[i] = f.Properties.Name
	}
	return names, nil
}

// Package dataset provides the RegionRepository implementations: an embedded
// snapshot compiled into the binary and a Postgres-backed repository for
// deployments that manage the dataset externally.
package dataset

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

//go:embed data/regions.json
var embeddedRegions []byte

// SourceEmbedded labels the compiled-in dataset in logs and metrics.
const SourceEmbedded = "embedded"

// EmbeddedRepository serves the installed-capacity snapshot compiled into
// the binary.  It needs no external services and is the default source.
type EmbeddedRepository struct{}

// NewEmbeddedRepository returns the embedded repository.
func NewEmbeddedRepository() *EmbeddedRepository {
	return &EmbeddedRepository{}
}

// Load decodes and validates the embedded dataset.
func (r *EmbeddedRepository) Load(_ context.Context) ([]region.Region, error) {
	regions, err := DecodeRegions(embeddedRegions)
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// Source identifies this repository in logs and metrics.
func (r *EmbeddedRepository) Source() string { return SourceEmbedded }

// DecodeRegions parses a JSON region array and validates it.
func DecodeRegions(raw []byte) ([]region.Region, error) {
	var regions []region.Region
	if err := json.Unmarshal(raw, &regions); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetCorrupt, "decoding region dataset")
	}
	if err := region.ValidateSet(regions); err != nil {
		return nil, err
	}
	return regions, nil
}

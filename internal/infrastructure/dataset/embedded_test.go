package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

func TestEmbeddedRepository_Load(t *testing.T) {
	repo := NewEmbeddedRepository()
	regions, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, regions)
	assert.Equal(t, SourceEmbedded, repo.Source())

	// The embedded snapshot must itself satisfy the dataset invariants.
	assert.NoError(t, region.ValidateSet(regions))

	idx := region.FindByName(regions, "Rajasthan")
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, regions[idx].Geography.AridDesert)
	assert.Greater(t, regions[idx].SolarMW, 10000.0)

	idx = region.FindByName(regions, "Himachal Pradesh")
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, regions[idx].Geography.Mountain)
	assert.Greater(t, regions[idx].LargeHydroMW, regions[idx].SmallHydroMW)
}

func TestDecodeRegions_Corrupt(t *testing.T) {
	_, err := DecodeRegions([]byte(`{not json`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDatasetCorrupt, errors.GetCode(err))
}

func TestDecodeRegions_InvalidDataset(t *testing.T) {
	_, err := DecodeRegions([]byte(`[]`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmptyDataset, errors.GetCode(err))

	_, err = DecodeRegions([]byte(`[{"name":"A","solar_mw":-5}]`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNegativeCapacity, errors.GetCode(err))
}

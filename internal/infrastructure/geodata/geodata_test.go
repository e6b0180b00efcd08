package geodata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/dataset"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	assert.NotEmpty(t, p.GeoJSON())
}

func TestProvider_CoversEmbeddedDataset(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	names, err := p.RegionNames()
	require.NoError(t, err)

	byName := make(map[string]bool, len(names))
	for _, n := range names {
		byName[n] = true
	}

	regions, err := dataset.NewEmbeddedRepository().Load(context.Background())
	require.NoError(t, err)
	for _, r := range regions {
		assert.True(t, byName[r.Name], "no boundary for region %s", r.Name)
	}
}

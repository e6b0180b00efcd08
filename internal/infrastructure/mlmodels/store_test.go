package mlmodels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/insight"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/dataset"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

func TestNewStore_ParsesEmbeddedArtifacts(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	assert.NotEmpty(t, s.clusterNames)
	assert.Greater(t, s.silhouette, 0.0)
}

func TestStore_CoversEmbeddedDataset(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	regions, err := dataset.NewEmbeddedRepository().Load(context.Background())
	require.NoError(t, err)
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}

	// Every region in the shipped dataset must have shipped artifacts, and
	// the outputs must integrate cleanly.
	artifacts, err := insight.Collect(names, s, s, s, s)
	require.NoError(t, err)
	insights, err := insight.Integrate(names, artifacts)
	require.NoError(t, err)
	require.Len(t, insights, len(names))

	for _, ins := range insights {
		assert.NotEmpty(t, ins.ClusterName)
		assert.GreaterOrEqual(t, ins.MembershipProbability, 0.0)
		assert.LessOrEqual(t, ins.MembershipProbability, 1.0)
	}
}

func TestStore_OrderFollowsRequest(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	out, err := s.Project([]string{"Gujarat", "Rajasthan"})
	require.NoError(t, err)
	flipped, err := s.Project([]string{"Rajasthan", "Gujarat"})
	require.NoError(t, err)
	assert.Equal(t, out.Coordinates[0], flipped.Coordinates[1])
	assert.Equal(t, out.Coordinates[1], flipped.Coordinates[0])
}

func TestStore_UnknownRegion(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	_, err = s.Clusters([]string{"Atlantis"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeModelUnavailable, errors.GetCode(err))
}

func TestNewStoreFrom_Invalid(t *testing.T) {
	_, err := newStoreFrom([]byte(`{bad`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeModelUnavailable, errors.GetCode(err))

	_, err = newStoreFrom([]byte(`{"explained_variance":[0.5],"cluster_names":{},"loadings":{},"regions":{}}`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeShapeMismatch, errors.GetCode(err))

	_, err = newStoreFrom([]byte(`{"explained_variance":[0.5,0.2],"cluster_names":{"x":"bad"},"loadings":{},"regions":{}}`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeModelUnavailable, errors.GetCode(err))
}

package readiness

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/insight"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scenario"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

type fakeRepo struct {
	regions []region.Region
	err     error
	loads   atomic.Int32
}

func (f *fakeRepo) Load(_ context.Context) ([]region.Region, error) {
	f.loads.Add(1)
	return f.regions, f.err
}

func (f *fakeRepo) Source() string { return "fake" }

type fakeModels struct{ n int }

func (f fakeModels) Clusters(names []string) (insight.ClusterOutput, error) {
	labels := make([]int, len(names))
	for i := range labels {
		labels[i] = i % 2
	}
	return insight.ClusterOutput{
		Labels:     labels,
		Names:      map[int]string{0: "Leaders", 1: "Emerging"},
		Silhouette: 0.6,
	}, nil
}

func (f fakeModels) Outliers(names []string) (insight.OutlierOutput, error) {
	flags := make([]bool, len(names))
	scores := make([]float64, len(names))
	if len(flags) > 0 {
		flags[len(flags)-1] = true
		scores[len(scores)-1] = 0.93
	}
	return insight.OutlierOutput{Flags: flags, Scores: scores}, nil
}

func (f fakeModels) Project(names []string) (insight.ProjectionOutput, error) {
	coords := make([][2]float64, len(names))
	for i := range coords {
		coords[i] = [2]float64{float64(i), -float64(i)}
	}
	return insight.ProjectionOutput{
		Coordinates:       coords,
		ExplainedVariance: [2]float64{0.7, 0.2},
		Loadings: [2][region.NumCategories]float64{
			{0.5, 0.5, 0.5, 0.5},
			{0.7, -0.1, -0.1, -0.1},
		},
	}, nil
}

func (f fakeModels) Memberships(names []string) (insight.MembershipOutput, error) {
	labels := make([]string, len(names))
	probs := make([]float64, len(names))
	for i := range labels {
		labels[i] = "high"
		probs[i] = 0.9
	}
	return insight.MembershipOutput{Labels: labels, Probabilities: probs}, nil
}

func testService(t *testing.T, repo RegionRepository) *Service {
	t.Helper()
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "test"}, logging.NewNopLogger())
	require.NoError(t, err)

	m := fakeModels{}
	svc, err := NewService(repo,
		Models{Cluster: m, Outlier: m, Projection: m, Membership: m},
		scoring.DefaultWeights(), logging.NewNopLogger(), prometheus.NewAppMetrics(collector))
	require.NoError(t, err)
	return svc
}

func fixtureRegions() []region.Region {
	return []region.Region{
		{Name: "Alpha", SolarMW: 100, WindMW: 200, SmallHydroMW: 50, BioMW: 40, LargeHydroMW: 500,
			Geography: region.Geography{Coastal: true}},
		{Name: "Beta", SolarMW: 200, WindMW: 50, SmallHydroMW: 100, BioMW: 100},
		{Name: "Gamma"},
	}
}

func TestSnapshot_BuildsOnce(t *testing.T) {
	repo := &fakeRepo{regions: fixtureRegions()}
	svc := testService(t, repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := svc.Snapshot(ctx)
			assert.NoError(t, err)
			assert.NotNil(t, snap)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), repo.loads.Load())
}

func TestSnapshot_LoadErrorCached(t *testing.T) {
	repo := &fakeRepo{err: errors.New(errors.ErrCodeDatabaseError, "connection refused")}
	svc := testService(t, repo)

	_, err := svc.Snapshot(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDatasetUnavailable, errors.GetCode(err))

	_, err2 := svc.Snapshot(context.Background())
	assert.Equal(t, err, err2)
	assert.Equal(t, int32(1), repo.loads.Load())
}

func TestListRegions_RankAscending(t *testing.T) {
	svc := testService(t, &fakeRepo{regions: fixtureRegions()})
	views, err := svc.ListRegions(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	for i := range views {
		assert.Equal(t, i+1, views[i].Rank)
	}
	assert.Equal(t, "Gamma", views[2].Name)
	assert.Equal(t, 0.0, views[2].Scores.Final)
}

func TestRegionDetail(t *testing.T) {
	svc := testService(t, &fakeRepo{regions: fixtureRegions()})
	detail, err := svc.RegionDetail(context.Background(), "Alpha")
	require.NoError(t, err)

	assert.Equal(t, "Alpha", detail.Name)
	assert.Len(t, detail.Recommendations, region.NumCategories)
	assert.Equal(t, 890.0, detail.Capacity.TotalMW)
	assert.Equal(t, "Leaders", detail.Insight.ClusterName)

	_, err = svc.RegionDetail(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRegionNotFound, errors.GetCode(err))
}

func TestClusterSummary(t *testing.T) {
	svc := testService(t, &fakeRepo{regions: fixtureRegions()})
	summary, err := svc.ClusterSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Clusters, 2)
	assert.Equal(t, "Leaders", summary.Clusters[0].Name)
	assert.ElementsMatch(t, []string{"Alpha", "Gamma"}, summary.Clusters[0].Members)
	assert.ElementsMatch(t, []string{"Beta"}, summary.Clusters[1].Members)
	assert.Equal(t, []string{"Gamma"}, summary.Outliers)
	assert.Equal(t, 0.6, summary.Silhouette)

	// Beta is its cluster's only member, so means equal its own scores.
	assert.InDelta(t, summary.Clusters[1].MeanFinalScore, summary.Clusters[1].MeanScores.Final, 1e-9)
}

func TestProjection(t *testing.T) {
	svc := testService(t, &fakeRepo{regions: fixtureRegions()})
	proj, err := svc.Projection(context.Background())
	require.NoError(t, err)

	require.Len(t, proj.Points, 3)
	assert.Equal(t, "Alpha", proj.Points[0].Region)
	assert.Equal(t, 1.0, proj.Points[1].X)
	assert.True(t, proj.Points[2].Outlier)
	assert.Equal(t, []float64{0.7, 0.2}, proj.ExplainedVariance)
	require.Len(t, proj.Axes, 2)
	assert.Equal(t, "pc1", proj.Axes[0].Axis)
	assert.Equal(t, 0.7, proj.Axes[1].Loadings["solar"])
}

func TestSummary(t *testing.T) {
	svc := testService(t, &fakeRepo{regions: fixtureRegions()})
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RegionCount)
	assert.Equal(t, 300.0, summary.TotalCapacity.SolarMW)
	assert.Equal(t, 500.0, summary.TotalCapacity.LargeHydroMW)
	// Fewer regions than the window: both ends carry everyone, best first
	// at the top and worst last at the bottom.
	require.Len(t, summary.Top, 3)
	require.Len(t, summary.Bottom, 3)
	assert.Equal(t, 1, summary.Top[0].Rank)
	assert.Equal(t, 3, summary.Bottom[2].Rank)
	assert.Equal(t, "fake", summary.Source)
}

func TestScenario_ThroughService(t *testing.T) {
	svc := testService(t, &fakeRepo{regions: fixtureRegions()})
	res, err := svc.Scenario(context.Background(), scenario.Request{
		Region: "Gamma",
		Mode:   scenario.ModeMW,
		Deltas: [region.NumCategories]float64{200, 0, 0, 0},
	})
	require.NoError(t, err)
	assert.Greater(t, res.NewScore, res.BaseScore)
	assert.GreaterOrEqual(t, res.DeltaRank, 0)

	// Snapshot is untouched by the evaluation.
	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap.Scored[2].Region.SolarMW)

	_, err = svc.Scenario(context.Background(), scenario.Request{Region: "Nowhere", Mode: scenario.ModeMW})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRegionNotFound, errors.GetCode(err))
}

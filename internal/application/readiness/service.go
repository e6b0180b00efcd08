package readiness

import (
	"context"
	"sort"
	"sync"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/insight"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/recommend"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scenario"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

// topBottomSize is how many regions the summary surface lists at each end
// of the table.
const topBottomSize = 5

// RegionRepository loads the raw capacity dataset.
type RegionRepository interface {
	Load(ctx context.Context) ([]region.Region, error)
	Source() string
}

// Models bundles the four external model providers consumed at snapshot
// build time.
type Models struct {
	Cluster    insight.ClusterModel
	Outlier    insight.OutlierModel
	Projection insight.ProjectionModel
	Membership insight.MembershipModel
}

// Service owns the lazily built snapshot and serves every read and scenario
// operation from it.  All methods are safe for concurrent use.
type Service struct {
	repo    RegionRepository
	models  Models
	weights scoring.Weights
	engine  *scenario.Engine
	logger  logging.Logger
	metrics *prometheus.AppMetrics

	once sync.Once
	snap *Snapshot
	err  error
}

// NewService wires the service.  Weights are validated here so a
// misconfigured deployment fails at startup, not on first request.
func NewService(repo RegionRepository, models Models, weights scoring.Weights,
	logger logging.Logger, metrics *prometheus.AppMetrics,
) (*Service, error) {
	engine, err := scenario.NewEngine(weights)
	if err != nil {
		return nil, err
	}
	return &Service{
		repo:    repo,
		models:  models,
		weights: weights,
		engine:  engine,
		logger:  logger.Named("readiness"),
		metrics: metrics,
	}, nil
}

// Snapshot returns the baseline, building it on first call.  The build runs
// exactly once even under concurrent first access; a failed build is cached
// and returned to every caller.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.once.Do(func() {
		timer := prometheus.NewTimer(s.metrics.SnapshotBuildDuration.WithLabelValues(s.repo.Source()))
		defer timer.ObserveDuration()

		regions, err := s.repo.Load(ctx)
		if err != nil {
			s.err = errors.Wrap(err, errors.ErrCodeDatasetUnavailable, "loading region dataset")
			s.logger.Error("snapshot build failed", logging.Err(s.err))
			return
		}
		snap, err := buildSnapshot(regions, s.weights, s.repo.Source(),
			s.models.Cluster, s.models.Outlier, s.models.Projection, s.models.Membership)
		if err != nil {
			s.err = err
			s.logger.Error("snapshot build failed", logging.Err(err))
			return
		}
		s.snap = snap

		s.metrics.SnapshotBuiltAt.WithLabelValues(snap.Source).Set(float64(snap.BuiltAt.Unix()))
		s.metrics.SnapshotRegions.WithLabelValues(snap.Source).Set(float64(snap.RegionCount()))
		s.logger.Info("snapshot built",
			logging.String("source", snap.Source),
			logging.Int("regions", snap.RegionCount()),
			logging.Float64("mean_score", scoring.MeanFinalScore(snap.Scored)),
		)
	})
	return s.snap, s.err
}

// Ready reports whether the snapshot has been built successfully.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.Snapshot(ctx)
	return err
}

// ListRegions returns every region with full scored, capacity, and insight
// fields, ordered by rank ascending.
func (s *Service) ListRegions(ctx context.Context) ([]RegionView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]RegionView, len(snap.Scored))
	for i, rs := range snap.Scored {
		views[i] = regionView(rs, snap.Insights[i])
	}
	sort.Slice(views, func(a, b int) bool { return views[a].Rank < views[b].Rank })
	return views, nil
}

// RegionDetail returns one region's full detail including its advisory list.
func (s *Service) RegionDetail(ctx context.Context, name string) (*RegionDetailView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	idx := snap.indexOf(name)
	if idx < 0 {
		s.metrics.RecommendationsTotal.WithLabelValues("not_found").Inc()
		return nil, errors.RegionNotFound(name)
	}
	rs := snap.Scored[idx]
	detail := &RegionDetailView{
		RegionView:      regionView(rs, snap.Insights[idx]),
		Percentile:      recommend.Percentile(rs.Rank, snap.RegionCount()),
		Recommendations: recommend.ForRegion(rs, snap.RegionCount()),
	}
	s.metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	return detail, nil
}

// ClusterSummary rolls the snapshot up per cluster.
func (s *Service) ClusterSummary(ctx context.Context) (*ClusterSummaryView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	type accum struct {
		members []string
		sums    ScoresView
	}
	byCluster := map[int]*accum{}
	var outliers []string
	for i, rs := range snap.Scored {
		ins := snap.Insights[i]
		a, ok := byCluster[ins.ClusterID]
		if !ok {
			a = &accum{}
			byCluster[ins.ClusterID] = a
		}
		a.members = append(a.members, rs.Region.Name)
		a.sums.Solar += rs.CategoryScore(region.Solar)
		a.sums.Wind += rs.CategoryScore(region.Wind)
		a.sums.SmallHydro += rs.CategoryScore(region.SmallHydro)
		a.sums.Bio += rs.CategoryScore(region.Bio)
		a.sums.Final += rs.FinalScore
		if ins.Outlier {
			outliers = append(outliers, rs.Region.Name)
		}
	}

	ids := make([]int, 0, len(byCluster))
	for id := range byCluster {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	view := &ClusterSummaryView{
		Silhouette:    snap.Artifacts.Clusters.Silhouette,
		DaviesBouldin: snap.Artifacts.Clusters.DaviesBouldin,
		Outliers:      outliers,
	}
	for _, id := range ids {
		a := byCluster[id]
		n := float64(len(a.members))
		view.Clusters = append(view.Clusters, ClusterView{
			ID:      id,
			Name:    snap.Artifacts.Clusters.Names[id],
			Members: a.members,
			MeanScores: ScoresView{
				Solar:      a.sums.Solar / n,
				Wind:       a.sums.Wind / n,
				SmallHydro: a.sums.SmallHydro / n,
				Bio:        a.sums.Bio / n,
				Final:      a.sums.Final / n,
			},
			MeanFinalScore: a.sums.Final / n,
		})
	}
	return view, nil
}

// Projection returns the 2-D projection surface.
func (s *Service) Projection(ctx context.Context) (*ProjectionView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := &ProjectionView{
		Points: make([]ProjectionPoint, len(snap.Scored)),
		ExplainedVariance: []float64{
			snap.Artifacts.Projection.ExplainedVariance[0],
			snap.Artifacts.Projection.ExplainedVariance[1],
		},
	}
	for i, rs := range snap.Scored {
		ins := snap.Insights[i]
		view.Points[i] = ProjectionPoint{
			Region:      rs.Region.Name,
			X:           ins.ProjectionX,
			Y:           ins.ProjectionY,
			ClusterID:   ins.ClusterID,
			ClusterName: ins.ClusterName,
			Outlier:     ins.Outlier,
		}
	}
	for axis, axisName := range []string{"pc1", "pc2"} {
		loadings := make(map[string]float64, region.NumCategories)
		for _, c := range region.AllCategories() {
			loadings[c.String()] = snap.Artifacts.Projection.Loadings[axis][c]
		}
		view.Axes = append(view.Axes, AxisLoadings{Axis: axisName, Loadings: loadings})
	}
	return view, nil
}

// Summary returns the aggregate surface.
func (s *Service) Summary(ctx context.Context) (*SummaryView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var totals CapacityView
	for _, rs := range snap.Scored {
		totals.SolarMW += rs.Region.SolarMW
		totals.WindMW += rs.Region.WindMW
		totals.SmallHydroMW += rs.Region.SmallHydroMW
		totals.BioMW += rs.Region.BioMW
		totals.LargeHydroMW += rs.Region.LargeHydroMW
		totals.TotalMW += rs.Region.TotalMW()
	}

	byRank := scoring.SortByRank(snap.Scored)
	brief := func(rs scoring.RegionScore) RegionBrief {
		return RegionBrief{Name: rs.Region.Name, FinalScore: rs.FinalScore, Rank: rs.Rank}
	}
	n := len(byRank)
	k := topBottomSize
	if k > n {
		k = n
	}
	view := &SummaryView{
		RegionCount:    n,
		MeanFinalScore: scoring.MeanFinalScore(snap.Scored),
		TotalCapacity:  totals,
		Source:         snap.Source,
		BuiltAt:        snap.BuiltAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for i := 0; i < k; i++ {
		view.Top = append(view.Top, brief(byRank[i]))
	}
	for i := n - k; i < n; i++ {
		view.Bottom = append(view.Bottom, brief(byRank[i]))
	}
	return view, nil
}

// Scenario evaluates a what-if adjustment against the frozen baseline.
func (s *Service) Scenario(ctx context.Context, req scenario.Request) (*scenario.Result, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(s.metrics.ScenarioDuration.WithLabelValues(string(req.Mode)))
	defer timer.ObserveDuration()

	res, err := s.engine.Run(snap.Scored, snap.Bounds, req)
	if err != nil {
		s.metrics.ScenarioEvaluationsTotal.WithLabelValues(string(req.Mode), "error").Inc()
		return nil, err
	}
	s.metrics.ScenarioEvaluationsTotal.WithLabelValues(string(req.Mode), "ok").Inc()
	s.logger.Debug("scenario evaluated",
		logging.String("region", req.Region),
		logging.String("mode", string(req.Mode)),
		logging.Float64("delta_score", res.DeltaScore),
		logging.Int("delta_rank", res.DeltaRank),
	)
	return &res, nil
}

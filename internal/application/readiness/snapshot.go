// Package readiness assembles the baseline snapshot and serves every read
// and scenario operation from it.
package readiness

import (
	"time"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/insight"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
)

// Snapshot is the immutable computed baseline: bounds, the scored table in
// input row order, and the merged insights aligned with it.  It is built
// once and shared by reference across all requests; nothing mutates it
// after construction.
type Snapshot struct {
	Bounds   scoring.BoundsSet
	Scored   []scoring.RegionScore
	Insights []insight.Insight

	// Artifacts keeps the global model diagnostics (fit metrics, explained
	// variance, loadings) for the cluster and projection surfaces.
	Artifacts insight.Artifacts

	Source  string
	BuiltAt time.Time
}

// RegionCount is the number of regions in the baseline.
func (s *Snapshot) RegionCount() int {
	return len(s.Scored)
}

// indexOf returns the row index of the named region, or -1.
func (s *Snapshot) indexOf(name string) int {
	for i, rs := range s.Scored {
		if rs.Region.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the region names in row order, the ordering every model
// artifact is aligned to.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.Scored))
	for i, rs := range s.Scored {
		names[i] = rs.Region.Name
	}
	return names
}

// buildSnapshot runs the full pipeline: validate, bounds, score, collect
// model outputs, integrate.
func buildSnapshot(regions []region.Region, weights scoring.Weights, source string,
	cm insight.ClusterModel, om insight.OutlierModel, pm insight.ProjectionModel, mm insight.MembershipModel,
) (*Snapshot, error) {
	if err := region.ValidateSet(regions); err != nil {
		return nil, err
	}
	bounds, err := scoring.ComputeBounds(regions)
	if err != nil {
		return nil, err
	}
	scored, err := scoring.Score(regions, bounds, weights)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(scored))
	for i, rs := range scored {
		names[i] = rs.Region.Name
	}
	artifacts, err := insight.Collect(names, cm, om, pm, mm)
	if err != nil {
		return nil, err
	}
	insights, err := insight.Integrate(names, artifacts)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Bounds:    bounds,
		Scored:    scored,
		Insights:  insights,
		Artifacts: artifacts,
		Source:    source,
		BuiltAt:   time.Now().UTC(),
	}, nil
}

// Package insight merges externally computed unsupervised-learning outputs
// (cluster labels, outlier detection, 2-D projection, soft membership) onto
// the scored region table.  The models themselves are opaque: this package
// only validates shape and joins positionally.
package insight

import (
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

// Insight is the per-region annotation produced by the merge.
type Insight struct {
	ClusterID   int    `json:"cluster_id"`
	ClusterName string `json:"cluster_name"`

	Outlier      bool    `json:"outlier"`
	OutlierScore float64 `json:"outlier_score"`

	ProjectionX float64 `json:"projection_x"`
	ProjectionY float64 `json:"projection_y"`

	MembershipLabel       string  `json:"membership_label"`
	MembershipProbability float64 `json:"membership_probability"`
}

// ClusterOutput is what a clustering model reports for a fixed region order.
type ClusterOutput struct {
	// Labels holds one cluster id per region, aligned with the requested order.
	Labels []int
	// Names maps each cluster id to its human-readable name.
	Names map[int]string

	// Fit metrics, passed through to the cluster summary surface.
	Silhouette    float64
	DaviesBouldin float64
}

// OutlierOutput is what an anomaly-detection model reports.
type OutlierOutput struct {
	Flags  []bool
	Scores []float64
}

// ProjectionOutput is what a dimensionality-reduction model reports: one 2-D
// coordinate per region plus the global variance and loading diagnostics.
type ProjectionOutput struct {
	Coordinates [][2]float64

	ExplainedVariance [2]float64
	// Loadings holds per-axis weights in canonical category order.
	Loadings [2][region.NumCategories]float64
}

// MembershipOutput is what a soft-assignment model reports for each region's
// primary cluster.
type MembershipOutput struct {
	Labels        []string
	Probabilities []float64
}

// ClusterModel produces cluster assignments for the given region order.
type ClusterModel interface {
	Clusters(regionNames []string) (ClusterOutput, error)
}

// OutlierModel produces outlier flags and scores for the given region order.
type OutlierModel interface {
	Outliers(regionNames []string) (OutlierOutput, error)
}

// ProjectionModel produces 2-D coordinates for the given region order.
type ProjectionModel interface {
	Project(regionNames []string) (ProjectionOutput, error)
}

// MembershipModel produces soft-assignment confidences for the given region
// order.
type MembershipModel interface {
	Memberships(regionNames []string) (MembershipOutput, error)
}

// Artifacts bundles the four model outputs for one region ordering.
type Artifacts struct {
	Clusters   ClusterOutput
	Outliers   OutlierOutput
	Projection ProjectionOutput
	Membership MembershipOutput
}

// Collect queries all four models for the given region order.
func Collect(regionNames []string, cm ClusterModel, om OutlierModel, pm ProjectionModel, mm MembershipModel) (Artifacts, error) {
	var a Artifacts
	var err error
	if a.Clusters, err = cm.Clusters(regionNames); err != nil {
		return Artifacts{}, errors.Wrap(err, errors.ErrCodeModelUnavailable, "clustering model failed")
	}
	if a.Outliers, err = om.Outliers(regionNames); err != nil {
		return Artifacts{}, errors.Wrap(err, errors.ErrCodeModelUnavailable, "outlier model failed")
	}
	if a.Projection, err = pm.Project(regionNames); err != nil {
		return Artifacts{}, errors.Wrap(err, errors.ErrCodeModelUnavailable, "projection model failed")
	}
	if a.Membership, err = mm.Memberships(regionNames); err != nil {
		return Artifacts{}, errors.Wrap(err, errors.ErrCodeModelUnavailable, "membership model failed")
	}
	return a, nil
}

// Integrate positionally joins the model artifacts onto the region ordering.
// Every artifact array must match the region count exactly, and every cluster
// label must resolve to a name.
func Integrate(regionNames []string, a Artifacts) ([]Insight, error) {
	n := len(regionNames)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "cannot integrate insights over an empty region set")
	}
	if len(a.Clusters.Labels) != n {
		return nil, errors.ShapeMismatch("cluster labels", len(a.Clusters.Labels), n)
	}
	if len(a.Outliers.Flags) != n {
		return nil, errors.ShapeMismatch("outlier flags", len(a.Outliers.Flags), n)
	}
	if len(a.Outliers.Scores) != n {
		return nil, errors.ShapeMismatch("outlier scores", len(a.Outliers.Scores), n)
	}
	if len(a.Projection.Coordinates) != n {
		return nil, errors.ShapeMismatch("projection coordinates", len(a.Projection.Coordinates), n)
	}
	if len(a.Membership.Labels) != n {
		return nil, errors.ShapeMismatch("membership labels", len(a.Membership.Labels), n)
	}
	if len(a.Membership.Probabilities) != n {
		return nil, errors.ShapeMismatch("membership probabilities", len(a.Membership.Probabilities), n)
	}

	insights := make([]Insight, n)
	for i := range regionNames {
		label := a.Clusters.Labels[i]
		name, ok := a.Clusters.Names[label]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeClusterNameMissing,
				"cluster %d carries no name mapping", label)
		}
		insights[i] = Insight{
			ClusterID:             label,
			ClusterName:           name,
			Outlier:               a.Outliers.Flags[i],
			OutlierScore:          a.Outliers.Scores[i],
			ProjectionX:           a.Projection.Coordinates[i][0],
			ProjectionY:           a.Projection.Coordinates[i][1],
			MembershipLabel:       a.Membership.Labels[i],
			MembershipProbability: a.Membership.Probabilities[i],
		}
	}
	return insights, nil
}

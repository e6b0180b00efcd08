// Package mlmodels serves precomputed unsupervised-model outputs.  The
// clustering, anomaly-detection, projection, and soft-membership models run
// offline; their per-region artifacts ship with the binary and this store
// re-emits them in whatever region order the caller requests.
package mlmodels

import (
	_ "embed"
	"encoding/json"
	"strconv"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/insight"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

//go:embed data/artifacts.json
var embeddedArtifacts []byte

type regionArtifact struct {
	Cluster               int     `json:"cluster"`
	Outlier               bool    `json:"outlier"`
	OutlierScore          float64 `json:"outlier_score"`
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	MembershipLabel       string  `json:"membership_label"`
	MembershipProbability float64 `json:"membership_probability"`
}

type artifactFile struct {
	ClusterNames      map[string]string             `json:"cluster_names"`
	Silhouette        float64                       `json:"silhouette"`
	DaviesBouldin     float64                       `json:"davies_bouldin"`
	ExplainedVariance []float64                     `json:"explained_variance"`
	Loadings          map[string]map[string]float64 `json:"loadings"`
	Regions           map[string]regionArtifact     `json:"regions"`
}

// Store implements all four model provider interfaces from precomputed
// artifacts keyed by region name.
type Store struct {
	clusterNames      map[int]string
	silhouette        float64
	daviesBouldin     float64
	explainedVariance [2]float64
	loadings          [2][region.NumCategories]float64
	regions           map[string]regionArtifact
}

// NewStore parses the embedded artifact file.
func NewStore() (*Store, error) {
	return newStoreFrom(embeddedArtifacts)
}

func newStoreFrom(raw []byte) (*Store, error) {
	var f artifactFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeModelUnavailable, "decoding model artifacts")
	}
	if len(f.ExplainedVariance) != 2 {
		return nil, errors.ShapeMismatch("explained variance", len(f.ExplainedVariance), 2)
	}

	s := &Store{
		clusterNames:  make(map[int]string, len(f.ClusterNames)),
		silhouette:    f.Silhouette,
		daviesBouldin: f.DaviesBouldin,
		regions:       f.Regions,
	}
	for key, name := range f.ClusterNames {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Newf(errors.ErrCodeModelUnavailable, "non-numeric cluster id %q", key)
		}
		s.clusterNames[id] = name
	}
	s.explainedVariance = [2]float64{f.ExplainedVariance[0], f.ExplainedVariance[1]}

	for axis, axisName := range []string{"pc1", "pc2"} {
		axisLoadings, ok := f.Loadings[axisName]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeModelUnavailable, "missing %s loadings", axisName)
		}
		for _, c := range region.AllCategories() {
			v, ok := axisLoadings[c.String()]
			if !ok {
				return nil, errors.Newf(errors.ErrCodeModelUnavailable, "missing %s loading for %s", axisName, c)
			}
			s.loadings[axis][c] = v
		}
	}
	return s, nil
}

// lookup resolves every requested region or fails; partial coverage would
// silently misalign the positional merge downstream.
func (s *Store) lookup(regionNames []string) ([]regionArtifact, error) {
	out := make([]regionArtifact, len(regionNames))
	for i, name := range regionNames {
		a, ok := s.regions[name]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeModelUnavailable, "no model artifacts for region %q", name)
		}
		out[i] = a
	}
	return out, nil
}

// Clusters implements insight.ClusterModel.
func (s *Store) Clusters(regionNames []string) (insight.ClusterOutput, error) {
	arts, err := s.lookup(regionNames)
	if err != nil {
		return insight.ClusterOutput{}, err
	}
	labels := make([]int, len(arts))
	for i, a := range arts {
		labels[i] = a.Cluster
	}
	return insight.ClusterOutput{
		Labels:        labels,
		Names:         s.clusterNames,
		Silhouette:    s.silhouette,
		DaviesBouldin: s.daviesBouldin,
	}, nil
}

// Outliers implements insight.OutlierModel.
func (s *Store) Outliers(regionNames []string) (insight.OutlierOutput, error) {
	arts, err := s.lookup(regionNames)
	if err != nil {
		return insight.OutlierOutput{}, err
	}
	flags := make([]bool, len(arts))
	scores := make([]float64, len(arts))
	for i, a := range arts {
		flags[i] = a.Outlier
		scores[i] = a.OutlierScore
	}
	return insight.OutlierOutput{Flags: flags, Scores: scores}, nil
}

// Project implements insight.ProjectionModel.
func (s *Store) Project(regionNames []string) (insight.ProjectionOutput, error) {
	arts, err := s.lookup(regionNames)
	if err != nil {
		return insight.ProjectionOutput{}, err
	}
	coords := make([][2]float64, len(arts))
	for i, a := range arts {
		coords[i] = [2]float64{a.X, a.Y}
	}
	return insight.ProjectionOutput{
		Coordinates:       coords,
		ExplainedVariance: s.explainedVariance,
		Loadings:          s.loadings,
	}, nil
}

// Memberships implements insight.MembershipModel.
func (s *Store) Memberships(regionNames []string) (insight.MembershipOutput, error) {
	arts, err := s.lookup(regionNames)
	if err != nil {
		return insight.MembershipOutput{}, err
	}
	labels := make([]string, len(arts))
	probs := make([]float64, len(arts))
	for i, a := range arts {
		labels[i] = a.MembershipLabel
		probs[i] = a.MembershipProbability
	}
	return insight.MembershipOutput{Labels: labels, Probabilities: probs}, nil
}

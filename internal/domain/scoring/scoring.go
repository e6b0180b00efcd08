// Package scoring implements the readiness scoring pipeline: per-category
// min-max normalization against dataset bounds, weighted aggregation, and
// descending rank assignment.
package scoring

import (
	"math"
	"sort"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

// weightTolerance is the permitted deviation of the weight sum from 1.0.
const weightTolerance = 1e-6

// midpointScore is the score assigned to every region in a zero-variance
// category, where min == max and normalization is undefined.
const midpointScore = 50.0

// Bounds holds the observed minimum and maximum capacity for one category
// across a dataset.  Bounds computed from the baseline are reused verbatim
// during scenario evaluation.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Degenerate reports whether min == max, making min-max normalization
// undefined for this category.
func (b Bounds) Degenerate() bool {
	return b.Max == b.Min
}

// BoundsSet maps every scored category to its bounds.
type BoundsSet [region.NumCategories]Bounds

// For returns the bounds for a category.
func (bs BoundsSet) For(c region.Category) Bounds {
	return bs[c]
}

// ComputeBounds derives per-category bounds from a dataset.  The dataset must
// already have passed region.ValidateSet.
func ComputeBounds(regions []region.Region) (BoundsSet, error) {
	if len(regions) == 0 {
		return BoundsSet{}, errors.New(errors.ErrCodeEmptyDataset, "cannot compute bounds over an empty dataset")
	}
	var bs BoundsSet
	for _, c := range region.AllCategories() {
		b := Bounds{Min: regions[0].Capacity(c), Max: regions[0].Capacity(c)}
		for _, r := range regions[1:] {
			v := r.Capacity(c)
			if v < b.Min {
				b.Min = v
			}
			if v > b.Max {
				b.Max = v
			}
		}
		bs[c] = b
	}
	return bs, nil
}

// Weights assigns a relative importance to each scored category, in the
// canonical category order.
type Weights [region.NumCategories]float64

// DefaultWeights gives every category equal importance.
func DefaultWeights() Weights {
	return Weights{0.25, 0.25, 0.25, 0.25}
}

// Validate rejects negative weights and weight vectors whose sum deviates
// from 1.0 by more than the tolerance.
func (w Weights) Validate() error {
	sum := 0.0
	for _, c := range region.AllCategories() {
		v := w[c]
		if v < 0 {
			return errors.InvalidWeights("weights must be non-negative, got " + c.String() + " < 0")
		}
		sum += v
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return errors.Newf(errors.ErrCodeInvalidWeights,
			"weights must sum to 1.0 within %.0e, got %.6f", weightTolerance, sum)
	}
	return nil
}

// RegionScore is the scored view of one region: per-category normalized
// scores, the weighted final score, and the 1-based rank.
type RegionScore struct {
	Region region.Region `json:"region"`

	CategoryScores [region.NumCategories]float64 `json:"category_scores"`
	FinalScore     float64                       `json:"final_score"`
	Rank           int                           `json:"rank"`
}

// CategoryScore returns the normalized score for one category.
func (rs RegionScore) CategoryScore(c region.Category) float64 {
	return rs.CategoryScores[c]
}

// normalize maps a capacity onto [0, 100] against the category bounds,
// clamping any out-of-range value.  Out-of-range inputs occur when scenario
// capacities are scored against frozen baseline bounds.
func normalize(value float64, b Bounds) float64 {
	if b.Degenerate() {
		return midpointScore
	}
	score := (value - b.Min) / (b.Max - b.Min) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreRegion scores a single region against the given bounds and weights.
// Weights are assumed validated.
func ScoreRegion(r region.Region, bounds BoundsSet, weights Weights) RegionScore {
	rs := RegionScore{Region: r}
	for _, c := range region.AllCategories() {
		s := normalize(r.Capacity(c), bounds.For(c))
		rs.CategoryScores[c] = s
		rs.FinalScore += s * weights[c]
	}
	return rs
}

// Score scores every region in the dataset and assigns descending ranks.
// The returned slice preserves the input row order; Rank fields carry the
// standing.  Ties keep their input order and receive distinct consecutive
// ranks, so ranks are always a permutation of 1..N.
func Score(regions []region.Region, bounds BoundsSet, weights Weights) ([]RegionScore, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "cannot score an empty dataset")
	}

	scored := make([]RegionScore, len(regions))
	for i, r := range regions {
		scored[i] = ScoreRegion(r, bounds, weights)
	}
	assignRanks(scored)
	return scored, nil
}

// assignRanks fills Rank fields by descending final score, input order
// breaking ties.
func assignRanks(scored []RegionScore) {
	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scored[order[a]].FinalScore > scored[order[b]].FinalScore
	})
	for pos, idx := range order {
		scored[idx].Rank = pos + 1
	}
}

// SortByRank returns a copy of the scored slice ordered by ascending rank.
func SortByRank(scored []RegionScore) []RegionScore {
	out := make([]RegionScore, len(scored))
	copy(out, scored)
	sort.Slice(out, func(a, b int) bool { return out[a].Rank < out[b].Rank })
	return out
}

// MeanFinalScore returns the arithmetic mean of final scores.
func MeanFinalScore(scored []RegionScore) float64 {
	if len(scored) == 0 {
		return 0
	}
	sum := 0.0
	for _, rs := range scored {
		sum += rs.FinalScore
	}
	return sum / float64(len(scored))
}

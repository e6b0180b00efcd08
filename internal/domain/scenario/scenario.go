// Package scenario evaluates what-if capacity adjustments for a single
// region against the frozen baseline bounds and reports the resulting score
// and rank movement.
package scenario

import (
	"math"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

// Mode selects how deltas are applied to the target region's capacities.
type Mode string

const (
	// ModePercent multiplies each capacity by (1 + delta/100).
	ModePercent Mode = "percent"
	// ModeMW adds each delta in absolute megawatts.
	ModeMW Mode = "mw"
)

// ParseMode validates a wire-level mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePercent:
		return ModePercent, nil
	case ModeMW:
		return ModeMW, nil
	default:
		return "", errors.InvalidMode(s)
	}
}

// Request is a fully validated scenario submission.
type Request struct {
	Region string
	Mode   Mode
	// Deltas in canonical category order.  Zero is a no-op for that category.
	Deltas [region.NumCategories]float64
}

// CategoryChange reports one category's capacity and score movement.
type CategoryChange struct {
	Category  string  `json:"category"`
	BaseMW    float64 `json:"base_mw"`
	NewMW     float64 `json:"new_mw"`
	BaseScore float64 `json:"base_score"`
	NewScore  float64 `json:"new_score"`
}

// Result is the ephemeral outcome of one scenario evaluation.  DeltaRank is
// positive when the region climbs the table.
type Result struct {
	Region string `json:"region"`
	Mode   Mode   `json:"mode"`

	BaseScore  float64 `json:"base_score"`
	NewScore   float64 `json:"new_score"`
	DeltaScore float64 `json:"delta_score"`

	BaseRank  int `json:"base_rank"`
	NewRank   int `json:"new_rank"`
	DeltaRank int `json:"delta_rank"`

	Categories []CategoryChange `json:"categories"`
}

// Engine re-scores scenario variants.  It carries the weight vector so every
// evaluation uses the same weighting as the baseline.
type Engine struct {
	weights scoring.Weights
}

// NewEngine validates the weights once at construction.
func NewEngine(weights scoring.Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights}, nil
}

// Run evaluates one scenario against the baseline scored table.  The
// baseline slice and bounds are read-only: the variant is scored on a
// private copy, so concurrent evaluations never observe each other.  Rank
// movement is a full recomputation over the variant set, not a heuristic.
func (e *Engine) Run(baseline []scoring.RegionScore, bounds scoring.BoundsSet, req Request) (Result, error) {
	if _, err := ParseMode(string(req.Mode)); err != nil {
		return Result{}, err
	}
	for _, c := range region.AllCategories() {
		d := req.Deltas[c]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Result{}, errors.Newf(errors.ErrCodeInvalidDelta,
				"delta for %s must be a finite number", c)
		}
	}

	targetIdx := -1
	variant := make([]region.Region, len(baseline))
	for i, rs := range baseline {
		variant[i] = rs.Region
		if rs.Region.Name == req.Region {
			targetIdx = i
		}
	}
	if targetIdx < 0 {
		return Result{}, errors.RegionNotFound(req.Region)
	}

	variant[targetIdx] = applyDeltas(variant[targetIdx], req.Mode, req.Deltas)

	rescored, err := scoring.Score(variant, bounds, e.weights)
	if err != nil {
		return Result{}, err
	}

	base := baseline[targetIdx]
	next := rescored[targetIdx]

	result := Result{
		Region:     req.Region,
		Mode:       req.Mode,
		BaseScore:  base.FinalScore,
		NewScore:   next.FinalScore,
		DeltaScore: next.FinalScore - base.FinalScore,
		BaseRank:   base.Rank,
		NewRank:    next.Rank,
		DeltaRank:  base.Rank - next.Rank,
		Categories: make([]CategoryChange, 0, region.NumCategories),
	}
	for _, c := range region.AllCategories() {
		result.Categories = append(result.Categories, CategoryChange{
			Category:  c.String(),
			BaseMW:    base.Region.Capacity(c),
			NewMW:     next.Region.Capacity(c),
			BaseScore: base.CategoryScore(c),
			NewScore:  next.CategoryScore(c),
		})
	}
	return result, nil
}

// applyDeltas derives the variant row.  Capacities clamp at zero; a percent
// cut below -100% cannot drive capacity negative.
func applyDeltas(r region.Region, mode Mode, deltas [region.NumCategories]float64) region.Region {
	for _, c := range region.AllCategories() {
		d := deltas[c]
		if d == 0 {
			continue
		}
		current := r.Capacity(c)
		var next float64
		switch mode {
		case ModePercent:
			next = current * (1 + d/100)
		case ModeMW:
			next = current + d
		}
		if next < 0 {
			next = 0
		}
		r = r.WithCapacity(c, next)
	}
	return r
}

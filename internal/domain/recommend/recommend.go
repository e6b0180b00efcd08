// Package recommend derives per-category improvement advisories for a scored
// region from its normalized scores, standing, and geography flags.
package recommend

import (
	"fmt"
	"sort"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
)

// Priority orders advisories; lower values sort first.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// MarshalJSON renders the priority as its label.
func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// Score tiers.  A category at or above tierSustain is already a strength;
// between tierOptimize and tierSustain it needs tuning; below tierOptimize
// it needs build-out.
const (
	tierSustain  = 85.0
	tierOptimize = 70.0
)

// Advisory is one per-category recommendation.  Every region receives
// exactly one advisory per scored category; strong categories get a
// low-priority maintenance advisory rather than being omitted.
type Advisory struct {
	Category region.Category `json:"-"`
	Label    string          `json:"category"`
	Priority Priority        `json:"priority"`
	Action   string          `json:"action"`
	Reason   string          `json:"reason"`
	Score    float64         `json:"score"`
}

// Percentile converts a 1-based rank into a 0-100 standing, 100 = best.
func Percentile(rank, total int) float64 {
	if total <= 1 {
		return 100
	}
	return float64(total-rank) / float64(total-1) * 100
}

// ForRegion builds the prioritized advisory list for one scored region.
// Output is sorted HIGH, MEDIUM, LOW; within a tier the canonical category
// order is kept.
func ForRegion(rs scoring.RegionScore, total int) []Advisory {
	pct := Percentile(rs.Rank, total)

	advisories := make([]Advisory, 0, region.NumCategories)
	for _, c := range region.AllCategories() {
		score := rs.CategoryScore(c)
		priority, action := tierFor(score)
		advisories = append(advisories, Advisory{
			Category: c,
			Label:    c.Display(),
			Priority: priority,
			Action:   action,
			Reason:   reason(c, rs.Region.Geography, score, pct, action),
			Score:    score,
		})
	}
	sort.SliceStable(advisories, func(a, b int) bool {
		return advisories[a].Priority < advisories[b].Priority
	})
	return advisories
}

func tierFor(score float64) (Priority, string) {
	switch {
	case score >= tierSustain:
		return PriorityLow, "sustain"
	case score >= tierOptimize:
		return PriorityMedium, "optimize"
	default:
		return PriorityHigh, "expand"
	}
}

func reason(c region.Category, geo region.Geography, score, pct float64, action string) string {
	base := fmt.Sprintf("%s score %.1f places the region at the %.0fth percentile", c.Display(), score, pct)
	switch action {
	case "sustain":
		base += "; maintain the current build-out pace and grid absorption"
	case "optimize":
		base += "; close the gap to leading regions through repowering and curtailment reduction"
	default:
		base += "; prioritize new capacity additions and enabling transmission"
	}
	if hint := geographyHint(c, geo); hint != "" {
		base += "; " + hint
	}
	return base + "."
}

// geographyHint frames the rationale with the region's terrain where the
// category benefits from it.
func geographyHint(c region.Category, geo region.Geography) string {
	switch c {
	case region.Wind:
		if geo.Coastal {
			return "the coastline favors onshore and offshore wind corridors"
		}
	case region.Solar:
		if geo.AridDesert {
			return "arid terrain offers high-irradiance land for utility-scale solar"
		}
	case region.SmallHydro:
		if geo.Mountain {
			return "mountainous drainage supports run-of-river small hydro sites"
		}
	case region.Bio:
		if geo.HighBiomass {
			return "agricultural residue volumes support bio-power feedstock supply"
		}
	}
	return ""
}

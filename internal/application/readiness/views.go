package readiness

import (
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/insight"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/recommend"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
)

// CapacityView reports a region's installed capacity in megawatts.
type CapacityView struct {
	SolarMW      float64 `json:"solar_mw"`
	WindMW       float64 `json:"wind_mw"`
	SmallHydroMW float64 `json:"small_hydro_mw"`
	BioMW        float64 `json:"bio_power_mw"`
	LargeHydroMW float64 `json:"large_hydro_mw"`
	TotalMW      float64 `json:"total_mw"`
}

// ScoresView reports the normalized per-category and final scores.
type ScoresView struct {
	Solar      float64 `json:"solar"`
	Wind       float64 `json:"wind"`
	SmallHydro float64 `json:"small_hydro"`
	Bio        float64 `json:"bio"`
	Final      float64 `json:"final"`
}

// RegionView is the full listing row: capacities, scores, geography, and
// merged insight fields.
type RegionView struct {
	Name      string           `json:"name"`
	Rank      int              `json:"rank"`
	Capacity  CapacityView     `json:"capacity"`
	Scores    ScoresView       `json:"scores"`
	Geography region.Geography `json:"geography"`
	Insight   insight.Insight  `json:"insight"`
}

// RegionDetailView extends the listing row with the advisory list and the
// region's percentile standing.
type RegionDetailView struct {
	RegionView
	Percentile      float64              `json:"percentile"`
	Recommendations []recommend.Advisory `json:"recommendations"`
}

// ClusterView summarizes one cluster: members and their averaged scores.
type ClusterView struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Members        []string   `json:"members"`
	MeanScores     ScoresView `json:"mean_scores"`
	MeanFinalScore float64    `json:"mean_final_score"`
}

// ClusterSummaryView is the cluster surface: per-cluster rollups, the fit
// metrics reported by the clustering model, and the outlier region names.
type ClusterSummaryView struct {
	Clusters      []ClusterView `json:"clusters"`
	Silhouette    float64       `json:"silhouette"`
	DaviesBouldin float64       `json:"davies_bouldin"`
	Outliers      []string      `json:"outliers"`
}

// ProjectionPoint is one region's position in the 2-D projection.
type ProjectionPoint struct {
	Region      string  `json:"region"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ClusterID   int     `json:"cluster_id"`
	ClusterName string  `json:"cluster_name"`
	Outlier     bool    `json:"outlier"`
}

// AxisLoadings reports one projection axis's weights per scored category.
type AxisLoadings struct {
	Axis     string             `json:"axis"`
	Loadings map[string]float64 `json:"loadings"`
}

// ProjectionView is the projection surface: per-region coordinates plus the
// global variance and loading diagnostics.
type ProjectionView struct {
	Points            []ProjectionPoint `json:"points"`
	ExplainedVariance []float64         `json:"explained_variance"`
	Axes              []AxisLoadings    `json:"axes"`
}

// RegionBrief is a compact standing entry for the summary surface.
type RegionBrief struct {
	Name       string  `json:"name"`
	FinalScore float64 `json:"final_score"`
	Rank       int     `json:"rank"`
}

// SummaryView is the aggregate surface: counts, mean score, summed capacity
// per category, and the top and bottom of the table.
type SummaryView struct {
	RegionCount    int           `json:"region_count"`
	MeanFinalScore float64       `json:"mean_final_score"`
	TotalCapacity  CapacityView  `json:"total_capacity"`
	Top            []RegionBrief `json:"top"`
	Bottom         []RegionBrief `json:"bottom"`
	Source         string        `json:"source"`
	BuiltAt        string        `json:"built_at"`
}

func capacityView(r region.Region) CapacityView {
	return CapacityView{
		SolarMW:      r.SolarMW,
		WindMW:       r.WindMW,
		SmallHydroMW: r.SmallHydroMW,
		BioMW:        r.BioMW,
		LargeHydroMW: r.LargeHydroMW,
		TotalMW:      r.TotalMW(),
	}
}

func scoresView(rs scoring.RegionScore) ScoresView {
	return ScoresView{
		Solar:      rs.CategoryScore(region.Solar),
		Wind:       rs.CategoryScore(region.Wind),
		SmallHydro: rs.CategoryScore(region.SmallHydro),
		Bio:        rs.CategoryScore(region.Bio),
		Final:      rs.FinalScore,
	}
}

func regionView(rs scoring.RegionScore, ins insight.Insight) RegionView {
	return RegionView{
		Name:      rs.Region.Name,
		Rank:      rs.Rank,
		Capacity:  capacityView(rs.Region),
		Scores:    scoresView(rs),
		Geography: rs.Region.Geography,
		Insight:   ins,
	}
}

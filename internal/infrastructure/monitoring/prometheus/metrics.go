package prometheus

// AppMetrics holds every metric the engine emits.  Construct once in main and
// inject into the HTTP layer and the readiness service.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec

	// Snapshot pipeline
	SnapshotBuildDuration HistogramVec
	SnapshotBuiltAt       GaugeVec
	SnapshotRegions       GaugeVec

	// Engine request paths
	ScenarioEvaluationsTotal CounterVec
	ScenarioDuration         HistogramVec
	RecommendationsTotal     CounterVec
}

// DefaultHTTPDurationBuckets suit sub-millisecond in-memory reads up to slow
// cold-start requests that trigger the snapshot build.
var DefaultHTTPDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// NewAppMetrics registers all engine metrics against the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	return &AppMetrics{
		HTTPRequestsTotal: collector.RegisterCounter(
			"http_requests_total", "Total HTTP requests", "method", "path", "status"),
		HTTPRequestDuration: collector.RegisterHistogram(
			"http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path"),

		SnapshotBuildDuration: collector.RegisterHistogram(
			"snapshot_build_duration_seconds", "Baseline snapshot build duration", nil, "source"),
		SnapshotBuiltAt: collector.RegisterGauge(
			"snapshot_built_at_seconds", "Unix time the baseline snapshot was built", "source"),
		SnapshotRegions: collector.RegisterGauge(
			"snapshot_regions", "Number of regions in the baseline snapshot", "source"),

		ScenarioEvaluationsTotal: collector.RegisterCounter(
			"scenario_evaluations_total", "What-if scenario evaluations", "mode", "result"),
		ScenarioDuration: collector.RegisterHistogram(
			"scenario_duration_seconds", "Scenario evaluation duration", nil, "mode"),
		RecommendationsTotal: collector.RegisterCounter(
			"recommendations_total", "Recommendation list generations", "result"),
	}
}

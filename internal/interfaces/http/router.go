package http

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// RouterConfig carries everything the router needs beyond the handlers.
type RouterConfig struct {
	Mode        string
	CORSOrigins []string
}

// NewRouter assembles the gin engine: middleware chain, API routes, and the
// operational endpoints.
func NewRouter(cfg RouterConfig, h *Handlers, logger logging.Logger,
	metrics *prometheus.AppMetrics, collector prometheus.MetricsCollector,
) *gin.Engine {
	gin.SetMode(ginMode(cfg.Mode))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS(cfg.CORSOrigins))
	r.Use(RequestLogging(logger))
	r.Use(Metrics(metrics))

	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/regions", h.ListRegions)
		v1.GET("/regions/:name", h.GetRegion)
		v1.GET("/ml/clusters", h.GetClusters)
		v1.GET("/ml/projection", h.GetProjection)
		v1.GET("/stats/summary", h.GetSummary)
		v1.POST("/scenario", h.PostScenario)
		v1.GET("/geojson", h.GetGeoJSON)
	}
	return r
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

// Package http exposes the scoring engine over a gin HTTP surface.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GreenScore-Intelligence/internal/application/readiness"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scenario"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

// Handlers adapts the readiness service to HTTP.
type Handlers struct {
	service *readiness.Service
	geojson []byte
}

// NewHandlers wires the handler set.  geojson may be nil when no boundary
// document is configured; the endpoint then reports 404.
func NewHandlers(service *readiness.Service, geojson []byte) *Handlers {
	return &Handlers{service: service, geojson: geojson}
}

// errorResponse is the wire form of every error.
type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps an error onto its HTTP status via the error-code table.
// Server-side causes are masked; client errors pass their message through.
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatus(err)

	message := err.Error()
	if errors.IsServerError(code) {
		message = errors.DefaultMessageForCode(code)
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Code:      string(code),
		Message:   message,
		RequestID: c.GetString("request_id"),
	})
}

// ListRegions handles GET /api/v1/regions.
func (h *Handlers) ListRegions(c *gin.Context) {
	views, err := h.service.ListRegions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": views, "count": len(views)})
}

// GetRegion handles GET /api/v1/regions/:name.
func (h *Handlers) GetRegion(c *gin.Context) {
	detail, err := h.service.RegionDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetClusters handles GET /api/v1/ml/clusters.
func (h *Handlers) GetClusters(c *gin.Context) {
	summary, err := h.service.ClusterSummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetProjection handles GET /api/v1/ml/projection.
func (h *Handlers) GetProjection(c *gin.Context) {
	proj, err := h.service.Projection(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

// GetSummary handles GET /api/v1/stats/summary.
func (h *Handlers) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// scenarioRequest is the typed wire form of a scenario submission.
type scenarioRequest struct {
	Region          string  `json:"region" binding:"required"`
	Mode            string  `json:"mode" binding:"required"`
	SolarDelta      float64 `json:"solar_delta"`
	WindDelta       float64 `json:"wind_delta"`
	SmallHydroDelta float64 `json:"small_hydro_delta"`
	BioDelta        float64 `json:"bio_delta"`
}

// PostScenario handles POST /api/v1/scenario.
func (h *Handlers) PostScenario(c *gin.Context) {
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.Validation("request body: "+err.Error()))
		return
	}
	mode, err := scenario.ParseMode(req.Mode)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.service.Scenario(c.Request.Context(), scenario.Request{
		Region: req.Region,
		Mode:   mode,
		Deltas: [region.NumCategories]float64{req.SolarDelta, req.WindDelta, req.SmallHydroDelta, req.BioDelta},
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetGeoJSON handles GET /api/v1/geojson.
func (h *Handlers) GetGeoJSON(c *gin.Context) {
	if h.geojson == nil {
		writeError(c, errors.New(errors.ErrCodeNotFound, "no boundary geometry configured"))
		return
	}
	c.Data(http.StatusOK, "application/geo+json", h.geojson)
}

// Healthz reports process liveness.
func (h *Handlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports whether the baseline snapshot is available.
func (h *Handlers) Readyz(c *gin.Context) {
	if err := h.service.Ready(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": string(errors.GetCode(err))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Root handles GET / with a service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "greenscore-intelligence",
		"docs":    "/api/v1",
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/service"
)

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics     *service.MetricsService
	serviceName string
	banner      string
	ready       func() error
}

// NewMetricsHandler constructs a metrics handler. ready is consulted by the
// readiness probe and may be nil.
func NewMetricsHandler(metrics *service.MetricsService, serviceName, banner string, ready func() error) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, serviceName: serviceName, banner: banner, ready: ready}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Banner answers the service root with a plain running message.
func (h *MetricsHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, h.banner)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.serviceName})
}

// Ready reports whether the backing store is reachable.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

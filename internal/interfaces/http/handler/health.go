package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	BaseHandler
	appName string
	started time.Time
	pinger  func() error
}

// NewHealthHandler creates a new HealthHandler. pinger checks the database
// connection and may be nil.
func NewHealthHandler(appName string, pinger func() error) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		started: time.Now(),
		pinger:  pinger,
	}
}

// RegisterRoutes registers the health endpoint
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Health)
}

// Health returns the service status
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	database := "ok"
	if h.pinger != nil {
		if err := h.pinger(); err != nil {
			status = "degraded"
			database = "unreachable"
		}
	}

	h.Success(c, gin.H{
		"status":   status,
		"service":  h.appName,
		"database": database,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}

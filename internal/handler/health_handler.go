package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/pkg/database"
	"github.com/sashabryl/train-station-api-service/pkg/redis"
)

// HealthHandler reports process and dependency health
type HealthHandler struct {
	db      *database.PostgresDB
	redis   *redis.Client
	service string
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client, service, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redisClient,
		service: service,
		version: version,
	}
}

// Health handles GET /health (liveness)
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	})
}

// Ready handles GET /ready (readiness, checks dependencies)
func (h *HealthHandler) Ready(c *gin.Context) {
	components := make(map[string]string)
	status := "ready"
	code := http.StatusOK

	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		components["database"] = "unhealthy: " + err.Error()
		status = "not ready"
		code = http.StatusServiceUnavailable
	} else {
		components["database"] = "healthy"
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(c.Request.Context()); err != nil {
			components["redis"] = "unhealthy: " + err.Error()
			status = "not ready"
			code = http.StatusServiceUnavailable
		} else {
			components["redis"] = "healthy"
		}
	}

	c.JSON(code, dto.HealthResponse{
		Status:     status,
		Service:    h.service,
		Version:    h.version,
		Components: components,
	})
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/asatex/kyuyokeisan-api/libs/go/interfaces"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	source     interfaces.BracketSource
	sourceName string
	stage      string
}

func NewHealthHandler(source interfaces.BracketSource, sourceName, stage string) *HealthHandler {
	return &HealthHandler{source: source, sourceName: sourceName, stage: stage}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Liveness check
// @Description Returns a simple "ok" status
// @Tags health
// @Produce json
// @Success 200 {object} responses.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Stage:  h.stage,
	})
}

// Ready godoc
// @Summary Readiness check
// @Description Reports whether the rate table source is reachable
// @Tags health
// @Produce json
// @Success 200 {object} responses.HealthResponse
// @Failure 503 {object} responses.HealthResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Stage: h.stage, Error: "no rate table source configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.source.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Stage:  h.stage,
			Source: h.sourceName,
			Error:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Stage: h.stage, Source: h.sourceName})
}

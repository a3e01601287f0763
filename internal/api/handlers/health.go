package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/zooapi/internal/api/models"
	"github.com/shirou/gopsutil/v3/process"
)

// Health godoc
// @Summary Health check
// @Description Returns ok when the animal store is reachable
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "store unavailable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns uptime, goroutines, stored animal count and process resource usage
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
	}

	if n, err := h.store.Count(c.Request.Context()); err == nil {
		resp.Animals = n
	} else {
		h.logger.Warn("failed to count animals", "err", err)
	}

	if p, err := process.NewProcessWithContext(c.Request.Context(), int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfoWithContext(c.Request.Context()); err == nil {
			rss := float64(mem.RSS) / 1024 / 1024
			resp.ProcessRSSMB = &rss
		}
		if pct, err := p.CPUPercentWithContext(c.Request.Context()); err == nil {
			resp.ProcessCPUPercent = &pct
		}
	}

	c.JSON(http.StatusOK, resp)
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/zooapi/internal/api/handlers"
	"github.com/jroosing/zooapi/internal/api/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/zooapi/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, gatherer prometheus.Gatherer) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.GET("/animals", h.ListAnimals)
	api.GET("/animals/:id", h.GetAnimal)
	api.POST("/animals", h.CreateAnimal)

	api.POST("/zookeepers", h.CreateZookeeper)
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func apiNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
}

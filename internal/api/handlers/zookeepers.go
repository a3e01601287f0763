package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/zooapi/internal/api/models"
	"github.com/jroosing/zooapi/internal/logging"
	"github.com/jroosing/zooapi/internal/zoo"
)

// CreateZookeeper godoc
// @Summary Submit a zookeeper
// @Description Accepts a zookeeper and echoes it back. Nothing is validated or stored.
// @Tags zookeepers
// @Accept json
// @Produce json
// @Param zookeeper body zoo.Zookeeper true "Zookeeper"
// @Success 200 {object} zoo.Zookeeper
// @Failure 400 {object} models.ErrorResponse
// @Router /zookeepers [post]
func (h *Handler) CreateZookeeper(c *gin.Context) {
	var z zoo.Zookeeper
	if err := c.ShouldBindJSON(&z); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	logging.FromContext(c.Request.Context()).Info("zookeeper received", "name", z.Name, "favorite_animal", z.FavoriteAnimal)
	c.JSON(http.StatusOK, z)
}

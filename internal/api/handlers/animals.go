package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/zooapi/internal/api/models"
	"github.com/jroosing/zooapi/internal/logging"
	"github.com/jroosing/zooapi/internal/zoo"
)

// ListAnimals godoc
// @Summary List animals
// @Description Returns all animals matching every supplied filter, in insertion order
// @Tags animals
// @Produce json
// @Param personalityTraits query []string false "Required traits (repeatable)" collectionFormat(multi)
// @Param diet query string false "Exact diet"
// @Param species query string false "Exact species"
// @Param name query string false "Exact name"
// @Success 200 {array} zoo.Animal
// @Failure 500 {object} models.ErrorResponse
// @Router /animals [get]
func (h *Handler) ListAnimals(c *gin.Context) {
	animals, err := h.store.List(c.Request.Context())
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("failed to list animals", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list animals"})
		return
	}

	result := zoo.Filter(zoo.CriteriaFromQuery(c.Request.URL.Query()), animals)
	if result == nil {
		result = []zoo.Animal{}
	}
	c.JSON(http.StatusOK, result)
}

// GetAnimal godoc
// @Summary Get an animal
// @Description Returns the animal with the given id; 404 with an empty body if none
// @Tags animals
// @Produce json
// @Param id path string true "Animal id"
// @Success 200 {object} zoo.Animal
// @Failure 404
// @Router /animals/{id} [get]
func (h *Handler) GetAnimal(c *gin.Context) {
	a, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, zoo.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("failed to get animal", "id", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get animal"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// CreateAnimal godoc
// @Summary Create an animal
// @Description Validates the animal, assigns the next id, appends it and rewrites the store
// @Tags animals
// @Accept json
// @Produce json
// @Param animal body zoo.Animal true "Animal without id"
// @Success 200 {object} zoo.Animal
// @Failure 400 {string} string "The animal is not properly formatted."
// @Failure 500 {object} models.ErrorResponse
// @Router /animals [post]
func (h *Handler) CreateAnimal(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())

	body, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, models.InvalidAnimalMessage)
		return
	}
	animal, err := zoo.DecodeAnimal(body)
	if err != nil {
		log.Debug("rejected animal", "err", err)
		c.String(http.StatusBadRequest, models.InvalidAnimalMessage)
		return
	}

	stored, err := h.store.Append(c.Request.Context(), animal)
	if err != nil {
		// The record may already be in memory; only the persisted copy is behind.
		log.Error("failed to persist animal", "id", stored.ID, "name", animal.Name, "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to persist animal"})
		return
	}

	h.countCreated()
	log.Info("animal created", "id", stored.ID, "name", stored.Name, "species", stored.Species)
	c.JSON(http.StatusOK, stored)
}

// Package handlers implements the REST API endpoint handlers for ZooAPI.
//
// REST API Endpoints:
//
// Animals:
//   - GET /api/animals - List animals, optionally filtered by
//     personalityTraits, diet, species and name
//   - GET /api/animals/:id - Get one animal
//   - POST /api/animals - Create an animal
//
// Zookeepers:
//   - POST /api/zookeepers - Accept a zookeeper (not stored)
//
// System:
//   - GET /api/health - Store health
//   - GET /api/stats - Runtime and process statistics
//
// @title ZooAPI
// @version 1.0
// @description Animal and zookeeper records over a JSON-backed store.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @BasePath /api
package handlers

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/zooapi/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	store     store.Store
	logger    *slog.Logger
	startTime time.Time

	animalsCreated prometheus.Counter
	mu             sync.RWMutex
}

// New creates a Handler over st.
func New(st store.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:     st,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Store returns the animal store.
func (h *Handler) Store() store.Store {
	return h.store
}

// SetAnimalsCreatedCounter sets the counter incremented after each successful create.
func (h *Handler) SetAnimalsCreatedCounter(c prometheus.Counter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.animalsCreated = c
}

func (h *Handler) countCreated() {
	h.mu.RLock()
	c := h.animalsCreated
	h.mu.RUnlock()
	if c != nil {
		c.Inc()
	}
}

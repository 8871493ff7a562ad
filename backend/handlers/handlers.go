// ABOUTME: HTTP handler wiring for the campus modeling API
// ABOUTME: Holds config, cache, engine calculators, and the current campus

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/cache"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/config"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

type Handler struct {
	cfg           *config.Config
	cache         *cache.Cache
	docStore      *services.DocumentStore
	vsphereClient *services.VSphereClient

	reconciler   *services.Reconciler
	paramsCalc   *services.ParamsCalculator
	capacityCalc *services.CapacityCalculator
	modelBuilder *services.ModelBuilder
	validator    *services.Validator
	whatifCalc   *services.WhatIfCalculator
	builder      *services.CampusBuilder

	campusMutex  sync.RWMutex
	campus       *models.Campus
	campusSource string
}

func NewHandler(cfg *config.Config, cache *cache.Cache) *Handler {
	h := &Handler{
		cfg:          cfg,
		cache:        cache,
		reconciler:   services.NewReconciler(),
		paramsCalc:   services.NewParamsCalculator(),
		capacityCalc: services.NewCapacityCalculator(),
		modelBuilder: services.NewModelBuilder(),
		validator:    services.NewValidator(),
		builder:      services.NewCampusBuilder(),
	}
	h.whatifCalc = services.NewWhatIfCalculator(h.modelBuilder)

	if cfg != nil {
		h.docStore = services.NewDocumentStore(cfg.FetchTimeoutDuration())

		// vSphere client is optional
		if cfg.VSphereConfigured() {
			h.vsphereClient = services.VSphereClientFromEnv(
				cfg.VSphereHost,
				cfg.VSphereUsername,
				cfg.VSpherePassword,
				cfg.VSphereDatacenter,
			)
		}
	}

	return h
}

// fallbackParams returns the configured derivation fallbacks, or the built-in
// defaults when the handler runs without config (tests).
func (h *Handler) fallbackParams() models.Params {
	if h.cfg != nil {
		return h.cfg.DefaultParams()
	}
	return models.Params{
		HallCount:       4,
		CriticalLoadMW:  5,
		RackDensityKW:   12,
		TargetPUE:       1.45,
		WhitespaceRatio: 0.45,
		Redundancy:      models.RedundancyN1,
		CoolingType:     models.CoolingAir,
		Containment:     models.ContainmentHotAisle,
	}
}

// currentCampus returns the stored campus and its source, or nil when none
// has been loaded.
func (h *Handler) currentCampus() (*models.Campus, string) {
	h.campusMutex.RLock()
	defer h.campusMutex.RUnlock()
	return h.campus, h.campusSource
}

// setCampus replaces the stored campus
func (h *Handler) setCampus(c *models.Campus, source string) {
	h.campusMutex.Lock()
	h.campus = c
	h.campusSource = source
	h.campusMutex.Unlock()
	slog.Info("Campus stored", "campus", c.Label(), "source", source, "zones", len(c.Zones), "halls", c.TotalHalls())
}

// swapCampus replaces the stored campus only if it is still the expected
// pointer. Patches read, transform, and swap; a concurrent replacement loses.
func (h *Handler) swapCampus(expected, next *models.Campus) bool {
	h.campusMutex.Lock()
	defer h.campusMutex.Unlock()
	if h.campus != expected {
		return false
	}
	h.campus = next
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

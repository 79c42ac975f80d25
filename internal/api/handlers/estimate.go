package handlers

import (
	"errors"
	"log"
	"net/http"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/services"
)

// EstimateHandler exposes point-to-point leg estimation across transport
// modes, live and simulated.
type EstimateHandler struct {
	Estimator *services.Estimator
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.EstimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	from := domain.Coordinates{Lat: req.From.Lat, Lng: req.From.Lng}
	to := domain.Coordinates{Lat: req.To.Lat, Lng: req.To.Lng}
	if !from.Valid() || !to.Valid() {
		writeError(w, r, http.StatusBadRequest, "coordinates out of range")
		return
	}

	mode := services.TransportMode(req.Mode)
	est, err := h.Estimator.Estimate(r.Context(), from, to, mode)
	if errors.Is(err, services.ErrEstimateUnavailable) {
		writeError(w, r, http.StatusBadGateway, "no route available")
		return
	}
	if err != nil {
		log.Printf("estimate failed: %v", err)
		writeError(w, r, http.StatusBadRequest, "invalid estimate request")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EstimateResponse{
		Mode:       req.Mode,
		DistanceKm: est.DistanceKm,
		DurationHr: est.DurationHr,
		Fare:       est.Fare,
	})
}

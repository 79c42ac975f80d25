package handlers

import (
	"log"
	"net/http"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// ItineraryHandler exposes the itinerary controller's operations over HTTP.
// Each mutation returns the refreshed itinerary snapshot so clients never
// need a follow-up read.
type ItineraryHandler struct {
	Controller *services.Controller
	Catalog    ports.CatalogSource
}

// Snapshot returns the current day keys, per-day ordered entries and
// last-known leg estimates.
func (h *ItineraryHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// Add inserts a catalog place into the active day. Adding a place that is
// already planned is a no-op.
func (h *ItineraryHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.AddEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.PlaceID == "" {
		writeError(w, r, http.StatusBadRequest, "place_id is required")
		return
	}

	place, err := h.Catalog.GetPlace(r.Context(), req.PlaceID)
	if err != nil {
		log.Printf("get place failed: %v", err)
		writeError(w, r, http.StatusNotFound, "unknown place")
		return
	}

	h.Controller.AddFromCatalog(place)
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// AddBlank inserts a placeholder entry into the given day.
func (h *ItineraryHandler) AddBlank(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.AddBlankRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	h.Controller.AddBlank(req.Day)
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// Remove deletes an entry from the itinerary.
func (h *ItineraryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.RemoveEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ID == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	h.Controller.Remove(r.Context(), req.ID)
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// Reorder moves an entry before another entry of the same day. Cross-day
// targets leave the itinerary unchanged.
func (h *ItineraryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.SourceID == "" || req.TargetID == "" {
		writeError(w, r, http.StatusBadRequest, "source_id and target_id are required")
		return
	}

	h.Controller.ReorderWithinDay(req.SourceID, req.TargetID)
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// Move reassigns an entry to another day.
func (h *ItineraryHandler) Move(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.MoveToDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ID == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	h.Controller.MoveToDay(req.ID, req.Day)
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// Optimize reorders a day's stops using the nearest-neighbor heuristic.
func (h *ItineraryHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.OptimizeDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Day == "" {
		writeError(w, r, http.StatusBadRequest, "day is required")
		return
	}

	h.Controller.OptimizeDay(req.Day)
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// Focus emits a route-focus event for the leg ending at the given position.
func (h *ItineraryHandler) Focus(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.FocusLegRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Day == "" {
		writeError(w, r, http.StatusBadRequest, "day is required")
		return
	}

	h.Controller.FocusLeg(r.Context(), req.Index, req.Day)
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ItineraryHandler) snapshot() dto.ItineraryResponse {
	entries := h.Controller.Entries()

	byDay := make(map[string][]dto.EntryResponse)
	for _, e := range entries {
		byDay[e.Date] = append(byDay[e.Date], toEntryResponse(e))
	}

	legs := make(map[string]dto.LegResponse)
	for key, leg := range h.Controller.Legs() {
		legs[key] = dto.LegResponse{DistanceKm: leg.DistanceKm, DurationHr: leg.DurationHr}
	}

	return dto.ItineraryResponse{
		ActiveDay: h.Controller.ActiveDay(),
		Days:      h.Controller.Days(),
		Buckets:   byDay,
		Legs:      legs,
	}
}

func toEntryResponse(e domain.ItineraryEntry) dto.EntryResponse {
	er := dto.EntryResponse{
		ID:       e.ID,
		Title:    e.Title,
		Location: e.Location,
		Date:     e.Date,
		Time:     e.Time,
		Duration: e.Duration,
		Type:     string(e.Type),
		Notes:    e.Notes,
	}
	if e.Coords != nil {
		er.Coords = &dto.CoordinatesDTO{Lat: e.Coords.Lat, Lng: e.Coords.Lng}
	}
	return er
}

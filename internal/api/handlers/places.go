package handlers

import (
	"log"
	"net/http"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/ports"
)

// PlaceHandler exposes read-only catalog retrieval endpoints.
type PlaceHandler struct {
	Catalog ports.CatalogSource
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	places, err := h.Catalog.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		pr := dto.PlaceResponse{
			PlaceID:  p.ID,
			Name:     p.Name,
			Category: p.Category,
		}
		if p.Coords != nil {
			lat, lng := p.Coords.Lat, p.Coords.Lng
			pr.Lat, pr.Lng = &lat, &lng
		}
		res.Places = append(res.Places, pr)
	}

	writeJSON(w, r, http.StatusOK, res)
}

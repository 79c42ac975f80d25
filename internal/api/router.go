package api

import (
	"net/http"

	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	controller *services.Controller,
	estimator *services.Estimator,
	catalog ports.CatalogSource,
) http.Handler {
	mux := http.NewServeMux()

	placeHandler := &handlers.PlaceHandler{Catalog: catalog}
	itinHandler := &handlers.ItineraryHandler{
		Controller: controller,
		Catalog:    catalog,
	}
	estHandler := &handlers.EstimateHandler{Estimator: estimator}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/places", placeHandler.List)
	mux.HandleFunc("/itinerary", itinHandler.Snapshot)
	mux.HandleFunc("/itinerary/entries", itinHandler.Add)
	mux.HandleFunc("/itinerary/blank", itinHandler.AddBlank)
	mux.HandleFunc("/itinerary/remove", itinHandler.Remove)
	mux.HandleFunc("/itinerary/reorder", itinHandler.Reorder)
	mux.HandleFunc("/itinerary/move", itinHandler.Move)
	mux.HandleFunc("/itinerary/optimize", itinHandler.Optimize)
	mux.HandleFunc("/itinerary/focus", itinHandler.Focus)
	mux.HandleFunc("/estimate", estHandler.Estimate)

	return loggingMiddleware(mux)
}

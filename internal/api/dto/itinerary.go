package dto

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type EntryResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Location string          `json:"location"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Duration string          `json:"duration"`
	Type     string          `json:"type"`
	Coords   *CoordinatesDTO `json:"coords,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

type LegResponse struct {
	DistanceKm float64 `json:"distance_km"`
	DurationHr float64 `json:"duration_hr"`
}

type ItineraryResponse struct {
	ActiveDay string                     `json:"active_day"`
	Days      []string                   `json:"days"`
	Buckets   map[string][]EntryResponse `json:"buckets"`
	Legs      map[string]LegResponse     `json:"legs"`
}

type AddEntryRequest struct {
	PlaceID string `json:"place_id"`
}

type AddBlankRequest struct {
	Day string `json:"day"`
}

type RemoveEntryRequest struct {
	ID string `json:"id"`
}

type ReorderRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

type MoveToDayRequest struct {
	ID  string `json:"id"`
	Day string `json:"day"`
}

type OptimizeDayRequest struct {
	Day string `json:"day"`
}

type FocusLegRequest struct {
	Day   string `json:"day"`
	Index int    `json:"index"`
}

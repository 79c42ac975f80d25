package dto

type EstimateRequest struct {
	From CoordinatesDTO `json:"from"`
	To   CoordinatesDTO `json:"to"`
	Mode string         `json:"mode"`
}

type EstimateResponse struct {
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	DurationHr float64 `json:"duration_hr"`
	Fare       float64 `json:"fare"`
}

package dto

type PlaceResponse struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

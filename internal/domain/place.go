package domain

// Place is a catalog record offered to the user for selection. The itinerary
// only reads places; the catalog owns them.
type Place struct {
	ID       string
	Name     string
	Category string
	Coords   *Coordinates
}

// RouteFocus describes one leg the map display should render: the preceding
// stop (or the trip-level origin) and the focused stop. FromCoords may be nil
// when the preceding stop has no coordinates.
type RouteFocus struct {
	FromLabel  string
	FromCoords *Coordinates
	ToLabel    string
	ToCoords   Coordinates
}

package domain

// Leg is the last-known travel estimate between two consecutive same-day
// entries. Legs are derived data, keyed by the adjacent pair of entry IDs,
// and are never computed across day boundaries.
type Leg struct {
	DistanceKm float64
	DurationHr float64
}

// LegEstimate is the output of a single point-to-point estimation. Fare is
// only populated for simulated modes; live routing modes carry no fare model.
type LegEstimate struct {
	DistanceKm float64
	DurationHr float64
	Fare       float64
}

// LegKey builds the cache key for an adjacent entry pair. Entry IDs never
// contain the delimiter, so keys cannot collide for distinct pairs.
func LegKey(predecessorID, successorID string) string {
	return predecessorID + "->" + successorID
}

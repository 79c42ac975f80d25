package domain

// EntryType categorizes an itinerary entry. It is informational only and
// never drives routing behavior.
type EntryType string

const (
	EntryFlight    EntryType = "flight"
	EntryHotel     EntryType = "hotel"
	EntryActivity  EntryType = "activity"
	EntryTransport EntryType = "transport"
	EntryTransit   EntryType = "transit"
)

// ItineraryEntry is a single stop in the trip plan.
//
// IDs are unique across the whole itinerary and stable across reorders.
// Date is an ISO calendar day key (YYYY-MM-DD) and determines which day
// bucket the entry belongs to. Time and Duration are free-text display
// fields; they are never parsed.
type ItineraryEntry struct {
	ID       string
	Title    string
	Location string
	Date     string
	Time     string
	Duration string
	Type     EntryType
	Coords   *Coordinates
	Notes    string
}

// Positioned reports whether the entry carries coordinates. Entries without
// coordinates still render in their day but are excluded from leg
// computation and reordering.
func (e *ItineraryEntry) Positioned() bool { return e.Coords != nil }

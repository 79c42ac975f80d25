package services

import (
	"context"
	"log"
	"sync"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"

	"github.com/google/uuid"
)

// Controller owns the canonical itinerary entry collection and orchestrates
// grouping, sequencing and leg recomputation. All mutation goes through its
// methods; the day buckets and the leg cache are derived views and must never
// be mutated by callers directly.
//
// Mutations are synchronous under one mutex. Leg recomputation is the only
// suspending operation: each trigger runs on its own goroutine against a
// snapshot of the affected day, and a later recomputation's results overwrite
// earlier ones unconditionally (last-writer-wins, no generation counters).
type Controller struct {
	mu        sync.Mutex
	entries   []*domain.ItineraryEntry
	activeDay string

	originLabel  string
	originCoords *domain.Coordinates

	legs *LegCache
	sink ports.TripStateSink

	now   func() time.Time
	newID func() string

	wg sync.WaitGroup
}

func NewController(legs *LegCache, sink ports.TripStateSink) *Controller {
	c := &Controller{
		legs:  legs,
		sink:  sink,
		now:   time.Now,
		newID: uuid.NewString,
	}
	c.activeDay = c.today()
	return c
}

// SetOrigin records the trip-level starting point used as the "from" endpoint
// when the first stop of a day is focused.
func (c *Controller) SetOrigin(label string, coords *domain.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.originLabel = label
	if coords != nil {
		cp := *coords
		c.originCoords = &cp
	} else {
		c.originCoords = nil
	}
}

func (c *Controller) today() string {
	return c.now().Format("2006-01-02")
}

// ensureDay resolves a possibly missing day key to a concrete one. Entries
// lacking a date default to the current day at creation time.
func (c *Controller) ensureDay(day string) string {
	if day == "" {
		return c.today()
	}
	return day
}

// AddFromCatalog inserts a new entry derived from a catalog place into the
// active day. Adding a place whose ID is already present is a no-op; the
// return value reports whether an entry was inserted.
func (c *Controller) AddFromCatalog(place domain.Place) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.ID == place.ID {
			return false
		}
	}

	day := c.ensureDay(c.activeDay)

	entry := &domain.ItineraryEntry{
		ID:       place.ID,
		Title:    place.Name,
		Location: place.Category,
		Date:     day,
		Time:     "Anytime",
		Duration: "-",
		Type:     domain.EntryActivity,
	}
	if place.Coords != nil {
		cp := *place.Coords
		entry.Coords = &cp
	}

	c.entries = append(c.entries, entry)
	c.reselectActiveDay()
	c.scheduleRecompute(day)
	return true
}

// AddBlank inserts a placeholder entry with a generated unique ID and no
// coordinates into the given day.
func (c *Controller) AddBlank(day string) domain.ItineraryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &domain.ItineraryEntry{
		ID:       c.newID(),
		Title:    "New Activity",
		Location: "Custom",
		Date:     c.ensureDay(day),
		Time:     "Anytime",
		Duration: "-",
		Type:     domain.EntryActivity,
	}
	c.entries = append(c.entries, entry)
	c.reselectActiveDay()
	return *entry
}

// Remove deletes the entry, signals the removal to the trip-state
// collaborator, and triggers leg recomputation for the entry's former day.
// Removing an unknown ID is a no-op.
func (c *Controller) Remove(ctx context.Context, id string) {
	c.mu.Lock()

	idx := -1
	for i, e := range c.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return
	}

	day := c.entries[idx].Date
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
	c.reselectActiveDay()
	c.scheduleRecompute(day)
	c.mu.Unlock()

	if err := c.sink.PlaceRemoved(ctx, id); err != nil {
		log.Printf("trip-state removal signal failed id=%s err=%v", id, err)
	}
}

// ReorderWithinDay moves the source entry to just before the target entry's
// position. The operation is restricted to same-day pairs; a cross-day drag
// target is rejected as a no-op to preserve the day-partition invariant.
func (c *Controller) ReorderWithinDay(sourceID, targetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sourceID == targetID {
		return
	}

	var src, tgt *domain.ItineraryEntry
	srcIdx := -1
	for i, e := range c.entries {
		switch e.ID {
		case sourceID:
			src = e
			srcIdx = i
		case targetID:
			tgt = e
		}
	}
	if src == nil || tgt == nil || src.Date != tgt.Date {
		return
	}

	c.entries = append(c.entries[:srcIdx], c.entries[srcIdx+1:]...)

	tgtIdx := 0
	for i, e := range c.entries {
		if e.ID == targetID {
			tgtIdx = i
			break
		}
	}

	c.entries = append(c.entries, nil)
	copy(c.entries[tgtIdx+1:], c.entries[tgtIdx:])
	c.entries[tgtIdx] = src

	c.scheduleRecompute(src.Date)
}

// MoveToDay reassigns an entry's date and triggers recomputation for the
// destination day. The source day's legs stay stale until its own next
// recomputation.
func (c *Controller) MoveToDay(id, newDay string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	day := c.ensureDay(newDay)
	for _, e := range c.entries {
		if e.ID == id {
			e.Date = day
			c.reselectActiveDay()
			c.scheduleRecompute(day)
			return
		}
	}
}

// OptimizeDay reorders one day's stops with the nearest-neighbor heuristic
// and triggers leg recomputation for that day. Days with fewer than 3
// positioned entries are left untouched.
func (c *Controller) OptimizeDay(day string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := GroupByDay(c.entries)[day]
	positioned := 0
	for _, e := range bucket {
		if e.Positioned() {
			positioned++
		}
	}
	if positioned < 3 {
		return
	}

	reordered := NearestNeighborOrder(bucket)

	// Rebuild the canonical collection: entries of other days keep their
	// relative order, the optimized day moves to the tail. Day grouping is
	// unaffected since buckets are keyed by date.
	next := make([]*domain.ItineraryEntry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Date != day {
			next = append(next, e)
		}
	}
	c.entries = append(next, reordered...)

	c.scheduleRecompute(day)
}

// FocusLeg resolves the leg ending at the given position of a day's order and
// emits a route-focus event for the map display. The "from" endpoint is the
// preceding entry, or the trip-level origin when the first entry is focused.
// Entries without coordinates cannot be focused; out-of-range positions and
// unpositioned targets are no-ops.
func (c *Controller) FocusLeg(ctx context.Context, index int, day string) {
	c.mu.Lock()

	bucket := GroupByDay(c.entries)[day]
	if index < 0 || index >= len(bucket) {
		c.mu.Unlock()
		return
	}

	to := bucket[index]
	if !to.Positioned() {
		c.mu.Unlock()
		return
	}

	focus := domain.RouteFocus{
		FromLabel: c.originLabel,
		ToLabel:   to.Title,
		ToCoords:  *to.Coords,
	}
	if focus.FromLabel == "" {
		focus.FromLabel = "Start"
	}
	if c.originCoords != nil {
		cp := *c.originCoords
		focus.FromCoords = &cp
	}
	if index > 0 {
		prev := bucket[index-1]
		focus.FromLabel = prev.Title
		focus.FromCoords = nil
		if prev.Coords != nil {
			cp := *prev.Coords
			focus.FromCoords = &cp
		}
	}
	c.mu.Unlock()

	if err := c.sink.RouteFocused(ctx, focus); err != nil {
		log.Printf("route focus signal failed day=%s index=%d err=%v", day, index, err)
	}
}

// SetActiveDay switches the day the controller inserts catalog selections
// into.
func (c *Controller) SetActiveDay(day string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeDay = c.ensureDay(day)
}

func (c *Controller) ActiveDay() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeDay
}

// Days returns the sorted day keys currently present in the itinerary.
func (c *Controller) Days() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SortedDayKeys(GroupByDay(c.entries))
}

// Entries returns a value-copy snapshot of the canonical collection.
func (c *Controller) Entries() []domain.ItineraryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyEntries(c.entries)
}

// DayEntries returns a value-copy snapshot of one day's ordered entries.
func (c *Controller) DayEntries(day string) []domain.ItineraryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyEntries(GroupByDay(c.entries)[day])
}

// Leg returns the last-known estimate for an adjacent entry pair.
func (c *Controller) Leg(predecessorID, successorID string) (domain.Leg, bool) {
	return c.legs.Get(predecessorID, successorID)
}

// Legs returns a snapshot of the whole leg cache.
func (c *Controller) Legs() map[string]domain.Leg {
	return c.legs.Snapshot()
}

// Wait blocks until all in-flight leg recomputations have finished. Used by
// tests and shutdown; normal operation never waits.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// reselectActiveDay keeps the active day valid after membership changes: if
// its last entry was removed the first available day is selected, or none
// when the itinerary is empty. Callers must hold c.mu.
func (c *Controller) reselectActiveDay() {
	buckets := GroupByDay(c.entries)
	if len(buckets) == 0 {
		c.activeDay = ""
		return
	}
	if _, ok := buckets[c.activeDay]; ok {
		return
	}
	c.activeDay = SortedDayKeys(buckets)[0]
}

// scheduleRecompute snapshots the day's current order and refreshes its legs
// on a separate goroutine. The trigger is fire-and-forget: an in-flight pass
// for a day that is mutated again is not cancelled, and its results merge
// into the cache whenever they arrive. Callers must hold c.mu.
func (c *Controller) scheduleRecompute(day string) {
	snapshot := GroupByDay(c.entries)[day]
	frozen := make([]*domain.ItineraryEntry, 0, len(snapshot))
	for _, e := range snapshot {
		cp := *e
		if e.Coords != nil {
			coords := *e.Coords
			cp.Coords = &coords
		}
		frozen = append(frozen, &cp)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.legs.Recompute(context.Background(), frozen)
	}()
}

func copyEntries(entries []*domain.ItineraryEntry) []domain.ItineraryEntry {
	out := make([]domain.ItineraryEntry, 0, len(entries))
	for _, e := range entries {
		cp := *e
		if e.Coords != nil {
			coords := *e.Coords
			cp.Coords = &coords
		}
		out = append(out, cp)
	}
	return out
}

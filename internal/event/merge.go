package event

// Dataset is a persisted collection of valid events. Insertion order is
// preserved so repeated runs with unchanged content write byte-identical
// files.
type Dataset struct {
	events []Event
	index  map[string]int // Key() -> position in events
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		index: make(map[string]int),
	}
}

// Add inserts evt under its natural key: a known key is overwritten in
// place, a new key is appended.
func (d *Dataset) Add(evt Event) {
	if pos, ok := d.index[evt.Key()]; ok {
		d.events[pos] = evt
		return
	}
	d.index[evt.Key()] = len(d.events)
	d.events = append(d.events, evt)
}

// Events returns the events in insertion order. The returned slice is
// shared with the dataset and must not be mutated.
func (d *Dataset) Events() []Event {
	return d.events
}

// Len returns the number of events in the dataset.
func (d *Dataset) Len() int {
	return len(d.events)
}

// Get looks up an event by its natural key.
func (d *Dataset) Get(key string) (Event, bool) {
	pos, ok := d.index[key]
	if !ok {
		return Event{}, false
	}
	return d.events[pos], true
}

// Merge reconciles a freshly scraped batch against the stored dataset.
// The existing entries seed the result (last-write-wins should the store
// somehow contain duplicate keys), then each incoming valid event lands
// under its key in batch order: known keys are overwritten, new keys
// appended. Nothing is ever deleted, so screenings that drop off the live
// page stay in history. Re-running with unchanged live content reproduces
// the same dataset.
func Merge(existing *Dataset, incoming []Event) *Dataset {
	merged := NewDataset()
	if existing != nil {
		for _, evt := range existing.Events() {
			merged.Add(evt)
		}
	}
	for _, evt := range incoming {
		if !evt.Valid() {
			continue
		}
		merged.Add(evt)
	}
	return merged
}

// VenueProjection returns the subset of the dataset whose venue exactly
// matches the given canonical name. Unrecognized venue strings never
// appear in any projection; they live only in the combined dataset.
func (d *Dataset) VenueProjection(venue string) *Dataset {
	projection := NewDataset()
	for _, evt := range d.events {
		if evt.Venue == venue {
			projection.Add(evt)
		}
	}
	return projection
}

package event

import (
	"reflect"
	"testing"
)

func sampleDataset() *Dataset {
	ds := NewDataset()
	ds.Add(Event{Title: "Film A", Date: "5/7", Time: "20:00", Venue: VenueLumiton, Description: "A"})
	ds.Add(Event{Title: "Film B", Date: "6/7", Time: "19:00", Venue: VenueYork})
	ds.Add(Event{Title: "Film C", Date: "7/7", Time: "", Venue: VenueMunro})
	return ds
}

func TestMergeAppendsNewKeys(t *testing.T) {
	existing := sampleDataset()
	incoming := []Event{
		{Title: "Film D", Date: "8/7", Time: "21:00", Venue: VenueLumiton},
	}

	merged := Merge(existing, incoming)

	if merged.Len() != 4 {
		t.Fatalf("merged.Len() = %d, expected 4", merged.Len())
	}
	if _, ok := merged.Get("8/7|21:00|" + VenueLumiton); !ok {
		t.Error("new event missing from merged dataset")
	}
	// Nothing is deleted: every pre-existing event survives.
	for _, evt := range existing.Events() {
		if _, ok := merged.Get(evt.Key()); !ok {
			t.Errorf("existing event %q dropped by merge", evt.Key())
		}
	}
}

func TestMergeOverwritesByKey(t *testing.T) {
	existing := sampleDataset()
	incoming := []Event{
		{Title: "Film A", Date: "5/7", Time: "20:00", Venue: VenueLumiton, Description: "B"},
	}

	merged := Merge(existing, incoming)

	if merged.Len() != existing.Len() {
		t.Fatalf("merged.Len() = %d, expected %d", merged.Len(), existing.Len())
	}
	got, ok := merged.Get("5/7|20:00|" + VenueLumiton)
	if !ok {
		t.Fatal("overwritten event missing from merged dataset")
	}
	if got.Description != "B" {
		t.Errorf("Description = %q, expected %q (later-seen wins)", got.Description, "B")
	}
	// Overwriting preserves the original position.
	if merged.Events()[0].Description != "B" {
		t.Error("overwritten event should stay at its original position")
	}
}

func TestMergeIdempotent(t *testing.T) {
	existing := sampleDataset()
	incoming := []Event{
		{Title: "Film A", Date: "5/7", Time: "20:00", Venue: VenueLumiton, Description: "updated"},
		{Title: "Film E", Date: "9/7", Time: "20:30", Venue: VenueYork},
	}

	once := Merge(existing, incoming)
	twice := Merge(once, incoming)

	if !reflect.DeepEqual(once.Events(), twice.Events()) {
		t.Errorf("merge is not idempotent:\nonce:  %+v\ntwice: %+v", once.Events(), twice.Events())
	}
}

func TestMergeNilExisting(t *testing.T) {
	incoming := []Event{
		{Title: "Film A", Date: "5/7", Time: "20:00", Venue: VenueLumiton},
	}

	merged := Merge(nil, incoming)
	if merged.Len() != 1 {
		t.Errorf("merged.Len() = %d, expected 1", merged.Len())
	}
}

func TestMergeSkipsInvalidEvents(t *testing.T) {
	incoming := []Event{
		{Title: "", Date: "5/7", Time: "20:00", Venue: VenueLumiton},
		{Title: "Film A", Date: "6/7", Time: "20:00", Venue: ""},
		{Title: "Film B", Date: "7/7", Time: "20:00", Venue: VenueYork},
	}

	merged := Merge(NewDataset(), incoming)
	if merged.Len() != 1 {
		t.Fatalf("merged.Len() = %d, expected 1", merged.Len())
	}
	if merged.Events()[0].Title != "Film B" {
		t.Errorf("surviving event = %q, expected %q", merged.Events()[0].Title, "Film B")
	}
}

func TestVenueProjection(t *testing.T) {
	combined := sampleDataset()
	combined.Add(Event{Title: "Film X", Date: "10/7", Time: "20:00", Venue: "Teatro Colon"})

	for _, venue := range Venues {
		projection := combined.VenueProjection(venue)
		for _, evt := range projection.Events() {
			if evt.Venue != venue {
				t.Errorf("projection for %q contains venue %q", venue, evt.Venue)
			}
			// Subset property: every projected event exists in the
			// combined dataset, field for field.
			got, ok := combined.Get(evt.Key())
			if !ok || got != evt {
				t.Errorf("projected event %+v not present in combined dataset", evt)
			}
		}
	}

	if got := combined.VenueProjection(VenueLumiton).Len(); got != 1 {
		t.Errorf("Lumiton projection Len() = %d, expected 1", got)
	}

	// Unknown venues stay in the combined dataset but never project.
	for _, venue := range Venues {
		for _, evt := range combined.VenueProjection(venue).Events() {
			if evt.Venue == "Teatro Colon" {
				t.Error("unknown venue leaked into a per-venue projection")
			}
		}
	}
	if _, ok := combined.Get("10/7|20:00|Teatro Colon"); !ok {
		t.Error("unknown venue missing from combined dataset")
	}
}

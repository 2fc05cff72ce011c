package event

import "strings"

// Fields lists the persisted field names in CSV column order.
var Fields = []string{"title", "date", "time", "venue", "url", "description"}

// Event represents a single film screening scraped from the agenda page.
type Event struct {
	Title       string
	Date        string // raw day/month text as scraped, e.g. "20/6"
	Time        string // optional "HH:MM", empty when not published
	Venue       string // canonical venue name, or raw text if unrecognized
	URL         string
	Description string
}

// Key returns the natural identity of the event: raw date text, raw time
// text and normalized venue. Two events with equal keys are the same
// screening occurrence seen on different scrape runs. The key is textual,
// not resolved, so it stays stable across years.
func (e Event) Key() string {
	return e.Date + "|" + e.Time + "|" + e.Venue
}

// Valid reports whether the event carries the required fields. Events
// missing a title or venue are dropped, never persisted as partial records.
func (e Event) Valid() bool {
	return strings.TrimSpace(e.Title) != "" && strings.TrimSpace(e.Venue) != ""
}

// Record returns the event's persisted values in Fields order.
func (e Event) Record() []string {
	return []string{e.Title, e.Date, e.Time, e.Venue, e.URL, e.Description}
}

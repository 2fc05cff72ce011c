package event

import "strings"

// Canonical venue names as they appear in persisted datasets.
const (
	VenueLumiton = "Lumiton"
	VenueYork    = "Cine York"
	VenueMunro   = "Centro Cultural Munro"
)

// Venues lists every canonical venue, in the order their per-venue
// datasets and calendars are written.
var Venues = []string{VenueLumiton, VenueYork, VenueMunro}

// venueAliases maps a distinguishing substring to a canonical venue name.
// Entries are checked top to bottom against the lowercased input; order
// matters because labels like "Lumiton Sala York" must resolve to Cine
// York, not Lumiton.
var venueAliases = []struct {
	substr string
	name   string
}{
	{"york", VenueYork},
	{"munro", VenueMunro},
	{"lumiton", VenueLumiton},
}

// NormalizeVenue maps a raw venue label to its canonical name. Unknown
// labels pass through verbatim so venue naming drift on the site never
// silently drops events.
func NormalizeVenue(raw string) string {
	lower := strings.ToLower(raw)
	for _, a := range venueAliases {
		if strings.Contains(lower, a.substr) {
			return a.name
		}
	}
	return raw
}

// VenueSlug returns the file-name form of a venue name,
// e.g. "Cine York" -> "cine_york".
func VenueSlug(venue string) string {
	return strings.ReplaceAll(strings.ToLower(venue), " ", "_")
}

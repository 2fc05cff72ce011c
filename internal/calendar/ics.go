package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/smazzone/lumiton-agenda/internal/event"
	"github.com/smazzone/lumiton-agenda/internal/logger"
)

const (
	prodID = "-//Lumiton Agenda//lumiton.ar//"

	// DefaultTime is assumed for screenings without a published time.
	DefaultTime = "20:00"

	// Duration is the assumed length of every screening.
	Duration = 2 * time.Hour
)

// Generate renders a dataset as an iCalendar payload named name. Every
// screening gets a start instant resolved in loc (with now as the rollover
// reference), a fixed two-hour span, and a stable UID derived from the
// start time, venue and truncated title. Lines are LF-terminated.
func Generate(ds *event.Dataset, name string, now time.Time, loc *time.Location) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\n")
	ics.WriteString("VERSION:2.0\n")
	ics.WriteString("PRODID:" + prodID + "\n")
	ics.WriteString("CALSCALE:GREGORIAN\n")
	ics.WriteString("X-WR-CALNAME:" + escapeICS(name) + "\n")
	ics.WriteString("X-WR-TIMEZONE:" + event.TimezoneName + "\n")
	ics.WriteString("X-WR-CALDESC:" + escapeICS("Film screenings from Lumiton - "+name) + "\n")

	for _, evt := range ds.Events() {
		writeEvent(&ics, evt, now, loc)
	}

	ics.WriteString("END:VCALENDAR\n")
	return ics.String()
}

// writeEvent appends one VEVENT. A date or time that fails to parse falls
// back to now with a logged diagnostic; the screening still renders.
func writeEvent(ics *strings.Builder, evt event.Event, now time.Time, loc *time.Location) {
	timeStr := evt.Time
	if timeStr == "" {
		timeStr = DefaultTime
	}

	start, err := event.ResolveStart(evt.Date, timeStr, now, loc)
	if err != nil {
		logger.Warn("using current time for unparseable schedule", logger.Fields{
			"title": evt.Title,
			"date":  evt.Date,
			"time":  evt.Time,
			"error": err.Error(),
		})
	}
	end := start.Add(Duration)

	ics.WriteString("BEGIN:VEVENT\n")
	fmt.Fprintf(ics, "UID:%s\n", buildUID(start, evt))
	fmt.Fprintf(ics, "DTSTAMP:%s\n", start.UTC().Format("20060102T150405Z"))
	fmt.Fprintf(ics, "DTSTART;TZID=%s:%s\n", event.TimezoneName, start.Format("20060102T150405"))
	fmt.Fprintf(ics, "DTEND;TZID=%s:%s\n", event.TimezoneName, end.Format("20060102T150405"))
	fmt.Fprintf(ics, "SUMMARY:%s\n", escapeICS(evt.Title))
	if desc := buildDescription(evt); desc != "" {
		fmt.Fprintf(ics, "DESCRIPTION:%s\n", escapeICS(desc))
	}
	if evt.Venue != "" {
		fmt.Fprintf(ics, "LOCATION:%s\n", escapeICS(evt.Venue))
	}
	if evt.URL != "" {
		fmt.Fprintf(ics, "URL:%s\n", evt.URL)
	}
	ics.WriteString("STATUS:CONFIRMED\n")
	ics.WriteString("END:VEVENT\n")
}

// buildUID constructs the globally-unique event identifier from the
// resolved start, the venue and the first 20 characters of the title.
func buildUID(start time.Time, evt event.Event) string {
	title := evt.Title
	if r := []rune(title); len(r) > 20 {
		title = string(r[:20])
	}
	return fmt.Sprintf("%s-%s-%s@lumiton.ar",
		start.Format("200601021504"),
		strings.ReplaceAll(evt.Venue, " ", "-"),
		strings.ReplaceAll(title, " ", "-"))
}

// buildDescription aggregates the description text, venue and detail link.
func buildDescription(evt event.Event) string {
	var parts []string
	if evt.Description != "" {
		parts = append(parts, evt.Description)
	}
	if evt.Venue != "" {
		parts = append(parts, "\nVenue: "+evt.Venue)
	}
	if evt.URL != "" {
		parts = append(parts, "\nMore info: "+evt.URL)
	}
	return strings.Join(parts, "\n")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

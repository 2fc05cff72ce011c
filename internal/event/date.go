package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimezoneName is the civil timezone all screening times are expressed in.
const TimezoneName = "America/Argentina/Buenos_Aires"

// Location returns the Buenos Aires location. When the host has no tzdata
// it falls back to a fixed UTC-3 zone; the region observes no daylight
// saving transitions, so the fallback is exact.
func Location() *time.Location {
	loc, err := time.LoadLocation(TimezoneName)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// ResolveYear infers the year of a yearless day/month pair. The agenda
// never lists past screenings, so a (month, day) strictly before today's
// under month-then-day comparison is assumed to recur next year.
func ResolveYear(day, month int, now time.Time) int {
	if month < int(now.Month()) || (month == int(now.Month()) && day < now.Day()) {
		return now.Year() + 1
	}
	return now.Year()
}

// ResolveStart turns a raw "d/m" date and an optional "HH:MM" time into a
// concrete instant in loc. now supplies both the rollover reference and
// the fallback: when either fragment fails to parse, ResolveStart returns
// now in loc together with the parse error so the caller can log the
// diagnostic and keep going instead of aborting the run.
func ResolveStart(dateStr, timeStr string, now time.Time, loc *time.Location) (time.Time, error) {
	day, month, year, err := parseDate(dateStr, now)
	if err != nil {
		return now.In(loc), err
	}

	hour, minute := 0, 0
	if timeStr != "" {
		hour, minute, err = parseClock(timeStr)
		if err != nil {
			return now.In(loc), err
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), nil
}

// parseDate parses "d/m" or "d/m/yyyy". The two-part form gets its year
// from ResolveYear.
func parseDate(s string, now time.Time) (day, month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", s)
	}

	day, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", s)
	}
	month, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", s)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("date %q out of range", s)
	}

	if len(parts) == 3 {
		year, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("unrecognized date %q", s)
		}
	} else {
		year = ResolveYear(day, month, now)
	}

	return day, month, year, nil
}

// parseClock parses "HH:MM", tolerating an "hs" suffix as printed on the
// site ("20:00hs").
func parseClock(s string) (hour, minute int, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "hs", "")
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unrecognized time %q", s)
	}

	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("unrecognized time %q", s)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("unrecognized time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}

	return hour, minute, nil
}

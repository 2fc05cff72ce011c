// Package scraper provides HTTP fetching and HTML parsing for the Lumiton
// agenda page.
//
// The scraper fetches the public agenda page from lumiton.ar and extracts one
// screening per event-like fragment. Detection prefers article elements and
// falls back to keyword class matching because the site's markup has changed
// shape over time. Every per-fragment field extraction is independent and
// best-effort; a fragment only yields an event when both a title and a venue
// were found. When a fragment carries a detail link but no time, the scraper
// issues one extra fetch against the detail page to recover the screening
// time.
package scraper

// Package event provides the screening record model for the Lumiton agenda.
//
// The event package handles venue normalization, yearless date resolution with
// rollover inference, and the merge engine that reconciles freshly scraped
// batches with the stored dataset. Each event is identified by a natural key
// derived from its raw date text, raw time text and normalized venue, enabling
// reliable deduplication across scrape runs.
package event

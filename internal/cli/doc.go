// Package cli implements the command-line interface for lumiton-agenda.
//
// The cli package provides the Cobra-based CLI with three commands: scrape
// (fetch the agenda page and merge new screenings into the stored datasets),
// calendar (render the stored datasets as ICS files), and run (the full
// pipeline). It coordinates the scraper, event, storage and calendar packages.
package cli

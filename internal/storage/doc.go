// Package storage provides CSV persistence for screening datasets.
//
// The storage package manages the row-oriented dataset files that carry
// screening history across runs: one combined file for all venues
// (all_events.csv) and one file per canonical venue (lumiton.csv and so on).
// Files are UTF-8 with LF-only line endings and a fixed header. Writes go
// through a temp file and rename so a concurrent reader never observes a
// partial dataset.
package storage

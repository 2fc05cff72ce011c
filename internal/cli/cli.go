package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smazzone/lumiton-agenda/internal/calendar"
	"github.com/smazzone/lumiton-agenda/internal/event"
	"github.com/smazzone/lumiton-agenda/internal/logger"
	"github.com/smazzone/lumiton-agenda/internal/scraper"
	"github.com/smazzone/lumiton-agenda/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir      string
	flagCalendarsDir string
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lumiton-agenda",
		Short: "Scrape the Lumiton film agenda and publish it as calendars",
		Long: `A CLI tool that extracts film screenings from lumiton.ar, merges them
into per-venue CSV datasets, and renders those datasets as ICS calendar files.
Screenings accumulate across runs; events that drop off the live page stay in
the datasets.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "Directory for CSV datasets")
	cmd.PersistentFlags().StringVar(&flagCalendarsDir, "calendars-dir", "calendars", "Directory for generated ICS files")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newScrapeCmd(), newCalendarCmd(), newRunCmd())

	return cmd
}

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the agenda page and merge new screenings into the datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape()
		},
	}
}

func newCalendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Render the stored datasets as ICS calendar files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar()
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: scrape, then render calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runScrape(); err != nil {
				return err
			}
			return runCalendar()
		},
	}
}

// runScrape drives fetch, extract, merge and persist.
func runScrape() error {
	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New()
	logger.Info("fetching agenda page", logger.Fields{"url": scraper.AgendaURL})

	batch, err := sc.FetchEvents()
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	logger.Info("parsed events", logger.Fields{"count": len(batch)})

	if len(batch) == 0 {
		fmt.Println("No events to save.")
		return nil
	}

	existing := store.Load(store.CombinedPath())
	merged := event.Merge(existing, batch)
	if err := store.Save(store.CombinedPath(), merged); err != nil {
		return fmt.Errorf("saving combined dataset: %w", err)
	}
	fmt.Printf("Saved combined dataset to %s (total: %d, scraped: %d)\n",
		store.CombinedPath(), merged.Len(), len(batch))

	// Per-venue files are always projections of the merged combined
	// dataset, so they can never diverge from it in content.
	for _, venue := range event.Venues {
		projection := merged.VenueProjection(venue)
		if projection.Len() == 0 {
			continue
		}
		path := store.VenuePath(venue)
		if err := store.Save(path, projection); err != nil {
			return fmt.Errorf("saving %s dataset: %w", venue, err)
		}
		fmt.Printf("Saved %s dataset to %s (total: %d)\n", venue, path, projection.Len())
	}

	return nil
}

// runCalendar drives persist-to-render: every stored dataset becomes one
// ICS file.
func runCalendar() error {
	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	if err := os.MkdirAll(flagCalendarsDir, 0755); err != nil {
		return fmt.Errorf("creating calendars directory: %w", err)
	}

	now := time.Now()
	loc := event.Location()

	combined := store.Load(store.CombinedPath())
	if combined.Len() > 0 {
		path := filepath.Join(flagCalendarsDir, "all_events.ics")
		if err := writeCalendar(path, combined, "Lumiton - All Events", now, loc); err != nil {
			return err
		}
		fmt.Printf("Generated combined calendar with %d events\n", combined.Len())
	}

	for _, venue := range event.Venues {
		ds := store.Load(store.VenuePath(venue))
		if ds.Len() == 0 {
			continue
		}
		path := filepath.Join(flagCalendarsDir, event.VenueSlug(venue)+".ics")
		if err := writeCalendar(path, ds, "Lumiton - "+venue, now, loc); err != nil {
			return err
		}
		fmt.Printf("Generated %s calendar with %d events\n", venue, ds.Len())
	}

	return nil
}

func writeCalendar(path string, ds *event.Dataset, name string, now time.Time, loc *time.Location) error {
	payload := calendar.Generate(ds, name, now, loc)
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		return fmt.Errorf("writing calendar %s: %w", path, err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

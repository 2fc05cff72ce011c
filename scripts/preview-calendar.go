package main

import (
	"fmt"
	"os"
	"time"

	"github.com/smazzone/lumiton-agenda/internal/calendar"
	"github.com/smazzone/lumiton-agenda/internal/event"
)

func main() {
	// Create a sample dataset
	ds := event.NewDataset()
	ds.Add(event.Event{
		Title:       "La Mujer de las Camelias",
		Date:        "20/6",
		Time:        "19:30",
		Venue:       event.VenueYork,
		URL:         "https://lumiton.ar/evento/la-mujer-de-las-camelias/",
		Description: "Copia restaurada en 35mm.",
	})
	ds.Add(event.Event{
		Title: "Noche de cine al aire libre",
		Date:  "5/7",
		Venue: event.VenueMunro,
	})

	icsContent := calendar.Generate(ds, "Lumiton - Preview", time.Now(), event.Location())

	filename := "preview-lumiton.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by importing it into Google Calendar, Apple Calendar, or Outlook.")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}

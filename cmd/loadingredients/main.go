// Command loadingredients loads the ingredient catalog from a JSON file
// into the database. Entries whose name and measurement unit are already
// present are skipped. Meant to run once at provisioning time.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/joho/godotenv"
)

type ingredientEntry struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func main() {
	path := flag.String("file", "data/ingredients.json", "path to the ingredient catalog")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(*path)

	if err != nil {
		log.Fatalf("Failed to read %s: %v", *path, err)
	}

	var entries []ingredientEntry

	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Failed to parse %s: %v", *path, err)
	}

	created := 0

	for _, entry := range entries {
		if entry.Name == "" || entry.MeasurementUnit == "" {
			log.Printf("Skipping entry with empty name or unit: %+v", entry)
			continue
		}

		ingredient := models.Ingredient{
			Name:            entry.Name,
			MeasurementUnit: entry.MeasurementUnit,
		}

		result := db.DB.Where(
			"name = ? AND measurement_unit = ?",
			entry.Name, entry.MeasurementUnit,
		).FirstOrCreate(&ingredient)

		if result.Error != nil {
			log.Fatalf("Failed to load ingredient %q: %v", entry.Name, result.Error)
		}

		if result.RowsAffected > 0 {
			created++
		}
	}

	log.Printf("Loaded %d ingredients (%d new, %d already present)", len(entries), created, len(entries)-created)
}

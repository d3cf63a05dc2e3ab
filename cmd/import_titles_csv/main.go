package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/database"
	"github.com/artikelsmederij/artikel-generator-api/pkg/titleimport"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	csvPath := flag.String("csv", "", "pad naar de titel-CSV (eerste rij is header)")
	ownerID := flag.String("owner", "", "user-id van de eigenaar (optioneel)")
	dryRun := flag.Bool("dry-run", false, "alleen tellen, niets wegschrijven")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	dbcon := "postgres://" +
		os.Getenv("DB_USERNAME") + ":" +
		os.Getenv("DB_PASSWORD") + "@" +
		os.Getenv("DB_HOSTNAME") + "/" +
		os.Getenv("DB_DBNAME")
	db, err := database.Connect(dbcon)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	result, err := titleimport.ImportCSV(context.Background(), db, titleimport.Options{
		CSVPath: *csvPath,
		OwnerID: *ownerID,
		DryRun:  *dryRun,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("processed=%d inserted=%d skipped=%d", result.Processed, result.Inserted, result.Skipped)
}

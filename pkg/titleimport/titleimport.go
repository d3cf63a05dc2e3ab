package titleimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/repositories"
	"gorm.io/gorm"
)

type Logger interface {
	Printf(format string, v ...any)
}

type Options struct {
	CSVPath string
	OwnerID string
	DryRun  bool
	Logger  Logger
}

type Result struct {
	Processed int
	Inserted  int
	Skipped   int
}

// Parse leest een éénkoloms titel-CSV. De eerste rij wordt altijd als header
// weggegooid, ook wanneer de data direct begint. Lege rijen en rijen met een
// lege eerste kolom worden overgeslagen; titels worden getrimd.
func Parse(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var titles []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		title := strings.TrimSpace(record[0])
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// ImportCSV leest het bestand en maakt per titel een pending artikel aan, in
// één batchtransactie. Bedoeld voor de offline import-CLI.
func ImportCSV(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	if db == nil {
		return Result{}, errors.New("db is nil")
	}
	csvPath := strings.TrimSpace(opts.CSVPath)
	if csvPath == "" {
		return Result{}, errors.New("csv path is empty")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	titles, err := Parse(file)
	if err != nil {
		return Result{}, err
	}

	result := Result{Processed: len(titles)}
	if opts.DryRun {
		logger.Printf("dry-run: would insert %d article(s)", len(titles))
		result.Skipped = len(titles)
		return result, nil
	}

	var ownerID *string
	if opts.OwnerID != "" {
		ownerID = &opts.OwnerID
	}

	repo := repositories.NewArticleRepository(db)
	inserted, err := repo.CreateBatch(ctx, titles, ownerID)
	if err != nil {
		return result, fmt.Errorf("failed to insert articles: %w", err)
	}
	result.Inserted = inserted
	return result, nil
}

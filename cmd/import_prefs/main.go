// Command import_prefs loads visitor preferences from a CSV export into the
// preference database. Each row is visitor_id,name,value; a header row is
// optional. Theme rows naming an unknown theme are skipped.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitrine/internal/config"
	"vitrine/internal/db"
	applog "vitrine/internal/log"
	"vitrine/internal/prefs"
	"vitrine/internal/theme"
)

type record struct {
	line      int
	visitorID string
	name      string
	value     string
}

type summary struct {
	imported int
	skipped  int
}

func main() {
	csvPath := "preferences.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := readCSV(f)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(cfg.Database.URL) == "" {
		return errors.New("DATABASE_URL must be set")
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ctx := context.Background()
	result, err := importRecords(ctx, database, theme.Builtin(), records)
	if err != nil {
		return err
	}
	applog.Info(ctx, "preference import finished", "imported", result.imported, "skipped", result.skipped)
	fmt.Printf("Imported %d preferences (%d skipped)\n", result.imported, result.skipped)
	return nil
}

func readCSV(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(rows))
	for idx, row := range rows {
		if idx == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "visitor_id") {
			continue
		}
		records = append(records, record{
			line:      idx + 1,
			visitorID: strings.TrimSpace(row[0]),
			name:      strings.TrimSpace(row[1]),
			value:     strings.TrimSpace(row[2]),
		})
	}
	return records, nil
}

func importRecords(ctx context.Context, database *gorm.DB, catalog *theme.Catalog, records []record) (summary, error) {
	var result summary
	for _, rec := range records {
		if reason := rejectReason(catalog, rec); reason != "" {
			applog.Warn(ctx, "skipping preference row", "line", rec.line, "reason", reason)
			result.skipped++
			continue
		}

		err := database.Transaction(func(tx *gorm.DB) error {
			store, err := prefs.NewDatabase(tx, rec.visitorID)
			if err != nil {
				return err
			}
			return store.Set(ctx, rec.name, rec.value)
		})
		if err != nil {
			return result, fmt.Errorf("line %d: store preference %q: %w", rec.line, rec.name, err)
		}
		result.imported++
	}
	return result, nil
}

func rejectReason(catalog *theme.Catalog, rec record) string {
	if _, err := uuid.Parse(rec.visitorID); err != nil {
		return "invalid visitor id"
	}
	if rec.name == "" {
		return "missing preference name"
	}
	if rec.name == theme.PreferenceKey && !catalog.Contains(rec.value) {
		return "unknown theme"
	}
	return ""
}

package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"salesboard/internal/config"
	"salesboard/internal/core"
	applog "salesboard/internal/log"
	"salesboard/internal/storage"
)

// salesboard-import loads a raw sales report CSV into the SQLite record
// store. Values are stored as-is, text dates included; the server's
// startup migration and normalizer take it from there.
func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentImport)
	applog.SetDefault(logger)

	csvPath := flag.String("csv", "", "path to the sales report CSV (required)")
	batchSize := flag.Int("batch", 500, "rows per insert transaction")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: salesboard-import -csv <file> [-batch n]")
		os.Exit(2)
	}

	cfg := config.Load()

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open record store", applog.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx := context.Background()
	total, err := importCSV(ctx, repo, *csvPath, *batchSize)
	if err != nil {
		logger.Error("Import failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Import completed", applog.FieldRows, total, "path", *csvPath)
}

func importCSV(ctx context.Context, repo *storage.SQLiteRepository, path string, batchSize int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	cols := core.MapHeader(header)

	if batchSize < 1 {
		batchSize = 1
	}

	total := 0
	batch := make([]core.RawOrder, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := repo.InsertOrders(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read csv record: %w", err)
		}
		batch = append(batch, cols.Row(rec))
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}

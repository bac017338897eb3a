package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oleg578/hdrcsv"
)

// lineColumn holds the source line number of every ingested row.
const lineColumn = "source_line"

// ErrWideRow is returned when a row has more fields than the header names.
var ErrWideRow = errors.New("row has more fields than header")

// Store wraps a SQLite database opened through gorm.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the ingest_runs table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&IngestRun{}); err != nil {
		return nil, fmt.Errorf("migrating ingest_runs: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IngestOptions describes one load.
type IngestOptions struct {
	Source    string
	Table     string
	BatchSize int
}

// Ingest drains r into opts.Table, creating the table when missing. Every
// header column becomes a TEXT column; short rows store NULL for the missing
// fields. All rows are written in one transaction, and the run is recorded in
// ingest_runs whether it succeeds or not.
func (s *Store) Ingest(ctx context.Context, r *hdrcsv.Reader, opts IngestOptions) (*IngestRun, error) {
	table := Ident(opts.Table, "rows")
	cols := ColumnIdents(r.Header())
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	run := &IngestRun{
		ID:        uuid.NewString(),
		Source:    opts.Source,
		Target:    table,
		Columns:   strings.Join(cols, ","),
		Status:    StatusProcessing,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("recording ingest run: %w", err)
	}

	count, err := s.load(ctx, r, table, cols, batchSize)

	now := time.Now()
	run.CompletedAt = &now
	run.RowCount = count
	run.Status = StatusCompleted
	if err != nil {
		run.Status = StatusFailed
		run.RowCount = 0
		run.Error = err.Error()
	}
	// The run row is finalised even if ctx was cancelled mid-load.
	if uerr := s.db.Save(run).Error; uerr != nil && err == nil {
		err = fmt.Errorf("updating ingest run: %w", uerr)
	}
	return run, err
}

func (s *Store) load(ctx context.Context, r *hdrcsv.Reader, table string, cols []string, batchSize int) (int, error) {
	count := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(createTableSQL(table, cols)).Error; err != nil {
			return fmt.Errorf("creating table %s: %w", table, err)
		}

		batch := make([]map[string]interface{}, 0, batchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.Table(table).Create(&batch).Error; err != nil {
				return fmt.Errorf("inserting into %s: %w", table, err)
			}
			count += len(batch)
			batch = batch[:0]
			return nil
		}

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			row, ok := r.ReadRow()
			if !ok {
				break
			}
			if row.Len() > len(cols) {
				return fmt.Errorf("line %d: %w (%d > %d)", r.Line(), ErrWideRow, row.Len(), len(cols))
			}

			rec := make(map[string]interface{}, len(cols)+1)
			rec[lineColumn] = r.Line()
			for i, col := range cols {
				if v, err := row.FieldAt(i); err == nil {
					rec[col] = v
				} else {
					rec[col] = nil
				}
			}
			batch = append(batch, rec)

			if len(batch) == batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		if err := r.Err(); err != nil {
			return fmt.Errorf("reading line %d: %w", r.Line()+1, err)
		}
		return flush()
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func createTableSQL(table string, cols []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %q (%q INTEGER NOT NULL", table, lineColumn)
	for _, col := range cols {
		fmt.Fprintf(&b, ", %q TEXT", col)
	}
	b.WriteString(")")
	return b.String()
}

package export

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/pkg/logger"
)

// Loader inserts a generated dataset into Postgres. Tables are loaded in
// generation order inside one transaction per table, rows batched into
// multi-value inserts.
type Loader struct {
	db        *sql.DB
	logger    logger.Logger
	batchSize int
}

// NewLoader creates a Loader. batchSize is the number of rows per INSERT.
func NewLoader(db *sql.DB, log logger.Logger, batchSize int) (*Loader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("loader batch size must be > 0, got %d", batchSize)
	}
	return &Loader{db: db, logger: log, batchSize: batchSize}, nil
}

// Load inserts every non-empty collection. A failed table rolls back its
// own transaction and aborts the load; previously committed tables stay.
func (l *Loader) Load(ctx context.Context, ds *domain.Dataset) error {
	collections := ds.Collections()

	for _, table := range Tables() {
		records := collections[table.Name]
		if len(records) == 0 {
			continue
		}
		if err := l.loadTable(ctx, table, records); err != nil {
			return fmt.Errorf("failed to load table %s: %w", table.Name, err)
		}
		l.logger.WithFields(map[string]interface{}{
			"table": table.Name,
			"rows":  len(records),
		}).Info("Table loaded")
	}
	return nil
}

func (l *Loader) loadTable(ctx context.Context, table Table, records []any) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(records); start += l.batchSize {
		end := start + l.batchSize
		if end > len(records) {
			end = len(records)
		}

		builder := sq.Insert(table.Name).
			Columns(table.Columns...).
			PlaceholderFormat(sq.Dollar)
		for _, record := range records[start:end] {
			values, err := table.Row(record)
			if err != nil {
				return err
			}
			builder = builder.Values(values...)
		}

		stmt, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("failed to execute insert: %w", err)
		}
	}

	return tx.Commit()
}

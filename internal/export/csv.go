package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/garmio/seedgen/internal/domain"
)

// WriteCSV writes one <collection>.csv per collection into dir, header row
// first. Collections are written concurrently; each file is written by a
// single goroutine.
func WriteCSV(dir string, ds *domain.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	collections := ds.Collections()

	var g errgroup.Group
	for _, table := range Tables() {
		table := table
		g.Go(func() error {
			return writeCSVFile(filepath.Join(dir, table.Name+".csv"), table, collections[table.Name])
		})
	}
	return g.Wait()
}

func writeCSVFile(path string, table Table, records []any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	for _, record := range records {
		values, err := table.Row(record)
		if err != nil {
			return err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatCSVValue(v)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// formatCSVValue renders one cell. Nil pointers become empty cells, which
// is how the loaders downstream expect SQL NULL to appear in CSV.
func formatCSVValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case int:
		return strconv.Itoa(val)
	case *int:
		if val == nil {
			return ""
		}
		return strconv.Itoa(*val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case *float64:
		if val == nil {
			return ""
		}
		return strconv.FormatFloat(*val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}

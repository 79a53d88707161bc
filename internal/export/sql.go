package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/garmio/seedgen/internal/domain"
)

// WriteSQL writes a single seed.sql of batched INSERT statements into dir,
// tables in generation order so foreign keys resolve when the script runs
// top to bottom.
func WriteSQL(dir string, ds *domain.Dataset, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("sql export batch size must be > 0, got %d", batchSize)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, "seed.sql")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	collections := ds.Collections()

	for _, table := range Tables() {
		records := collections[table.Name]
		for start := 0; start < len(records); start += batchSize {
			end := start + batchSize
			if end > len(records) {
				end = len(records)
			}

			builder := sq.Insert(table.Name).Columns(table.Columns...)
			for _, record := range records[start:end] {
				values, err := table.Row(record)
				if err != nil {
					return err
				}
				builder = builder.Values(values...)
			}

			stmt, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
			}
			rendered, err := interpolate(stmt, args)
			if err != nil {
				return fmt.Errorf("failed to render insert for %s: %w", table.Name, err)
			}
			if _, err := w.WriteString(rendered + ";\n"); err != nil {
				return err
			}
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// interpolate substitutes each ? placeholder with its argument rendered as
// a SQL literal. The statement text comes from the builder, never from
// data, so scanning for bare ? runes is safe here.
func interpolate(stmt string, args []any) (string, error) {
	var b strings.Builder
	argIdx := 0
	for _, r := range stmt {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		if argIdx >= len(args) {
			return "", fmt.Errorf("placeholder count exceeds %d arguments", len(args))
		}
		literal, err := renderLiteral(args[argIdx])
		if err != nil {
			return "", err
		}
		b.WriteString(literal)
		argIdx++
	}
	if argIdx != len(args) {
		return "", fmt.Errorf("%d arguments left over after interpolation", len(args)-argIdx)
	}
	return b.String(), nil
}

func renderLiteral(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quoteSQLString(val), nil
	case *string:
		if val == nil {
			return "NULL", nil
		}
		return quoteSQLString(*val), nil
	case int:
		return strconv.Itoa(val), nil
	case *int:
		if val == nil {
			return "NULL", nil
		}
		return strconv.Itoa(*val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case *float64:
		if val == nil {
			return "NULL", nil
		}
		return strconv.FormatFloat(*val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case time.Time:
		return quoteSQLString(val.UTC().Format("2006-01-02 15:04:05.999999+00")), nil
	default:
		return "", fmt.Errorf("cannot render %T as a sql literal", v)
	}
}

func quoteSQLString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

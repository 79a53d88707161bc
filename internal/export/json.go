package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/garmio/seedgen/internal/domain"
)

// WriteNDJSON writes one <collection>.ndjson per collection into dir, one
// JSON object per line using the domain structs' own field tags.
func WriteNDJSON(dir string, ds *domain.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	collections := ds.Collections()

	var g errgroup.Group
	for _, table := range Tables() {
		table := table
		g.Go(func() error {
			return writeNDJSONFile(filepath.Join(dir, table.Name+".ndjson"), collections[table.Name])
		})
	}
	return g.Wait()
}

func writeNDJSONFile(path string, records []any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

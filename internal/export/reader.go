package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hvrdb/internal/config"
	"hvrdb/internal/models"
)

// ReadCSV reads a batch file back into stores of the given source. Header titles are
// mapped to field ids through columns; headers with no matching column are ignored.
func ReadCSV(path string, columns []config.Column, source models.Source) ([]models.Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("export: %s has no header", path)
		}
		return nil, fmt.Errorf("export: failed to read header: %w", err)
	}

	byTitle := make(map[string]string, len(columns))
	for _, c := range columns {
		byTitle[c.Title] = c.ID
	}
	ids := make([]string, len(head))
	for i, title := range head {
		ids[i] = byTitle[title]
	}

	stores := []models.Store{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("export: failed to read record: %w", err)
		}

		s := models.Store{Source: source}
		for i, value := range record {
			if i < len(ids) && ids[i] != "" {
				s.SetField(ids[i], value)
			}
		}
		stores = append(stores, s)
	}

	return stores, nil
}

// BatchFiles lists the csv files written for base in dir: either base.csv or the
// numbered base1.csv, base2.csv, ... in order.
func BatchFiles(dir, base string) ([]string, error) {
	var files []string
	for _, pattern := range []string{base + ".csv", base + "[0-9].csv"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("export: failed to list batches: %w", err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

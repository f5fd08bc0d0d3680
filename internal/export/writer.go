package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"hvrdb/internal/config"
	"hvrdb/internal/models"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const sheetName = "Sheet1"

// Batch is one output file worth of stores.
type Batch struct {
	Name    string
	Columns []config.Column
	Stores  []models.Store
}

// Batches names pipeline output for a dataset. A single part keeps the base name,
// several parts are numbered from 1.
func Batches(base string, columns []config.Column, parts ...[]models.Store) []Batch {
	if len(parts) == 1 {
		return []Batch{{Name: base, Columns: columns, Stores: parts[0]}}
	}
	batches := make([]Batch, len(parts))
	for i, p := range parts {
		batches[i] = Batch{Name: base + strconv.Itoa(i+1), Columns: columns, Stores: p}
	}
	return batches
}

// PrepareDir creates dir if needed and removes batch files left by a previous run.
func PrepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: failed to create %s: %w", dir, err)
	}

	for _, ext := range []string{FormatCSV, FormatXLSX} {
		old, err := filepath.Glob(filepath.Join(dir, "*."+ext))
		if err != nil {
			return fmt.Errorf("export: failed to list %s: %w", dir, err)
		}
		for _, f := range old {
			if err := os.Remove(f); err != nil {
				return fmt.Errorf("export: failed to remove %s: %w", f, err)
			}
		}
	}
	return nil
}

// Writer writes batches into an output directory.
type Writer struct {
	dir    string
	format string
	log    zerolog.Logger
}

// NewWriter creates a writer for the given format (csv or xlsx).
func NewWriter(dir, format string, logger zerolog.Logger) *Writer {
	return &Writer{dir: dir, format: format, log: logger}
}

// Path returns the file a batch is written to.
func (w *Writer) Path(b Batch) string {
	return filepath.Join(w.dir, b.Name+"."+w.format)
}

// WriteAll writes every batch concurrently. Files are independent; the first error is returned.
func (w *Writer) WriteAll(ctx context.Context, batches []Batch) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, b := range batches {
		b := b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := w.Write(b); err != nil {
				return err
			}
			w.log.Info().Str("file", w.Path(b)).Int("records", len(b.Stores)).Msg("batch written")
			return nil
		})
	}
	return g.Wait()
}

// Write writes a single batch.
func (w *Writer) Write(b Batch) error {
	var err error
	switch w.format {
	case FormatCSV:
		err = writeCSV(w.Path(b), b)
	case FormatXLSX:
		err = writeXLSX(w.Path(b), b)
	default:
		err = fmt.Errorf("unsupported format %q", w.format)
	}
	if err != nil {
		return fmt.Errorf("export: failed to write %s: %w", b.Name, err)
	}
	return nil
}

func header(columns []config.Column) []string {
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	return titles
}

func row(s models.Store, columns []config.Column) []string {
	values := make([]string, len(columns))
	for i, c := range columns {
		values[i] = s.Field(c.ID)
	}
	return values
}

func writeCSV(path string, b Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header(b.Columns)); err != nil {
		f.Close()
		return err
	}
	for _, s := range b.Stores {
		if err := cw.Write(row(s, b.Columns)); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeXLSX(path string, b Batch) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	write := func(rowNum int, values []string) error {
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return sw.SetRow(cell, cells)
	}

	if err := write(1, header(b.Columns)); err != nil {
		return err
	}
	for i, s := range b.Stores {
		if err := write(i+2, row(s, b.Columns)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

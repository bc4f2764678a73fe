package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gamrycli/internal/signal"
)

// CombinedWriter flattens signals into one long-format table: per data row a
// record carrying the signal's label, type, selected notes parameters and
// every data column present in any signal.
type CombinedWriter struct {
	logger *slog.Logger
}

// NewCombinedWriter creates a combined-table writer instance.
func NewCombinedWriter(logger *slog.Logger) *CombinedWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CombinedWriter{logger: logger}
}

// Build assembles the header row and data records. paramKeys selects which
// notes parameters become columns; data columns appear in first-seen order
// across the signal list, blank where a signal lacks the column.
func (c *CombinedWriter) Build(signals []signal.Signal, paramKeys []string) ([]string, [][]string) {
	var dataColumns []string
	seen := make(map[string]bool)
	for _, s := range signals {
		for _, name := range s.Table().ColumnNames() {
			if !seen[name] {
				seen[name] = true
				dataColumns = append(dataColumns, name)
			}
		}
	}

	headers := append([]string{"Label", "Type"}, paramKeys...)
	headers = append(headers, dataColumns...)

	var records [][]string
	for _, s := range signals {
		fixed := make([]string, 0, len(paramKeys)+2)
		fixed = append(fixed, s.Label(), string(s.Type()))
		for _, key := range paramKeys {
			fixed = append(fixed, formatParam(s, key))
		}

		table := s.Table()
		for row := 0; row < table.Rows(); row++ {
			record := make([]string, 0, len(headers))
			record = append(record, fixed...)
			for _, name := range dataColumns {
				values := table.Column(name)
				if values == nil {
					record = append(record, "")
					continue
				}
				record = append(record, formatCell(values[row]))
			}
			records = append(records, record)
		}
	}

	return headers, records
}

// WriteCSV writes the combined table as UTF-8 CSV with a BOM prefix so
// spreadsheet tools pick up the encoding.
func (c *CombinedWriter) WriteCSV(path string, signals []signal.Signal, paramKeys []string) error {
	headers, records := c.Build(signals, paramKeys)

	c.logger.Info("writing combined CSV",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes the combined table as a single-sheet XLSX workbook.
func (c *CombinedWriter) WriteXLSX(path string, signals []signal.Signal, paramKeys []string) error {
	headers, records := c.Build(signals, paramKeys)

	c.logger.Info("writing combined workbook",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Combined"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// formatParam renders one notes parameter for a signal, empty when absent.
func formatParam(s signal.Signal, key string) string {
	v, ok := s.Params().Get(key)
	if !ok {
		return ""
	}
	if v.IsText {
		return v.Text
	}
	if v.Unit != "" {
		return fmt.Sprintf("%s %s", formatCell(v.Number), v.Unit)
	}
	return formatCell(v.Number)
}

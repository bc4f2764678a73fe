package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gamrycli/internal/signal"
	"gamrycli/pkg/contracts/domain"
)

// ZViewWriter exports impedance spectra in the layout third-party
// impedance-analysis tools import.
type ZViewWriter struct {
	logger *slog.Logger
}

// NewZViewWriter creates a ZView writer instance.
func NewZViewWriter(logger *slog.Logger) *ZViewWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ZViewWriter{logger: logger}
}

// Write renders all EIS-type signals in the list to w, one block per
// signal: a label line, the point count, then tab-separated
// frequency/real/imaginary rows. Non-EIS signals are ignored.
func (z *ZViewWriter) Write(w io.Writer, signals []signal.Signal) error {
	exported := 0
	for _, s := range signals {
		if s.Type() != domain.SignalTypeEISPOT && s.Type() != domain.SignalTypeEISMON {
			continue
		}
		if err := z.writeBlock(w, s); err != nil {
			return fmt.Errorf("exporting signal %s: %w", s.Label(), err)
		}
		exported++
	}

	z.logger.Info("wrote impedance export",
		slog.Int("signals", exported),
		slog.Int("ignored", len(signals)-exported))
	return nil
}

// WriteFile is Write to a file path, creating parent directories.
func (z *ZViewWriter) WriteFile(path string, signals []signal.Signal) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := z.Write(f, signals); err != nil {
		return err
	}
	return f.Close()
}

func (z *ZViewWriter) writeBlock(w io.Writer, s signal.Signal) error {
	table := s.Table()
	freq := table.Column("Freq")
	re := table.Column("Re(Z)")
	im := table.Column("Im(Z)")
	if freq == nil || re == nil || im == nil {
		return fmt.Errorf("table is missing impedance columns")
	}

	if _, err := fmt.Fprintf(w, "%s\n%d\n", s.Label(), len(freq)); err != nil {
		return err
	}
	for i := range freq {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
			formatCell(freq[i]), formatCell(re[i]), formatCell(im[i]))
		if err != nil {
			return err
		}
	}
	return nil
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Package validation provides filesystem checks shared by the command-line
// tools: signal folders must exist and contain export files, output
// directories must be creatable and writable.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DTAPattern is the glob matching instrument export files.
const DTAPattern = "*.[Dd][Tt][Aa]"

// FileValidator provides filesystem validation for the command-line tools.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateSignalDirectory checks that dir exists and reports how many export
// files it holds. An empty directory is not an error, just nothing to do.
func (v *FileValidator) ValidateSignalDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("signal directory %s does not exist", dir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, DTAPattern))
	if err != nil {
		return fmt.Errorf("failed to scan %s for export files: %w", dir, err)
	}
	if len(matches) == 0 {
		v.logger.Warn("no export files found in signal directory",
			slog.String("directory", dir))
		return nil
	}

	v.logger.Info("signal directory validated",
		slog.String("directory", dir),
		slog.Int("files_found", len(matches)))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists (creating it
// if needed) and is writable.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	f.Close()
	os.Remove(probe)
	return nil
}

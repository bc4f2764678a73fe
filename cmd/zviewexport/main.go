// Command zviewexport batch-parses a folder of impedance-spectroscopy
// export files and writes them as one ZView-compatible file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gamrycli/internal/config"
	"gamrycli/internal/exporter"
	"gamrycli/internal/files"
	"gamrycli/internal/infrastructure"
	"gamrycli/internal/signal"
	"gamrycli/internal/validation"
	"gamrycli/pkg/contracts"
	"gamrycli/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", "", "input directory with .DTA files (defaults to configured signals dir)")
	outFile := flag.String("out", "", "output file (defaults to export.z in the configured reports dir)")
	label := flag.String("label", "", "only export signals whose label contains this substring")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closer, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	if *inDir == "" {
		*inDir = cfg.Paths.SignalsDir
	}
	if *outFile == "" {
		*outFile = filepath.Join(cfg.Paths.ReportsDir, "export.z")
	}

	if err := validation.NewFileValidator(logger).ValidateSignalDirectory(*inDir); err != nil {
		logger.Error("input validation failed", "error", err)
		os.Exit(1)
	}

	loader := files.NewLoader(logger, cfg.Parsing.Workers)
	signals, err := loader.LoadSignals(context.Background(), *inDir, signal.Options{
		TypeFilter:           domain.SignalTypeEISPOT,
		Area:                 cfg.Parsing.DefaultArea,
		ReferenceCapacitance: cfg.Parsing.ReferenceCapacitance,
		Logger:               logger,
	})
	if err != nil {
		logger.Error("batch load failed", "error", err)
		os.Exit(1)
	}

	if *label != "" {
		signals = signal.Filter(signals, signal.FilterOptions{Label: *label})
	}
	if len(signals) == 0 {
		logger.Warn("no impedance signals matched", slog.String("directory", *inDir))
		return
	}

	if err := exporter.NewZViewWriter(logger).WriteFile(*outFile, signals); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	logger.Info("export complete",
		slog.Int("signals", len(signals)),
		slog.String("output", *outFile))
}

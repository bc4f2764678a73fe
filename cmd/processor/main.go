// Command processor batch-parses a folder of instrument export files and
// writes the combined long-format table for downstream analysis.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

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
	outDir := flag.String("out", "", "output directory for reports (defaults to configured reports dir)")
	typeFilter := flag.String("type", "", "only load signals of this type (EISPOT, EISMON, CV, CPC)")
	area := flag.Float64("area", 0, "electrode area in cm2 applied to all signals (default from config)")
	skipNotes := flag.Bool("skip-notes", false, "skip notes parsing; signals carry no params")
	paramList := flag.String("params", "", "comma-separated notes keys to include as combined-table columns")
	writeXLSX := flag.Bool("xlsx", false, "also write the combined table as an XLSX workbook")
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
	if *outDir == "" {
		*outDir = cfg.Paths.ReportsDir
	}
	if *area == 0 {
		*area = cfg.Parsing.DefaultArea
	}
	if *typeFilter != "" && !domain.SignalType(*typeFilter).Valid() {
		logger.Error("unknown signal type", slog.String("type", *typeFilter))
		os.Exit(1)
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateSignalDirectory(*inDir); err != nil {
		logger.Error("input validation failed", "error", err)
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("output validation failed", "error", err)
		os.Exit(1)
	}

	loader := files.NewLoader(logger, cfg.Parsing.Workers)
	signals, err := loader.LoadSignals(context.Background(), *inDir, signal.Options{
		TypeFilter:           domain.SignalType(*typeFilter),
		SkipNotes:            *skipNotes,
		Area:                 *area,
		ReferenceCapacitance: cfg.Parsing.ReferenceCapacitance,
		Logger:               logger,
	})
	if err != nil {
		logger.Error("batch load failed", "error", err)
		os.Exit(1)
	}
	if len(signals) == 0 {
		logger.Warn("no signals matched", slog.String("directory", *inDir))
		return
	}

	for _, s := range signals {
		if eis, ok := s.(*signal.EISPOT); ok {
			logCorner(logger, eis)
		}
	}

	var paramKeys []string
	for _, key := range strings.Split(*paramList, ",") {
		if key = strings.ToLower(strings.TrimSpace(key)); key != "" {
			paramKeys = append(paramKeys, key)
		}
	}

	combined := exporter.NewCombinedWriter(logger)
	csvPath := filepath.Join(*outDir, "combined.csv")
	if err := combined.WriteCSV(csvPath, signals, paramKeys); err != nil {
		logger.Error("combined CSV export failed", "error", err)
		os.Exit(1)
	}
	if *writeXLSX {
		xlsxPath := filepath.Join(*outDir, "combined.xlsx")
		if err := combined.WriteXLSX(xlsxPath, signals, paramKeys); err != nil {
			logger.Error("combined workbook export failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("processing complete",
		slog.Int("signals", len(signals)),
		slog.String("output", csvPath))
}

func logCorner(logger *slog.Logger, eis *signal.EISPOT) {
	db := eis.DBCorner()
	phase := eis.PhaseCorner()
	if !db.Found && !phase.Found {
		logger.Warn("no corner frequency found",
			slog.String("label", eis.Label()))
		return
	}
	logger.Info("corner frequencies",
		slog.String("label", eis.Label()),
		slog.Float64("rs_ohm", eis.Rs()),
		slog.Bool("db_found", db.Found),
		slog.Float64("db_freq_hz", db.Freq),
		slog.Bool("phase_found", phase.Found),
		slog.Float64("phase_freq_hz", phase.Freq))
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/bietkhonhungvandi212/pagesim/internal/config"
	"github.com/bietkhonhungvandi212/pagesim/internal/logger"
	"github.com/bietkhonhungvandi212/pagesim/internal/memory/sim"
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	"github.com/bietkhonhungvandi212/pagesim/internal/trace"
)

const usage = "usage: pagesim [flags] <frame_size> <input_file> <output_file> [produce_csv]"

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("pagesim failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pagesim", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "JSON config file")
	interval := fs.Int("interval", 0, "references between fault-rate samples")
	logLevel := fs.String("log-level", "", "DEBUG, INFO, WARN or ERROR")
	logFile := fs.String("log-file", "", "also write logs to this file")
	csvFile := fs.String("csv-file", "", "CSV report path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := applyArgs(cfg, fs.Args()); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			cfg.IntervalSize = *interval
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		case "csv-file":
			cfg.CSVFile = *csvFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logger.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	refs, err := trace.Load(cfg.InputFile)
	if err != nil {
		return err
	}
	log.Info("trace loaded", "path", cfg.InputFile, "format", trace.FormatOf(cfg.InputFile).String(), "references", len(refs))

	engine, err := sim.NewEngine(cfg.Options(), log)
	if err != nil {
		return err
	}
	runs, err := engine.RunAll(refs)
	if err != nil {
		return err
	}

	table := report.Table{FrameSize: cfg.FrameSize, IntervalSize: cfg.IntervalSize, Runs: runs}
	if err := report.AppendFile(cfg.OutputFile, func(w io.Writer) error { return report.WriteText(w, table) }); err != nil {
		return err
	}
	if cfg.ProduceCSV {
		if err := report.AppendFile(cfg.CSVFile, func(w io.Writer) error { return report.WriteCSV(w, table) }); err != nil {
			return err
		}
	}

	log.Info("job finished successfully", "output", cfg.OutputFile)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// applyArgs maps the positional arguments onto cfg. Missing trailing
// arguments keep whatever the config file or environment set.
func applyArgs(cfg *config.Config, args []string) error {
	if len(args) > 4 {
		return fmt.Errorf("too many arguments\n%s", usage)
	}
	if len(args) > 0 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("frame size %q: %w", args[0], err)
		}
		cfg.FrameSize = size
	}
	if len(args) > 1 {
		cfg.InputFile = args[1]
	}
	if len(args) > 2 {
		cfg.OutputFile = args[2]
	}
	if len(args) > 3 {
		cfg.ProduceCSV = args[3] == "1"
	}
	return nil
}

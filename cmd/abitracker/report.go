package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/obentoo/abitracker/internal/common/config"
	"github.com/obentoo/abitracker/internal/common/logger"
	"github.com/obentoo/abitracker/internal/common/output"
	"github.com/obentoo/abitracker/internal/common/pacman"
	"github.com/obentoo/abitracker/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	reportLog           string
	reportFormat        string
	reportList          bool
	reportSkipMalformed bool
	reportLogFile       bool
)

func init() {
	rootCmd.Flags().StringVarP(&reportLog, "log", "l", config.DefaultLogPath, "Pacman log to read")
	rootCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Report format: text, json, yaml or toml")
	rootCmd.Flags().BoolVar(&reportList, "list", false, "List every package upgraded today before the summary")
	rootCmd.Flags().BoolVar(&reportSkipMalformed, "skip-malformed", false, "Skip malformed lines instead of aborting (they are not counted)")
	rootCmd.Flags().BoolVar(&reportLogFile, "log-file", false, "Also write diagnostics to the abitracker log file")
}

func runReport(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	if cfg.Log.FileLogging {
		if err := logger.Default().EnableFileLogging(cfg.Log.File); err != nil {
			logger.Warn("file logging disabled: %v", err)
		}
		defer logger.Default().Close()
	}

	if err := report(os.Stdout, os.Stderr, cfg, time.Now); err != nil {
		logger.Error("%v", err)
		logger.Default().Close()
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log") {
		cfg.Log.Path = reportLog
	}
	if flags.Changed("format") {
		cfg.Report.Format = reportFormat
	}
	if flags.Changed("list") {
		cfg.Report.List = reportList
	}
	if flags.Changed("skip-malformed") {
		cfg.Report.SkipMalformed = reportSkipMalformed
	}
	if flags.Changed("log-file") {
		cfg.Log.FileLogging = reportLogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// --verbose and --quiet win over the configured level
	if !verbose && !quiet {
		level, _ := cfg.LogLevel()
		logger.SetLevel(level)
	}
	return cfg, nil
}

// report reads the configured log and writes today's report to w.
// Nothing is written to w unless the whole log was processed. Lines skipped
// with SkipMalformed are listed on errW after the report.
func report(w, errW io.Writer, cfg *config.Config, now func() time.Time) error {
	format, err := tracker.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	path, err := cfg.GetLogPath()
	if err != nil {
		return err
	}

	logger.Debug("Reading %s", path)
	text, err := pacman.ReadLog(path)
	if err != nil {
		return err
	}

	result, err := tracker.Run(text, tracker.Options{
		FilterOptions: []pacman.FilterOption{
			pacman.WithNow(now),
			pacman.WithLocation(loc),
		},
		SkipMalformed: cfg.Report.SkipMalformed,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tracker.WriteReport(&buf, result, tracker.WriteOptions{
		Format: format,
		List:   cfg.Report.List,
	}); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}

	if skipped := result.SkippedError(); skipped != nil {
		output.PrintWarning(errW, "%d malformed line(s) skipped and not counted:", len(result.Skipped))
		for _, msg := range strings.Split(skipped.Error(), "\n") {
			output.PrintErrorDetail(errW, msg)
		}
	}
	return nil
}

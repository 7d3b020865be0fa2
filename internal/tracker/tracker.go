// Package tracker turns a pacman log into today's upgrade statistics.
//
// The pipeline is: filter today's upgrade lines, parse each into a
// pacman.Package, then aggregate the packages into Statistics.
//
// Usage:
//
//	text, err := pacman.ReadLog(pacman.DefaultLogPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := tracker.Run(text, tracker.Options{})
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/obentoo/abitracker/internal/common/logger"
	"github.com/obentoo/abitracker/internal/common/output"
	"github.com/obentoo/abitracker/internal/common/pacman"
)

// Options configures a Run
type Options struct {
	// FilterOptions are passed to pacman.NewFilter
	FilterOptions []pacman.FilterOption
	// SkipMalformed skips lines that fail to parse instead of aborting.
	// Skipped lines are not counted and are listed in Result.Skipped.
	SkipMalformed bool
	// Logger receives diagnostics, logger.Default() when nil
	Logger *logger.Logger
}

// LineError reports a log line that could not be used
type LineError struct {
	Line int // 1-based line number in the log
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of a Run
type Result struct {
	Date     time.Time
	Packages []pacman.Package
	Stats    Statistics
	Skipped  []*LineError
}

// Run filters text for today's upgrades and aggregates them.
// Without SkipMalformed the first bad line aborts the run and no result is returned.
func Run(text string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	filter := pacman.NewFilter(opts.FilterOptions...)
	result := &Result{Date: filter.Today()}
	log.Debug("Counting upgrades dated %s", result.Date.Format(time.DateOnly))

	for line, err := range filter.Lines(text) {
		if err == nil {
			var pkg pacman.Package
			if pkg, err = pacman.ParsePackage(line.Text); err == nil {
				log.Debug("%s %s", pkg, output.ClassLabel(pkg.Rebuilt()))
				result.Packages = append(result.Packages, pkg)
				continue
			}
		}

		lineErr := &LineError{Line: line.Number, Text: line.Text, Err: err}
		if !opts.SkipMalformed {
			return nil, lineErr
		}
		log.Debug("Skipping %v", lineErr)
		result.Skipped = append(result.Skipped, lineErr)
	}

	result.Stats = Aggregate(result.Packages)
	return result, nil
}

// SkippedError joins the errors of every skipped line, one per line of its
// message, or returns nil when none were skipped
func (r *Result) SkippedError() error {
	if len(r.Skipped) == 0 {
		return nil
	}
	errs := make([]error, len(r.Skipped))
	for i, e := range r.Skipped {
		errs[i] = e
	}
	return errors.Join(errs...)
}

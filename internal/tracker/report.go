package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/obentoo/abitracker/internal/common/output"
	"github.com/obentoo/abitracker/internal/common/pacman"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown report format: must be text, json, yaml or toml")

// Format selects how a report is written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat converts a format name into a Format.
// An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrUnknownFormat, name)
}

// Summary returns the one-line report. It starts with pacman.ReportMarker so
// the line is ignored if it ever ends up in the log.
func Summary(stats Statistics) string {
	return fmt.Sprintf("%s Packages upgraded today had %d legitimate upgrades, versus %d that had to be rebuilt due to other packages",
		pacman.ReportMarker,
		stats.Changed,
		stats.Rebuilt,
	)
}

// Report is the machine-readable form of a Result
type Report struct {
	Date     string        `json:"date" yaml:"date" toml:"date"`
	Changed  uint64        `json:"changed" yaml:"changed" toml:"changed"`
	Rebuilt  uint64        `json:"rebuilt" yaml:"rebuilt" toml:"rebuilt"`
	Total    uint64        `json:"total" yaml:"total" toml:"total"`
	Skipped  int           `json:"skipped,omitempty" yaml:"skipped,omitempty" toml:"skipped,omitempty"`
	Packages []ReportEntry `json:"packages" yaml:"packages" toml:"packages"`
}

// ReportEntry describes one upgraded package
type ReportEntry struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Before  string `json:"before" yaml:"before" toml:"before"`
	After   string `json:"after" yaml:"after" toml:"after"`
	Rebuilt bool   `json:"rebuilt" yaml:"rebuilt" toml:"rebuilt"`
}

// NewReport builds the machine-readable form of r
func NewReport(r *Result) *Report {
	rep := &Report{
		Date:     r.Date.Format(time.DateOnly),
		Changed:  r.Stats.Changed,
		Rebuilt:  r.Stats.Rebuilt,
		Total:    r.Stats.Total(),
		Skipped:  len(r.Skipped),
		Packages: make([]ReportEntry, 0, len(r.Packages)),
	}
	for _, pkg := range r.Packages {
		rep.Packages = append(rep.Packages, ReportEntry{
			Name:    pkg.Name,
			Before:  pkg.Before.String(),
			After:   pkg.After.String(),
			Rebuilt: pkg.Rebuilt(),
		})
	}
	return rep
}

// WriteOptions controls WriteReport
type WriteOptions struct {
	Format Format
	// List prints every package before the summary in text format
	List bool
}

// WriteReport writes r to w in the requested format
func WriteReport(w io.Writer, r *Result, opts WriteOptions) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, r, opts.List)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewReport(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(r)); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(NewReport(r))
	}
	return fmt.Errorf("%w: got %q", ErrUnknownFormat, opts.Format)
}

func writeText(w io.Writer, r *Result, list bool) error {
	if list && len(r.Packages) > 0 {
		title := fmt.Sprintf("Upgrades on %s", r.Date.Format(time.DateOnly))
		if _, err := fmt.Fprintln(w, output.Heading(title)); err != nil {
			return err
		}
		for _, pkg := range r.Packages {
			line := output.FormatClass(pkg.Rebuilt()) + " " +
				output.FormatUpgrade(pkg.Name, pkg.Before.String(), pkg.After.String())
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, Summary(r.Stats))
	return err
}

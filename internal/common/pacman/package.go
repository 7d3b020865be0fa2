package pacman

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidUpgradeLine = errors.New("invalid line, expected `upgraded`, the name of the package, its prior version and its new version")

// upgradeRegex matches: upgraded name (before -> after)
var upgradeRegex = regexp.MustCompile(`upgraded\s*([^\s]+)\s*\(([^\s]+)\s*->\s*([^\s]+)\)`)

// Package is a single upgrade event read from the log
type Package struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Before Version `json:"before" yaml:"before" toml:"before"`
	After  Version `json:"after" yaml:"after" toml:"after"`
}

// ParsePackage extracts the package name and both versions from an upgrade line.
// Expected format: [timestamp] [ALPM] upgraded name (before -> after)
func ParsePackage(line string) (Package, error) {
	matches := upgradeRegex.FindStringSubmatch(line)
	if matches == nil {
		return Package{}, fmt.Errorf("%w: %q", ErrInvalidUpgradeLine, line)
	}

	name := matches[1]
	before, err := ParseVersion(matches[2])
	if err != nil {
		return Package{}, fmt.Errorf("package %s: %w", name, err)
	}
	after, err := ParseVersion(matches[3])
	if err != nil {
		return Package{}, fmt.Errorf("package %s: %w", name, err)
	}

	return Package{
		Name:   name,
		Before: before,
		After:  after,
	}, nil
}

// Rebuilt reports whether the upgrade only bumped the release number
func (p Package) Rebuilt() bool {
	return p.Before.Equal(p.After)
}

// String returns "name (before -> after)"
func (p Package) String() string {
	return p.Name + " (" + p.Before.String() + " -> " + p.After.String() + ")"
}

package tracker

import (
	"github.com/obentoo/abitracker/internal/common/pacman"
)

// Statistics counts today's upgrades by class
type Statistics struct {
	// Changed counts packages whose version text changed
	Changed uint64 `json:"changed" yaml:"changed" toml:"changed"`
	// Rebuilt counts packages where only the release number changed
	Rebuilt uint64 `json:"rebuilt" yaml:"rebuilt" toml:"rebuilt"`
}

// Aggregate classifies every package as changed or rebuilt
func Aggregate(pkgs []pacman.Package) Statistics {
	var stats Statistics
	for _, pkg := range pkgs {
		if pkg.Rebuilt() {
			stats.Rebuilt++
		} else {
			stats.Changed++
		}
	}
	return stats
}

// Total returns the number of packages counted
func (s Statistics) Total() uint64 {
	return s.Changed + s.Rebuilt
}

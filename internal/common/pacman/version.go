package pacman

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidVersion = errors.New("invalid version")
	ErrInvalidRelease = errors.New("invalid release number")
)

// Version is a pacman version split into its text and release number.
// "1:2.40-3" becomes Text "1:2.40" and Release 3.
type Version struct {
	Text    string `json:"text" yaml:"text" toml:"text"`          // e.g., "1:2.40", "6.8.arch1"
	Release uint32 `json:"release" yaml:"release" toml:"release"` // e.g., 3
}

// ParseVersion splits a version token at its first dash into text and release.
// Returns ErrInvalidVersion when the token has no dash and ErrInvalidRelease
// when the part after the dash is not an unsigned integer.
func ParseVersion(s string) (Version, error) {
	text, release, ok := strings.Cut(s, "-")
	if !ok {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	rel, err := strconv.ParseUint(release, 10, 32)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidRelease, s)
	}

	return Version{Text: text, Release: uint32(rel)}, nil
}

// Equal reports whether two versions share the same text.
// The release number is ignored so a rebuild compares equal to its original.
func (v Version) Equal(o Version) bool {
	return v.Text == o.Text
}

// String returns the text-release form
func (v Version) String() string {
	return v.Text + "-" + strconv.FormatUint(uint64(v.Release), 10)
}

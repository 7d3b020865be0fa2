package pacman

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genVersionText generates version texts as pacman writes them (no dashes)
func genVersionText() gopter.Gen {
	texts := []interface{}{
		"1", "1.0", "1.2", "1.3", "2.40", "10.5.1",
		"1:2.40", "2:1.0.0", "6.8.arch1", "1.0rc1",
		"r123.abcdef", "0.1+20240101",
	}
	return gen.OneConstOf(texts...)
}

// genRelease generates release numbers
func genRelease() gopter.Gen {
	return gen.UInt32Range(0, 1000)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantText    string
		wantRelease uint32
		wantErr     error
	}{
		{"simple", "1.2-3", "1.2", 3, nil},
		{"epoch", "1:2.40-1", "1:2.40", 1, nil},
		{"large release", "9.0-42", "9.0", 42, nil},
		{"zero release", "0.1-0", "0.1", 0, nil},
		{"no dash", "noReleaseNumber", "", 0, ErrInvalidVersion},
		{"non-numeric release", "a-b", "", 0, ErrInvalidRelease},
		{"negative release", "1.0--1", "", 0, ErrInvalidRelease},
		{"empty release", "1.0-", "", 0, ErrInvalidRelease},
		{"split on first dash", "1.0-1-2", "", 0, ErrInvalidRelease},
		{"release overflow", "1.0-99999999999", "", 0, ErrInvalidRelease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if v.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", v.Text, tt.wantText)
			}
			if v.Release != tt.wantRelease {
				t.Errorf("Release = %d, want %d", v.Release, tt.wantRelease)
			}
		})
	}
}

func TestVersionEqual(t *testing.T) {
	mustParse := func(s string) Version {
		v, err := ParseVersion(s)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", s, err)
		}
		return v
	}

	if !mustParse("1.2-3").Equal(mustParse("1.2-9")) {
		t.Error("versions with same text and different release should be equal")
	}
	if mustParse("1.2-3").Equal(mustParse("1.3-3")) {
		t.Error("versions with different text should not be equal")
	}
}

// TestPropertyVersionEqualityIgnoresRelease checks that equality depends on text only
func TestPropertyVersionEqualityIgnoresRelease(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("same text is equal whatever the releases", prop.ForAll(
		func(text string, r1, r2 uint32) bool {
			a := Version{Text: text, Release: r1}
			b := Version{Text: text, Release: r2}
			return a.Equal(b) && b.Equal(a)
		},
		genVersionText(),
		genRelease(),
		genRelease(),
	))

	properties.Property("equality matches text comparison", prop.ForAll(
		func(t1, t2 string, r uint32) bool {
			a := Version{Text: t1, Release: r}
			b := Version{Text: t2, Release: r}
			return a.Equal(b) == (t1 == t2)
		},
		genVersionText(),
		genVersionText(),
		genRelease(),
	))

	properties.TestingRun(t)
}

// TestPropertyVersionRoundTrip checks that String() then ParseVersion() is lossless
func TestPropertyVersionRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("String() then ParseVersion() returns the same Version", prop.ForAll(
		func(text string, release uint32) bool {
			original := Version{Text: text, Release: release}
			parsed, err := ParseVersion(original.String())
			if err != nil {
				t.Logf("ParseVersion(%q) failed: %v", original.String(), err)
				return false
			}
			return parsed == original
		},
		genVersionText(),
		genRelease(),
	))

	properties.TestingRun(t)
}

func TestVersionString(t *testing.T) {
	v := Version{Text: "1:2.40", Release: 7}
	if got, want := v.String(), "1:2.40-7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

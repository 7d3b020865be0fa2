package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestClassColorMatchesUpgradeClass checks the ANSI code used for each class
func TestClassColorMatchesUpgradeClass(t *testing.T) {
	color.NoColor = false
	defer NoColor()

	tests := []struct {
		rebuilt  bool
		label    string
		ansiCode string
	}{
		{false, ClassChanged, "\x1b[33m"}, // Yellow
		{true, ClassRebuilt, "\x1b[36m"},  // Cyan
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			formatted := FormatClass(tt.rebuilt)
			if !strings.Contains(formatted, tt.ansiCode) {
				t.Errorf("FormatClass(%v) = %q, want ANSI code %q", tt.rebuilt, formatted, tt.ansiCode)
			}
			if !strings.Contains(formatted, tt.label) {
				t.Errorf("FormatClass(%v) = %q, want label %q", tt.rebuilt, formatted, tt.label)
			}
			if ClassLabel(tt.rebuilt) != tt.label {
				t.Errorf("ClassLabel(%v) = %q, want %q", tt.rebuilt, ClassLabel(tt.rebuilt), tt.label)
			}
		})
	}
}

func TestFormatClassAlignment(t *testing.T) {
	NoColor()

	if len(FormatClass(true)) != len(FormatClass(false)) {
		t.Errorf("class labels should have equal width: %q vs %q", FormatClass(true), FormatClass(false))
	}
}

func TestHeading(t *testing.T) {
	NoColor()

	got := Heading("Upgrades")
	if got != "Upgrades\n--------" {
		t.Errorf("Heading() = %q", got)
	}
}

// TestNoColorDisablesANSICodes checks that nothing is colored once NoColor is set
func TestNoColorDisablesANSICodes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	noANSI := func(s string) bool {
		return !strings.Contains(s, "\x1b[")
	}

	properties.Property("FormatClass contains no ANSI codes when NoColor is set", prop.ForAll(
		func(rebuilt bool) bool {
			NoColor()
			return noANSI(FormatClass(rebuilt))
		},
		gen.Bool(),
	))

	properties.Property("palette contains no ANSI codes when NoColor is set", prop.ForAll(
		func(text string) bool {
			NoColor()
			for _, c := range []*color.Color{Changed, Rebuilt, Warning, Error, Dim, Header, Package} {
				if !noANSI(c.Sprint(text)) {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
	))

	properties.Property("FormatUpgrade keeps name and versions", prop.ForAll(
		func(name, before, after string) bool {
			NoColor()
			formatted := FormatUpgrade(name, before, after)
			return noANSI(formatted) && formatted == name+" "+before+" -> "+after
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestPrintWarningWithDetails(t *testing.T) {
	NoColor()

	var buf bytes.Buffer
	PrintWarning(&buf, "%d malformed line(s) skipped", 2)
	PrintErrorDetail(&buf, "line 3: invalid version")

	want := "⚠ 2 malformed line(s) skipped\n  ✗ line 3: invalid version\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

package pacman

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

// ReportMarker tags every report line this tool prints. Lines carrying it
// are never counted, so a report appended to the log is not read back.
const ReportMarker = "[abitracker]:"

// upgradeKeyword selects the lines describing upgrade events
const upgradeKeyword = "upgraded"

var (
	ErrMissingTimestamp = errors.New("missing bracketed timestamp")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// timestampLayouts lists the timestamp formats pacman has written, newest first.
// The last one carries no offset and is read in the filter's location.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04",
}

// Filter selects the upgrade lines of a log that were written today.
type Filter struct {
	marker   string
	location *time.Location
	nowFunc  func() time.Time
	today    time.Time
}

// FilterOption is a functional option for configuring Filter
type FilterOption func(*Filter)

// WithNow sets the clock used to determine today's date
func WithNow(now func() time.Time) FilterOption {
	return func(f *Filter) {
		f.nowFunc = now
	}
}

// WithLocation sets the time zone in which calendar dates are compared
func WithLocation(loc *time.Location) FilterOption {
	return func(f *Filter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithMarker overrides the report marker used to skip self-written lines
func WithMarker(marker string) FilterOption {
	return func(f *Filter) {
		f.marker = marker
	}
}

// NewFilter creates a Filter. Today's date is fixed here, so every line of a
// run is compared against the same day even across midnight.
func NewFilter(opts ...FilterOption) *Filter {
	f := &Filter{
		marker:   ReportMarker,
		location: time.Local,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.today = f.nowFunc().In(f.location)
	return f
}

// Today returns the reference time the filter compares dates against
func (f *Filter) Today() time.Time {
	return f.today
}

// Line is a log line together with its 1-based position in the log
type Line struct {
	Number int
	Text   string
}

// Lines returns the upgrade lines of text dated today, in input order.
// The sequence can be ranged over any number of times. An upgrade line without
// a valid timestamp is yielded with a non-nil error; callers that stop at the
// first error simply break out of the loop.
func (f *Filter) Lines(text string) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		number := 0
		for line := range strings.Lines(text) {
			number++
			line = strings.TrimRight(line, "\r\n")

			if f.marker != "" && strings.Contains(line, f.marker) {
				continue
			}
			if !strings.Contains(line, upgradeKeyword) {
				continue
			}

			ok, err := f.isToday(line)
			if err != nil {
				if !yield(Line{Number: number, Text: line}, err) {
					return
				}
				continue
			}
			if !ok {
				continue
			}
			if !yield(Line{Number: number, Text: line}, nil) {
				return
			}
		}
	}
}

// isToday reports whether the line's timestamp falls on the filter's date
func (f *Filter) isToday(line string) (bool, error) {
	ts, err := f.ParseTimestamp(line)
	if err != nil {
		return false, err
	}
	return sameDate(ts, f.today), nil
}

// ParseTimestamp reads the timestamp enclosed in the line's first pair of
// brackets and returns it in the filter's location.
func (f *Filter) ParseTimestamp(line string) (time.Time, error) {
	raw, err := extractTimestamp(line)
	if err != nil {
		return time.Time{}, err
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, f.location); err == nil {
			return ts.In(f.location), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q in line %q", ErrInvalidTimestamp, raw, line)
}

// extractTimestamp returns the text between the first '[' and the next ']'
func extractTimestamp(line string) (string, error) {
	start := strings.IndexByte(line, '[')
	if start < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingTimestamp, line)
	}
	end := strings.IndexByte(line[start+1:], ']')
	if end < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingTimestamp, line)
	}
	return line[start+1 : start+1+end], nil
}

// sameDate compares calendar dates, ignoring the time of day
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value holding a calendar date in UTC.
type dateValue struct {
	t   *time.Time
	set bool
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(p *time.Time) *dateValue {
	return &dateValue{t: p}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*d.t = t
	d.set = true
	return nil
}

func (d *dateValue) Type() string { return "date" }

// hourValue is a pflag.Value holding an hour of the day, 0 to 23.
type hourValue int

var _ pflag.Value = (*hourValue)(nil)

func newHourValue(def int, p *int) *hourValue {
	*p = def
	return (*hourValue)(p)
}

func (h *hourValue) String() string { return strconv.Itoa(int(*h)) }

func (h *hourValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 23 {
		return fmt.Errorf("invalid hour %q: expected 0-23", s)
	}
	*h = hourValue(n)
	return nil
}

func (h *hourValue) Type() string { return "hour" }

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// dayFlag converts a one-based day number from the command line into the
// zero-based index the use cases take.
func dayFlag(day int) (int, error) {
	if day < 1 {
		return 0, fmt.Errorf("--day must be 1 or more, got %d", day)
	}
	return day - 1, nil
}

// positiveIndex parses a one-based list position into a zero-based index.
func positiveIndex(s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", what, s)
	}
	return n - 1, nil
}

// splitCSV splits a comma-separated flag value, trimming blanks.
func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

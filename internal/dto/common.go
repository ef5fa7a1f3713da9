package dto

import (
	"fmt"
	"strings"
	"time"
)

// PageResponse wraps one page of a keyset-paginated listing.
type PageResponse[V any] struct {
	Items     []V    `json:"items"`
	NextToken string `json:"nextToken,omitempty"`
}

// ToList converts a slice of domain values with fn. It never returns nil.
func ToList[D, V any](items []D, fn func(D) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func toListOrNil[D, V any](items []D, fn func(D) V) []V {
	if len(items) == 0 {
		return nil
	}
	return ToList(items, fn)
}

func toPtr[D, V any](item *D, fn func(D) V) *V {
	if item == nil {
		return nil
	}
	v := fn(*item)
	return &v
}

// ParseDuration accepts Go durations ("1h30m") and clock notation ("01:30:00").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if strings.Contains(s, ":") {
		var h, m, sec int
		if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	}
	return time.ParseDuration(s)
}

// FormatDuration renders d in clock notation, e.g. "00:30:00".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

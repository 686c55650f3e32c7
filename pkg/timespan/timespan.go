// Package timespan converts the textual duration representation used by the
// timing data ("<days> days HH:MM:SS.ffffff") into canonical elapsed seconds.
package timespan

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Span is an elapsed time in seconds or an explicit no-value marker.
// The zero Span carries no value, which is distinct from a Span of 0 seconds.
type Span struct {
	secs  float64
	valid bool
}

func Of(secs float64) Span { return Span{secs: secs, valid: true} }

func None() Span { return Span{} }

func (s Span) Valid() bool { return s.valid }

// Seconds returns the elapsed seconds. Only meaningful if Valid().
func (s Span) Seconds() float64 { return s.secs }

// Format renders the canonical textual form, e.g. "0 days 00:01:23.456000".
// A no-value span renders as the empty string.
func (s Span) Format() string {
	if !s.valid {
		return ""
	}
	// round to whole microseconds first so a carry propagates through
	// all components
	total := int64(math.Round(s.secs * 1e6))
	micros := total % 1000000
	rem := total / 1000000
	days := rem / 86400
	rem -= days * 86400
	hours := rem / 3600
	rem -= hours * 3600
	minutes := rem / 60
	rem -= minutes * 60
	return fmt.Sprintf("%d days %02d:%02d:%02d.%06d",
		days, hours, minutes, rem, micros)
}

// MalformedDurationError signals a raw value that does not match the
// duration grammar. Callers decide whether to drop the row or abort.
type MalformedDurationError struct {
	Raw string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("malformed duration %q", e.Raw)
}

var durationPattern = regexp.MustCompile(
	`^(\d+) days? (\d{2}):(\d{2}):(\d{2})(\.\d{1,9})?$`)

// Parse converts raw into a Span. The empty string means no value and is not
// an error. Multi-day durations are legal.
func Parse(raw string) (Span, error) {
	if raw == "" {
		return None(), nil
	}
	m := durationPattern.FindStringSubmatch(raw)
	if m == nil {
		return None(), &MalformedDurationError{Raw: raw}
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	secs, _ := strconv.Atoi(m[4])
	if minutes > 59 || secs > 59 {
		return None(), &MalformedDurationError{Raw: raw}
	}
	frac := 0.0
	if m[5] != "" {
		frac, _ = strconv.ParseFloat("0"+m[5], 64)
	}
	total := float64(days)*86400 + float64(hours)*3600 +
		float64(minutes)*60 + float64(secs) + frac
	return Of(total), nil
}

// ParseAny accepts the heterogeneous inputs an ingestion layer may deliver:
// nil, the textual form, an already canonical numeric value or a Span
// (re-parsing is idempotent), or a native time.Duration.
func ParseAny(raw any) (Span, error) {
	switch v := raw.(type) {
	case nil:
		return None(), nil
	case Span:
		return v, nil
	case string:
		return Parse(v)
	case float64:
		return Of(v), nil
	case float32:
		return Of(float64(v)), nil
	case int:
		return Of(float64(v)), nil
	case int64:
		return Of(float64(v)), nil
	case time.Duration:
		return Of(v.Seconds()), nil
	default:
		return None(), &MalformedDurationError{Raw: fmt.Sprintf("%v", raw)}
	}
}

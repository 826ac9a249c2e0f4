package helpers

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ElapsedHours returns the elapsed time between two instants in fractional
// hours, rounded to two decimal places. Negative and past-midnight spans are
// returned as computed, without clamping.
func ElapsedHours(from, to time.Time) float64 {
	return RoundHours(to.Sub(from).Hours())
}

// RoundHours rounds an hour value to two decimal places.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// FormatHours renders an hour value with exactly two decimals, matching the
// wire format expected by the page scripts.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

// DateOf returns the calendar date of an instant, truncated to midnight UTC.
func DateOf(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

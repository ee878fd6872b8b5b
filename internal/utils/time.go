package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/models"
)

// FormatTimeOfDay renders a time of day in 12-hour form ("HH:MM AM").
// Midnight and noon both render with hour 12. Callers must pass hour 0-23 and minute 0-59.
func FormatTimeOfDay(t models.TimeOfDay) string {
	ampm := "AM"
	if t.Hour >= 12 {
		ampm = "PM"
	}
	h12 := t.Hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, t.Minute, ampm)
}

// FormatClock renders the wall-clock part of an instant in 12-hour form.
// The date and location of t are ignored beyond what t.Hour and t.Minute report.
func FormatClock(t time.Time) string {
	return FormatTimeOfDay(TimeOfDayFromTime(t))
}

// TimeOfDayFromTime normalizes an instant to its hour and minute
func TimeOfDayFromTime(t time.Time) models.TimeOfDay {
	return models.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeOfDay parses a 24-hour time string (HH:MM) into a TimeOfDay.
func ParseTimeOfDay(timeStr string) (models.TimeOfDay, error) {
	t, err := ParseTime(strings.TrimSpace(timeStr))
	if err != nil {
		return models.TimeOfDay{}, fmt.Errorf("invalid time %q, use HH:MM: %w", timeStr, err)
	}
	return TimeOfDayFromTime(t), nil
}

// ParseDisplayTime parses a 12-hour time string ("08:30 PM" or "8:30 PM") into a TimeOfDay.
func ParseDisplayTime(timeStr string) (models.TimeOfDay, error) {
	s := strings.ToUpper(strings.TrimSpace(timeStr))
	for _, layout := range []string{constants.DisplayTimeFormat, "3:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayFromTime(t), nil
		}
	}
	return models.TimeOfDay{}, fmt.Errorf("invalid time %q, use HH:MM AM or HH:MM PM", timeStr)
}

// ParseAnyTime accepts either the 24-hour (HH:MM) or the 12-hour display form.
func ParseAnyTime(timeStr string) (models.TimeOfDay, error) {
	if t, err := ParseTimeOfDay(timeStr); err == nil {
		return t, nil
	}
	return ParseDisplayTime(timeStr)
}

// OnDate places a time of day on the calendar day of ref, in ref's location.
func OnDate(t models.TimeOfDay, ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, 0, 0, ref.Location())
}

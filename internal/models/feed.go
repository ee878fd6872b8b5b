package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/feeder/internal/constants"
	apperrors "github.com/julianstephens/feeder/internal/errors"
)

// Mode selects whether the user dials in an exact amount or relies on the preset one
type Mode string

const (
	ModeManual    Mode = "Manual"
	ModeAutomatic Mode = "Automatic"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeManual || m == ModeAutomatic
}

// ParseMode parses a mode name case-insensitively ("manual", "Automatic", "auto")
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return ModeManual, nil
	case "automatic", "auto":
		return ModeAutomatic, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownMode, s)
}

// Preset is a fixed portion selectable with one action
type Preset string

const (
	PresetSmall  Preset = "Small"
	PresetMedium Preset = "Medium"
	PresetLarge  Preset = "Large"
)

// Presets lists the presets in display order
var Presets = []Preset{PresetSmall, PresetMedium, PresetLarge}

// Grams returns the portion size of the preset, or false for an unknown preset
func (p Preset) Grams() (int, bool) {
	switch p {
	case PresetSmall:
		return constants.PresetSmallGrams, true
	case PresetMedium:
		return constants.PresetMediumGrams, true
	case PresetLarge:
		return constants.PresetLargeGrams, true
	}
	return 0, false
}

// ParsePreset parses a preset label case-insensitively
func ParsePreset(s string) (Preset, error) {
	label := strings.TrimSpace(s)
	for _, p := range Presets {
		if strings.EqualFold(string(p), label) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownPreset, s)
}

// FeedIntent is what a feed request hands to the device dispatcher
type FeedIntent struct {
	ID          string    `json:"id"`
	AmountGrams int       `json:"amount_grams"`
	Mode        Mode      `json:"mode"`
	RequestedAt time.Time `json:"requested_at"`
}

// Message is the confirmation shown after a feed request
func (i FeedIntent) Message() string {
	return fmt.Sprintf("Dog has been fed %d grams of food!", i.AmountGrams)
}

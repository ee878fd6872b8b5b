// Package feed holds the selected feed amount and mode.
package feed

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/feeder/internal/constants"
	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
)

// Configuration is the current amount (grams) and mode.
// The zero value is not ready for use; call New.
type Configuration struct {
	amountGrams int
	mode        models.Mode
	now         func() time.Time
}

// New returns a configuration with the session defaults: 50 grams, Manual.
func New() *Configuration {
	return &Configuration{
		amountGrams: constants.DefaultAmountGrams,
		mode:        models.ModeManual,
		now:         time.Now,
	}
}

// AmountGrams returns the current amount
func (c *Configuration) AmountGrams() int { return c.amountGrams }

// Mode returns the current mode
func (c *Configuration) Mode() models.Mode { return c.mode }

// SetMode switches the mode. The amount is retained across switches.
func (c *Configuration) SetMode(mode models.Mode) error {
	if !mode.Valid() {
		return apperrors.ErrUnknownMode
	}
	c.mode = mode
	return nil
}

// SetAmount sets the amount directly, as the manual slider does.
// It is rejected outside Manual mode and for values outside 0-100 grams;
// the amount is unchanged on error.
func (c *Configuration) SetAmount(grams int) error {
	if c.mode != models.ModeManual {
		return apperrors.ErrManualOnly
	}
	if grams < constants.MinAmountGrams || grams > constants.MaxAmountGrams {
		return &apperrors.RangeError{Value: grams, Min: constants.MinAmountGrams, Max: constants.MaxAmountGrams}
	}
	c.amountGrams = grams
	return nil
}

// SelectPreset sets the amount to a preset portion in either mode
func (c *Configuration) SelectPreset(p models.Preset) error {
	grams, ok := p.Grams()
	if !ok {
		return apperrors.ErrUnknownPreset
	}
	c.amountGrams = grams
	return nil
}

// Feed returns the intent to dispatch the current amount. Nothing is sent from here.
func (c *Configuration) Feed() models.FeedIntent {
	return models.FeedIntent{
		ID:          uuid.New().String(),
		AmountGrams: c.amountGrams,
		Mode:        c.mode,
		RequestedAt: c.now(),
	}
}

// ClampAmount limits v to the accepted amount range. Input boundaries
// (slider keys, flags, request bodies) clamp before calling SetAmount.
func ClampAmount(v int) int {
	if v < constants.MinAmountGrams {
		return constants.MinAmountGrams
	}
	if v > constants.MaxAmountGrams {
		return constants.MaxAmountGrams
	}
	return v
}

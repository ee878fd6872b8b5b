package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	if c.AmountGrams() != 50 {
		t.Errorf("AmountGrams() = %d, want 50", c.AmountGrams())
	}
	if c.Mode() != models.ModeManual {
		t.Errorf("Mode() = %q, want %q", c.Mode(), models.ModeManual)
	}
}

func TestSetAmount(t *testing.T) {
	tests := []struct {
		name       string
		mode       models.Mode
		value      int
		wantAmount int
		wantErr    error
	}{
		{
			name:       "manual lower bound",
			mode:       models.ModeManual,
			value:      0,
			wantAmount: 0,
		},
		{
			name:       "manual upper bound",
			mode:       models.ModeManual,
			value:      100,
			wantAmount: 100,
		},
		{
			name:       "manual mid value",
			mode:       models.ModeManual,
			value:      63,
			wantAmount: 63,
		},
		{
			name:       "below range is rejected",
			mode:       models.ModeManual,
			value:      -1,
			wantAmount: 50,
			wantErr:    apperrors.ErrRange,
		},
		{
			name:       "above range is rejected",
			mode:       models.ModeManual,
			value:      101,
			wantAmount: 50,
			wantErr:    apperrors.ErrRange,
		},
		{
			name:       "automatic mode gates manual edits",
			mode:       models.ModeAutomatic,
			value:      10,
			wantAmount: 50,
			wantErr:    apperrors.ErrManualOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if err := c.SetMode(tt.mode); err != nil {
				t.Fatalf("SetMode(%q) error = %v", tt.mode, err)
			}

			err := c.SetAmount(tt.value)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("SetAmount(%d) error = %v", tt.value, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetAmount(%d) error = %v, want %v", tt.value, err, tt.wantErr)
			}
			if c.AmountGrams() != tt.wantAmount {
				t.Errorf("AmountGrams() = %d, want %d", c.AmountGrams(), tt.wantAmount)
			}
		})
	}
}

func TestSetAmount_RangeErrorCarriesValue(t *testing.T) {
	c := New()
	err := c.SetAmount(250)

	var rangeErr *apperrors.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("SetAmount(250) error = %v, want *RangeError", err)
	}
	if rangeErr.Value != 250 || rangeErr.Min != 0 || rangeErr.Max != 100 {
		t.Errorf("RangeError = %+v, want Value=250 Min=0 Max=100", rangeErr)
	}
}

func TestSetMode_RetainsAmount(t *testing.T) {
	c := New()
	if err := c.SetAmount(33); err != nil {
		t.Fatalf("SetAmount() error = %v", err)
	}

	if err := c.SetMode(models.ModeAutomatic); err != nil {
		t.Fatalf("SetMode() error = %v", err)
	}
	if c.AmountGrams() != 33 {
		t.Errorf("AmountGrams() after switching to Automatic = %d, want 33", c.AmountGrams())
	}

	if err := c.SetMode(models.ModeManual); err != nil {
		t.Fatalf("SetMode() error = %v", err)
	}
	if c.AmountGrams() != 33 {
		t.Errorf("AmountGrams() after switching back = %d, want 33", c.AmountGrams())
	}
}

func TestSetMode_Unknown(t *testing.T) {
	c := New()
	if err := c.SetMode(models.Mode("Turbo")); !errors.Is(err, apperrors.ErrUnknownMode) {
		t.Fatalf("SetMode(Turbo) error = %v, want %v", err, apperrors.ErrUnknownMode)
	}
	if c.Mode() != models.ModeManual {
		t.Errorf("Mode() = %q after rejected switch, want Manual", c.Mode())
	}
}

func TestSelectPreset(t *testing.T) {
	presets := []struct {
		preset models.Preset
		grams  int
	}{
		{models.PresetSmall, 25},
		{models.PresetMedium, 50},
		{models.PresetLarge, 75},
	}
	starts := []struct {
		mode   models.Mode
		amount int
	}{
		{models.ModeManual, 0},
		{models.ModeManual, 100},
		{models.ModeAutomatic, 13},
	}

	for _, p := range presets {
		for _, s := range starts {
			c := New()
			if err := c.SetAmount(s.amount); err != nil {
				t.Fatalf("SetAmount(%d) error = %v", s.amount, err)
			}
			if err := c.SetMode(s.mode); err != nil {
				t.Fatalf("SetMode(%q) error = %v", s.mode, err)
			}

			if err := c.SelectPreset(p.preset); err != nil {
				t.Fatalf("SelectPreset(%q) error = %v", p.preset, err)
			}
			if c.AmountGrams() != p.grams {
				t.Errorf("SelectPreset(%q) from %s/%d: AmountGrams() = %d, want %d", p.preset, s.mode, s.amount, c.AmountGrams(), p.grams)
			}
			if c.Mode() != s.mode {
				t.Errorf("SelectPreset(%q) changed mode from %q to %q", p.preset, s.mode, c.Mode())
			}
		}
	}
}

func TestSelectPreset_Unknown(t *testing.T) {
	c := New()
	if err := c.SelectPreset(models.Preset("Huge")); !errors.Is(err, apperrors.ErrUnknownPreset) {
		t.Fatalf("SelectPreset(Huge) error = %v, want %v", err, apperrors.ErrUnknownPreset)
	}
	if c.AmountGrams() != 50 {
		t.Errorf("AmountGrams() = %d after rejected preset, want 50", c.AmountGrams())
	}
}

func TestFeed_EmitsIntent(t *testing.T) {
	fixed := time.Date(2024, time.June, 25, 8, 0, 0, 0, time.UTC)
	c := New()
	c.now = func() time.Time { return fixed }

	if err := c.SelectPreset(models.PresetLarge); err != nil {
		t.Fatalf("SelectPreset() error = %v", err)
	}

	intent := c.Feed()
	if intent.AmountGrams != 75 {
		t.Errorf("intent.AmountGrams = %d, want 75", intent.AmountGrams)
	}
	if intent.Mode != models.ModeManual {
		t.Errorf("intent.Mode = %q, want Manual", intent.Mode)
	}
	if !intent.RequestedAt.Equal(fixed) {
		t.Errorf("intent.RequestedAt = %v, want %v", intent.RequestedAt, fixed)
	}
	if _, err := uuid.Parse(intent.ID); err != nil {
		t.Errorf("intent.ID = %q is not a UUID: %v", intent.ID, err)
	}
	if intent.Message() != "Dog has been fed 75 grams of food!" {
		t.Errorf("intent.Message() = %q", intent.Message())
	}

	// Feeding does not change the configuration
	if c.AmountGrams() != 75 || c.Mode() != models.ModeManual {
		t.Errorf("Feed() mutated configuration: %d/%s", c.AmountGrams(), c.Mode())
	}

	if next := c.Feed(); next.ID == intent.ID {
		t.Errorf("consecutive intents share ID %q", intent.ID)
	}
}

func TestClampAmount(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-20, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{180, 100},
	}
	for _, tt := range tests {
		if got := ClampAmount(tt.in); got != tt.want {
			t.Errorf("ClampAmount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

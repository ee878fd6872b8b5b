package constants

const (
	// Feed amount bounds in grams. The manual slider moves in 1 gram steps.
	MinAmountGrams     = 0
	MaxAmountGrams     = 100
	DefaultAmountGrams = 50
	AmountStepGrams    = 1

	// Preset portions in grams
	PresetSmallGrams  = 25
	PresetMediumGrams = 50
	PresetLargeGrams  = 75

	// Default feeding times (HH:MM)
	DefaultMorningTime = "08:00"
	DefaultNoonTime    = "12:00"
	DefaultEveningTime = "18:00"

	// Schedule seeding strategies
	ScheduleInitialFixed = "fixed"
	ScheduleInitialClock = "clock"

	// History sources
	HistorySourceStatic = "static"
	HistorySourceSQLite = "sqlite"
)

func init() {
	// Runtime validation: every preset must fit the amount bounds
	for _, grams := range []int{PresetSmallGrams, PresetMediumGrams, PresetLargeGrams, DefaultAmountGrams} {
		if grams < MinAmountGrams || grams > MaxAmountGrams {
			panic("preset and default amounts must lie within MinAmountGrams..MaxAmountGrams")
		}
	}
}

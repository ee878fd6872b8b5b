package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/feeder/internal/utils"
)

// NewTimeForm creates the form for editing one feeding time
func NewTimeForm(label string, fm *TimeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label+" feeding time").
				Description("HH:MM (24-hour) or HH:MM AM/PM").
				Value(&fm.Time).
				Validate(func(s string) error {
					_, err := utils.ParseAnyTime(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

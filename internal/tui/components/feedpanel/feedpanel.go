package feedpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/session"
)

const gaugeWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	activePresetStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)

	presetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)
)

// Render draws the feed controls. The slider only appears in Manual mode;
// Automatic mode shows the selected amount as read-only text.
func Render(snap session.Snapshot) string {
	modeLine := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Mode"),
		valueStyle.Render(string(snap.Mode)),
	)

	var amount string
	if snap.Mode == models.ModeManual {
		amount = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top,
				labelStyle.Render("Feed Amount"),
				valueStyle.Render(fmt.Sprintf("%d grams", snap.AmountGrams)),
			),
			Gauge(snap.AmountGrams, snap.MaxGrams, gaugeWidth),
		)
	} else {
		amount = lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render("Selected Feed Amount"),
			valueStyle.Render(fmt.Sprintf("%d grams", snap.AmountGrams)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Feed"),
		modeLine,
		"",
		amount,
		"",
		Presets(snap.AmountGrams),
	)
}

// Gauge renders value on a bar of width cells scaled to maxValue
func Gauge(value, maxValue, width int) string {
	if maxValue <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / maxValue
	filled = min(max(filled, 0), width)
	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// Presets renders the preset buttons, highlighting the one matching grams
func Presets(grams int) string {
	var buttons []string
	for i, p := range models.Presets {
		g, _ := p.Grams()
		label := fmt.Sprintf("[%d] %s %dg", i+1, p, g)
		if g == grams {
			buttons = append(buttons, activePresetStyle.Render(label))
		} else {
			buttons = append(buttons, presetStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// Summary is the one-line feed state used on the home tab
func Summary(snap session.Snapshot) string {
	return fmt.Sprintf("%d grams, %s mode (range %d-%d g)",
		snap.AmountGrams, snap.Mode, constants.MinAmountGrams, constants.MaxAmountGrams)
}

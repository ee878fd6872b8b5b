package session

import (
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/utils"
)

// Command is one of the named session commands
type Command interface {
	Name() string
}

type SetMode struct {
	Mode models.Mode
}

type SetAmount struct {
	Grams int
}

type SelectPreset struct {
	Preset models.Preset
}

type Feed struct{}

type OpenEditor struct {
	Slot models.SlotID
}

type Commit struct {
	Time models.TimeOfDay
}

type Cancel struct{}

func (SetMode) Name() string      { return "set_mode" }
func (SetAmount) Name() string    { return "set_amount" }
func (SelectPreset) Name() string { return "select_preset" }
func (Feed) Name() string         { return "feed" }
func (OpenEditor) Name() string   { return "open_editor" }
func (Commit) Name() string       { return "commit" }
func (Cancel) Name() string       { return "cancel" }

// Request is the wire form of a command, as posted to the HTTP adapter
type Request struct {
	Command string `json:"command"`
	Mode    string `json:"mode,omitempty"`
	Amount  *int   `json:"amount_grams,omitempty"`
	Preset  string `json:"preset,omitempty"`
	Slot    string `json:"slot,omitempty"`
	Time    string `json:"time,omitempty"`
}

// Decode turns a request into a command. Parsing errors leave nothing applied.
func Decode(req Request) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(req.Command)) {
	case "set_mode":
		mode, err := models.ParseMode(req.Mode)
		if err != nil {
			return nil, err
		}
		return SetMode{Mode: mode}, nil
	case "set_amount":
		if req.Amount == nil {
			return nil, fmt.Errorf("set_amount requires amount_grams")
		}
		return SetAmount{Grams: *req.Amount}, nil
	case "select_preset":
		preset, err := models.ParsePreset(req.Preset)
		if err != nil {
			return nil, err
		}
		return SelectPreset{Preset: preset}, nil
	case "feed":
		return Feed{}, nil
	case "open_editor":
		return OpenEditor{Slot: models.SlotID(strings.ToLower(strings.TrimSpace(req.Slot)))}, nil
	case "commit":
		t, err := utils.ParseAnyTime(req.Time)
		if err != nil {
			return nil, err
		}
		return Commit{Time: t}, nil
	case "cancel":
		return Cancel{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCommand, req.Command)
	}
}

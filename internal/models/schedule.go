package models

import "fmt"

// SlotID identifies one of the fixed feeding slots
type SlotID string

const (
	SlotMorning SlotID = "morning"
	SlotNoon    SlotID = "noon"
	SlotEvening SlotID = "evening"
)

// SlotIDs lists every slot in display order. The set never changes at runtime.
var SlotIDs = []SlotID{SlotMorning, SlotNoon, SlotEvening}

// Label returns the display name of the slot
func (id SlotID) Label() string {
	switch id {
	case SlotMorning:
		return "Morning"
	case SlotNoon:
		return "Noon"
	case SlotEvening:
		return "Evening"
	}
	return string(id)
}

// Valid reports whether id is part of the fixed slot set
func (id SlotID) Valid() bool {
	for _, known := range SlotIDs {
		if id == known {
			return true
		}
	}
	return false
}

// TimeOfDay is a wall-clock time. Only Hour (0-23) and Minute (0-59) are meaningful.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewTimeOfDay builds a TimeOfDay, failing when either field is out of range
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes returns the number of minutes since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders the time in 24-hour HH:MM form
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ScheduleEntry is one named recurring feeding time
type ScheduleEntry struct {
	ID    SlotID    `json:"id"`
	Label string    `json:"label"`
	Time  TimeOfDay `json:"time"`
}

// Package editor coordinates the single open time editor for schedule slots.
package editor

import (
	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
)

// Slots is the part of the schedule store the coordinator edits
type Slots interface {
	Get(id models.SlotID) (models.ScheduleEntry, error)
	Update(id models.SlotID, t models.TimeOfDay) error
}

// State is either Idle or Editing
type State interface {
	isState()
}

// Idle means no slot is open for editing
type Idle struct{}

// Editing holds the slot being edited and the time the editor opened with
type Editing struct {
	ID      models.SlotID
	Initial models.TimeOfDay
}

func (Idle) isState()    {}
func (Editing) isState() {}

// Coordinator allows at most one slot to be open for editing at a time.
// A second Open while editing is rejected so the pending edit is never lost.
type Coordinator struct {
	slots Slots
	state State
}

func New(slots Slots) *Coordinator {
	return &Coordinator{slots: slots, state: Idle{}}
}

// State returns the current state
func (c *Coordinator) State() State { return c.state }

// Active returns the slot being edited, if any
func (c *Coordinator) Active() (Editing, bool) {
	e, ok := c.state.(Editing)
	return e, ok
}

// Open starts editing id and returns the editor's initial value
func (c *Coordinator) Open(id models.SlotID) (models.TimeOfDay, error) {
	if active, ok := c.Active(); ok {
		return models.TimeOfDay{}, &apperrors.BusyError{Active: string(active.ID)}
	}
	entry, err := c.slots.Get(id)
	if err != nil {
		return models.TimeOfDay{}, err
	}
	c.state = Editing{ID: id, Initial: entry.Time}
	return entry.Time, nil
}

// Commit writes t to the slot being edited and returns to Idle.
// If the store rejects the update the editor stays open.
func (c *Coordinator) Commit(t models.TimeOfDay) (models.SlotID, error) {
	active, ok := c.Active()
	if !ok {
		return "", apperrors.ErrNotEditing
	}
	if err := c.slots.Update(active.ID, t); err != nil {
		return "", err
	}
	c.state = Idle{}
	return active.ID, nil
}

// Cancel discards the pending edit. It is a no-op when Idle.
func (c *Coordinator) Cancel() {
	c.state = Idle{}
}

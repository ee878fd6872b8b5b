package editor

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/schedule"
)

// failingSlots accepts Get but rejects every Update
type failingSlots struct {
	*schedule.Store
}

func (failingSlots) Update(models.SlotID, models.TimeOfDay) error {
	return errors.New("store unavailable")
}

func TestOpenCommit_EveningScenario(t *testing.T) {
	store := schedule.New()
	c := New(store)

	initial, err := c.Open(models.SlotEvening)
	if err != nil {
		t.Fatalf("Open(evening) error = %v", err)
	}
	if initial != (models.TimeOfDay{Hour: 18, Minute: 0}) {
		t.Errorf("Open(evening) initial = %v, want 18:00", initial)
	}
	if active, ok := c.Active(); !ok || active.ID != models.SlotEvening || active.Initial != initial {
		t.Fatalf("Active() = %+v, %v; want evening editing", active, ok)
	}

	id, err := c.Commit(models.TimeOfDay{Hour: 20, Minute: 30})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if id != models.SlotEvening {
		t.Errorf("Commit() id = %s, want evening", id)
	}

	got, _ := store.Get(models.SlotEvening)
	if got.Time != (models.TimeOfDay{Hour: 20, Minute: 30}) {
		t.Errorf("evening time = %v, want 20:30", got.Time)
	}
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("State() = %T after commit, want Idle", c.State())
	}
}

func TestCancel_LeavesStoreUnchanged(t *testing.T) {
	store := schedule.New()
	c := New(store)
	before := store.List()

	if _, err := c.Open(models.SlotMorning); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	c.Cancel()

	if _, ok := c.State().(Idle); !ok {
		t.Errorf("State() = %T after cancel, want Idle", c.State())
	}
	for i, e := range store.List() {
		if e != before[i] {
			t.Errorf("cancel changed %s: %+v -> %+v", e.ID, before[i], e)
		}
	}

	// Cancel while Idle is a no-op
	c.Cancel()
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("State() = %T after idle cancel, want Idle", c.State())
	}
}

func TestOpen_WhileEditingIsBusy(t *testing.T) {
	store := schedule.New()
	c := New(store)

	if _, err := c.Open(models.SlotNoon); err != nil {
		t.Fatalf("Open(noon) error = %v", err)
	}

	_, err := c.Open(models.SlotMorning)
	var busy *apperrors.BusyError
	if !errors.As(err, &busy) {
		t.Fatalf("second Open() error = %v, want BusyError", err)
	}
	if busy.Active != "noon" {
		t.Errorf("BusyError.Active = %q, want noon", busy.Active)
	}

	// The pending noon edit is still the target
	active, ok := c.Active()
	if !ok || active.ID != models.SlotNoon {
		t.Fatalf("Active() = %+v, %v; want noon", active, ok)
	}

	if _, err := c.Commit(models.TimeOfDay{Hour: 13, Minute: 15}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	noon, _ := store.Get(models.SlotNoon)
	morning, _ := store.Get(models.SlotMorning)
	if noon.Time != (models.TimeOfDay{Hour: 13, Minute: 15}) {
		t.Errorf("noon = %v, want 13:15", noon.Time)
	}
	if morning.Time != (models.TimeOfDay{Hour: 8}) {
		t.Errorf("morning = %v, want unchanged 08:00", morning.Time)
	}
}

func TestOpen_SameSlotTwiceIsBusy(t *testing.T) {
	c := New(schedule.New())
	if _, err := c.Open(models.SlotNoon); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := c.Open(models.SlotNoon); !errors.Is(err, apperrors.ErrBusy) {
		t.Errorf("reopening noon error = %v, want %v", err, apperrors.ErrBusy)
	}
}

func TestOpen_UnknownSlot(t *testing.T) {
	c := New(schedule.New())
	if _, err := c.Open("midnight"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Open(midnight) error = %v, want %v", err, apperrors.ErrNotFound)
	}
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("State() = %T after failed open, want Idle", c.State())
	}
}

func TestCommit_WhileIdle(t *testing.T) {
	c := New(schedule.New())
	if _, err := c.Commit(models.TimeOfDay{Hour: 9}); !errors.Is(err, apperrors.ErrNotEditing) {
		t.Errorf("Commit() while idle error = %v, want %v", err, apperrors.ErrNotEditing)
	}
}

func TestCommit_StoreFailureKeepsEditorOpen(t *testing.T) {
	c := New(failingSlots{schedule.New()})
	if _, err := c.Open(models.SlotMorning); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if _, err := c.Commit(models.TimeOfDay{Hour: 7}); err == nil {
		t.Fatal("Commit() succeeded against a failing store")
	}
	if active, ok := c.Active(); !ok || active.ID != models.SlotMorning {
		t.Errorf("Active() = %+v, %v after failed commit; want morning still open", active, ok)
	}
}

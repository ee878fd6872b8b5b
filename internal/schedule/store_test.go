package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
)

func TestNew_DefaultEntries(t *testing.T) {
	s := New()
	entries := s.List()

	want := []models.ScheduleEntry{
		{ID: models.SlotMorning, Label: "Morning", Time: models.TimeOfDay{Hour: 8}},
		{ID: models.SlotNoon, Label: "Noon", Time: models.TimeOfDay{Hour: 12}},
		{ID: models.SlotEvening, Label: "Evening", Time: models.TimeOfDay{Hour: 18}},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("List() = %+v, want %+v", entries, want)
	}
}

func TestNewFromClock(t *testing.T) {
	now := time.Date(2024, time.June, 25, 14, 37, 12, 0, time.Local)
	s := NewFromClock(now)

	for _, e := range s.List() {
		if e.Time != (models.TimeOfDay{Hour: 14, Minute: 37}) {
			t.Errorf("entry %s time = %v, want 14:37", e.ID, e.Time)
		}
	}
}

func TestUpdateThenGet_NonInterference(t *testing.T) {
	newTime := models.TimeOfDay{Hour: 20, Minute: 30}

	for _, id := range models.SlotIDs {
		t.Run(string(id), func(t *testing.T) {
			s := New()
			before := s.List()

			if err := s.Update(id, newTime); err != nil {
				t.Fatalf("Update(%s) error = %v", id, err)
			}

			got, err := s.Get(id)
			if err != nil {
				t.Fatalf("Get(%s) error = %v", id, err)
			}
			if got.Time != newTime {
				t.Errorf("Get(%s).Time = %v, want %v", id, got.Time, newTime)
			}

			for i, e := range s.List() {
				if e.ID == id {
					continue
				}
				if e != before[i] {
					t.Errorf("Update(%s) changed %s from %+v to %+v", id, e.ID, before[i], e)
				}
			}
		})
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	once := New()
	twice := New()
	newTime := models.TimeOfDay{Hour: 6, Minute: 45}

	if err := once.Update(models.SlotMorning, newTime); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := twice.Update(models.SlotMorning, newTime); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	if !reflect.DeepEqual(once.List(), twice.List()) {
		t.Errorf("applying Update twice = %+v, once = %+v", twice.List(), once.List())
	}
}

func TestUnknownID(t *testing.T) {
	s := New()
	before := s.List()

	if _, err := s.Get("midnight"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Get(midnight) error = %v, want %v", err, apperrors.ErrNotFound)
	}

	err := s.Update("midnight", models.TimeOfDay{Hour: 0})
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) || notFound.ID != "midnight" {
		t.Fatalf("Update(midnight) error = %v, want NotFoundError for midnight", err)
	}

	if !reflect.DeepEqual(s.List(), before) {
		t.Errorf("failed Update changed the store: %+v", s.List())
	}
}

func TestList_OrderAndCardinalityStable(t *testing.T) {
	s := New()
	updates := []struct {
		id models.SlotID
		t  models.TimeOfDay
	}{
		{models.SlotEvening, models.TimeOfDay{Hour: 5}},
		{models.SlotMorning, models.TimeOfDay{Hour: 23, Minute: 59}},
		{models.SlotNoon, models.TimeOfDay{Hour: 0}},
	}
	for _, u := range updates {
		if err := s.Update(u.id, u.t); err != nil {
			t.Fatalf("Update(%s) error = %v", u.id, err)
		}
	}

	entries := s.List()
	if len(entries) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(entries))
	}
	for i, id := range models.SlotIDs {
		if entries[i].ID != id {
			t.Errorf("List()[%d].ID = %s, want %s", i, entries[i].ID, id)
		}
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New()
	entries := s.List()
	entries[0].Time = models.TimeOfDay{Hour: 3}

	got, _ := s.Get(models.SlotMorning)
	if got.Time.Hour != 8 {
		t.Errorf("mutating List() result changed the store: %v", got.Time)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want models.SlotID
	}{
		{
			name: "before the first slot",
			now:  time.Date(2024, 6, 25, 6, 0, 0, 0, time.UTC),
			want: models.SlotMorning,
		},
		{
			name: "exactly at a slot",
			now:  time.Date(2024, 6, 25, 12, 0, 0, 0, time.UTC),
			want: models.SlotNoon,
		},
		{
			name: "between noon and evening",
			now:  time.Date(2024, 6, 25, 15, 30, 0, 0, time.UTC),
			want: models.SlotEvening,
		},
		{
			name: "after the last slot wraps to the earliest",
			now:  time.Date(2024, 6, 25, 21, 0, 0, 0, time.UTC),
			want: models.SlotMorning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if got := s.Next(tt.now); got.ID != tt.want {
				t.Errorf("Next(%s) = %s, want %s", tt.now.Format("15:04"), got.ID, tt.want)
			}
		})
	}
}

func TestNext_UsesTimesNotOrder(t *testing.T) {
	s := New()
	// Evening edited to before morning
	if err := s.Update(models.SlotEvening, models.TimeOfDay{Hour: 5}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	now := time.Date(2024, 6, 25, 22, 0, 0, 0, time.UTC)
	if got := s.Next(now); got.ID != models.SlotEvening {
		t.Errorf("Next() = %s, want evening (earliest time)", got.ID)
	}
}

package history

import (
	"context"

	"github.com/julianstephens/feeder/internal/models"
)

// DefaultRecords is the feeding log shown when no other source is configured
var DefaultRecords = []models.HistoryRecord{
	{ID: "1", Date: "2024-06-25", Time: "8:00 AM"},
	{ID: "2", Date: "2024-06-25", Time: "12:00 PM"},
	{ID: "3", Date: "2024-06-25", Time: "6:00 PM"},
}

// StaticSource serves a list fixed at construction time
type StaticSource struct {
	records []models.HistoryRecord
}

func NewStaticSource(records []models.HistoryRecord) *StaticSource {
	return &StaticSource{records: records}
}

func (s *StaticSource) Records(ctx context.Context) ([]models.HistoryRecord, error) {
	out := make([]models.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Package history projects past feeding events for display.
package history

import (
	"context"

	"github.com/julianstephens/feeder/internal/models"
)

// Row is one displayed history line
type Row struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Source supplies the fixed list of past feedings
type Source interface {
	Records(ctx context.Context) ([]models.HistoryRecord, error)
}

// View is a read-only projection over a list of records
type View struct {
	records []models.HistoryRecord
}

// NewView copies records so later changes by the caller are not visible
func NewView(records []models.HistoryRecord) *View {
	v := &View{records: make([]models.HistoryRecord, len(records))}
	copy(v.records, records)
	return v
}

// Load reads every record from src into a view
func Load(ctx context.Context, src Source) (*View, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}
	return NewView(records), nil
}

// Rows returns the records in source order. An empty view yields no rows.
func (v *View) Rows() []Row {
	rows := make([]Row, 0, len(v.records))
	for _, r := range v.records {
		rows = append(rows, Row{Date: r.Date, Time: r.Time})
	}
	return rows
}

// Len returns the number of records
func (v *View) Len() int { return len(v.records) }

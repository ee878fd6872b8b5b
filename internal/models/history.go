package models

// HistoryRecord is a past feeding event as supplied by a history source
type HistoryRecord struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD format
	Time string `json:"time"` // display string, e.g. "8:00 AM"
}

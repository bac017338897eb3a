// Package store loads rows read by hdrcsv into a SQLite database.
package store

import "time"

// Ingest run states.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// IngestRun tracks one load of a CSV source into a table.
type IngestRun struct {
	ID          string     `gorm:"primaryKey;type:text" json:"id"`
	Source      string     `gorm:"not null" json:"source"`
	Target      string     `gorm:"not null" json:"target"`
	Columns     string     `gorm:"type:text" json:"columns"` // comma-joined SQL column names
	Status      string     `gorm:"not null" json:"status"`
	RowCount    int        `gorm:"default:0" json:"row_count"`
	Error       string     `gorm:"type:text" json:"error,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (IngestRun) TableName() string { return "ingest_runs" }

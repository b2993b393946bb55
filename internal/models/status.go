package models

import "time"

// StatusCheck is a client heartbeat recorded via POST /api/status.
// Wire keys stay snake_case for compatibility with existing monitors.
type StatusCheck struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	ClientName string    `gorm:"not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (StatusCheck) TableName() string { return "status_checks" }

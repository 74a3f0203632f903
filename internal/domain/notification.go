package domain

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityAlert   Severity = "alert"
	SeveritySuccess Severity = "success"
)

type Notification struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// internal/models/recurrence.go
package models

import "time"

// Recurrence types.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// Recurrence interval bounds.
const (
	RecurrenceIntervalMin = 1
	RecurrenceIntervalMax = 365
)

// RecurrenceConfig describes how a task repeats. It is owned by its
// task and written atomically with it; it never spawns task instances
// by itself.
type RecurrenceConfig struct {
	Type     string     `json:"type"`
	Interval int        `json:"interval"`
	EndDate  *time.Time `json:"endDate,omitempty"`
}

// ValidRecurrenceType reports whether t is one of the four recurrence kinds.
func ValidRecurrenceType(t string) bool {
	switch t {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}

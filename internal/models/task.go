// internal/models/task.go
package models

// Task status codes as exposed by the API.
const (
	StatusDraft      = 0
	StatusPending    = 1
	StatusInProgress = 2
	StatusCompleted  = 3
	StatusCancelled  = 4
)

// Priority codes as exposed by the API.
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

// Subtask status codes.
const (
	SubtaskStatusPending   = 0
	SubtaskStatusCompleted = 1
)

// Storage-side enum values. The database keeps readable strings; the
// API speaks numeric codes, so every boundary crossing goes through
// the converters below.
const (
	StatusStringDraft      = "draft"
	StatusStringPending    = "pending"
	StatusStringInProgress = "in_progress"
	StatusStringCompleted  = "completed"
	StatusStringCancelled  = "cancelled"
)

const (
	PriorityStringLow    = "low"
	PriorityStringMedium = "medium"
	PriorityStringHigh   = "high"
)

// StatusToString converts an API status code to its storage value.
// Unknown codes map to pending.
func StatusToString(status int) string {
	switch status {
	case StatusDraft:
		return StatusStringDraft
	case StatusPending:
		return StatusStringPending
	case StatusInProgress:
		return StatusStringInProgress
	case StatusCompleted:
		return StatusStringCompleted
	case StatusCancelled:
		return StatusStringCancelled
	default:
		return StatusStringPending
	}
}

// StatusFromString converts a storage status back to its API code.
func StatusFromString(status string) int {
	switch status {
	case StatusStringDraft:
		return StatusDraft
	case StatusStringPending:
		return StatusPending
	case StatusStringInProgress:
		return StatusInProgress
	case StatusStringCompleted:
		return StatusCompleted
	case StatusStringCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// ValidStatus reports whether the code is one of the five task states.
func ValidStatus(status int) bool {
	return status >= StatusDraft && status <= StatusCancelled
}

// TerminalStatus reports whether the code is completed or cancelled.
// Terminal tasks never count as urgent or due soon.
func TerminalStatus(status int) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// PriorityToString converts an API priority code to its storage value.
// Unknown codes map to medium.
func PriorityToString(priority int) string {
	switch priority {
	case PriorityLow:
		return PriorityStringLow
	case PriorityMedium:
		return PriorityStringMedium
	case PriorityHigh:
		return PriorityStringHigh
	default:
		return PriorityStringMedium
	}
}

// PriorityFromString converts a storage priority back to its API code.
func PriorityFromString(priority string) int {
	switch priority {
	case PriorityStringLow:
		return PriorityLow
	case PriorityStringMedium:
		return PriorityMedium
	case PriorityStringHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// ValidPriority reports whether the code is low, medium or high.
func ValidPriority(priority int) bool {
	return priority >= PriorityLow && priority <= PriorityHigh
}

// SubtaskStatusToString converts a subtask status code to its storage value.
func SubtaskStatusToString(status int) string {
	if status == SubtaskStatusCompleted {
		return StatusStringCompleted
	}
	return StatusStringPending
}

// SubtaskStatusFromString converts a storage subtask status to its API code.
func SubtaskStatusFromString(status string) int {
	if status == StatusStringCompleted {
		return SubtaskStatusCompleted
	}
	return SubtaskStatusPending
}

// ValidSubtaskStatus reports whether the code is pending or completed.
func ValidSubtaskStatus(status int) bool {
	return status == SubtaskStatusPending || status == SubtaskStatusCompleted
}

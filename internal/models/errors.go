// internal/models/errors.go
package models

import "errors"

// Business-rule rejections surfaced verbatim to the transport layer.
// Anything not in this list is an unrecovered fault.
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooShort      = errors.New("title must be at least 3 characters")
	ErrTitleTooLong       = errors.New("title must be at most 100 characters")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrDueDateInPast      = errors.New("due date cannot be in the past")
	ErrInvalidPriority    = errors.New("priority must be 0, 1 or 2")
	ErrInvalidStatus      = errors.New("status must be between 0 and 4")

	ErrInvalidRecurrenceType     = errors.New("recurrence type must be daily, weekly, monthly or yearly")
	ErrInvalidRecurrenceInterval = errors.New("recurrence interval must be between 1 and 365")
	ErrInvalidRecurrenceEndDate  = errors.New("recurrence end date must be after today")
	ErrInvalidRecurrenceConfig   = errors.New("recurrence config is malformed")

	ErrTaskNotFound       = errors.New("task not found")
	ErrSubtaskNotFound    = errors.New("subtask not found")
	ErrAttachmentNotFound = errors.New("attachment not found")

	ErrInvalidFileFormat  = errors.New("file format is not allowed")
	ErrFileTooLarge       = errors.New("file exceeds the maximum size")
	ErrTooManyAttachments = errors.New("task already has the maximum number of attachments")
)

// IsBusinessError reports whether err is one of the named rejections
// above, as opposed to an infrastructure fault.
func IsBusinessError(err error) bool {
	for _, target := range []error{
		ErrTitleRequired, ErrTitleTooShort, ErrTitleTooLong,
		ErrDescriptionTooLong, ErrDueDateInPast, ErrInvalidPriority,
		ErrInvalidStatus, ErrInvalidRecurrenceType,
		ErrInvalidRecurrenceInterval, ErrInvalidRecurrenceEndDate,
		ErrInvalidRecurrenceConfig, ErrTaskNotFound, ErrSubtaskNotFound,
		ErrAttachmentNotFound, ErrInvalidFileFormat, ErrFileTooLarge,
		ErrTooManyAttachments,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// internal/service/validation.go
package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/models"
)

// Field limits shared by create and update.
const (
	titleMinLen           = 3
	titleMaxLen           = 100
	taskDescriptionMax    = 1000
	subtaskDescriptionMax = 500
)

// validateTitle trims the title and checks its length. The trimmed
// value is what gets stored.
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", models.ErrTitleRequired
	}
	if len([]rune(trimmed)) < titleMinLen {
		return "", models.ErrTitleTooShort
	}
	if len([]rune(trimmed)) > titleMaxLen {
		return "", models.ErrTitleTooLong
	}
	return trimmed, nil
}

func validateDescription(description string, maxLen int) error {
	if len([]rune(description)) > maxLen {
		return models.ErrDescriptionTooLong
	}
	return nil
}

// validateDueDate compares at day granularity: a due date earlier
// today is still acceptable, yesterday is not.
func validateDueDate(dueDate, now time.Time) error {
	if startOfDay(dueDate).Before(startOfDay(now)) {
		return models.ErrDueDateInPast
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// parseRecurrence validates a raw recurrence descriptor. A missing,
// null or empty descriptor returns (nil, nil), which clears the
// schedule on the task.
func parseRecurrence(raw json.RawMessage, now time.Time) (*models.RecurrenceConfig, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var cfg models.RecurrenceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, models.ErrInvalidRecurrenceConfig
	}

	// An empty object is the explicit "no recurrence" descriptor.
	if cfg.Type == "" && cfg.Interval == 0 && cfg.EndDate == nil {
		return nil, nil
	}

	if !models.ValidRecurrenceType(cfg.Type) {
		return nil, models.ErrInvalidRecurrenceType
	}
	if cfg.Interval < models.RecurrenceIntervalMin || cfg.Interval > models.RecurrenceIntervalMax {
		return nil, models.ErrInvalidRecurrenceInterval
	}
	if cfg.EndDate != nil && !startOfDay(*cfg.EndDate).After(startOfDay(now)) {
		return nil, models.ErrInvalidRecurrenceEndDate
	}

	return &cfg, nil
}

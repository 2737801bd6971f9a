// internal/service/validation_test.go
package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/models"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		want    string
		wantErr error
	}{
		{
			name:    "empty title",
			title:   "",
			wantErr: models.ErrTitleRequired,
		},
		{
			name:    "whitespace only",
			title:   "   \t ",
			wantErr: models.ErrTitleRequired,
		},
		{
			name:    "two characters after trim",
			title:   "  ab  ",
			wantErr: models.ErrTitleTooShort,
		},
		{
			name:  "minimum length",
			title: "abc",
			want:  "abc",
		},
		{
			name:  "surrounding whitespace trimmed",
			title: "  Buy milk  ",
			want:  "Buy milk",
		},
		{
			name:  "maximum length",
			title: strings.Repeat("a", 100),
			want:  strings.Repeat("a", 100),
		},
		{
			name:    "over maximum length",
			title:   strings.Repeat("a", 101),
			wantErr: models.ErrTitleTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateTitle(tt.title)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, validateDescription(strings.Repeat("d", 1000), taskDescriptionMax))
	assert.ErrorIs(t, validateDescription(strings.Repeat("d", 1001), taskDescriptionMax), models.ErrDescriptionTooLong)

	assert.NoError(t, validateDescription(strings.Repeat("d", 500), subtaskDescriptionMax))
	assert.ErrorIs(t, validateDescription(strings.Repeat("d", 501), subtaskDescriptionMax), models.ErrDescriptionTooLong)
}

func TestValidateDueDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		wantErr error
	}{
		{
			name:    "yesterday",
			dueDate: now.AddDate(0, 0, -1),
			wantErr: models.ErrDueDateInPast,
		},
		{
			name:    "earlier today still accepted",
			dueDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "later today",
			dueDate: now.Add(2 * time.Hour),
		},
		{
			name:    "tomorrow",
			dueDate: now.AddDate(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDueDate(tt.dueDate, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseRecurrence(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		raw       string
		wantClear bool
		wantErr   error
	}{
		{
			name:      "absent descriptor clears",
			raw:       "",
			wantClear: true,
		},
		{
			name:      "null descriptor clears",
			raw:       "null",
			wantClear: true,
		},
		{
			name:      "empty object clears",
			raw:       "{}",
			wantClear: true,
		},
		{
			name:    "malformed payload",
			raw:     `{"type":"weekly","interval":"two"}`,
			wantErr: models.ErrInvalidRecurrenceConfig,
		},
		{
			name:    "not an object",
			raw:     `"weekly"`,
			wantErr: models.ErrInvalidRecurrenceConfig,
		},
		{
			name:    "unknown type",
			raw:     `{"type":"hourly","interval":1}`,
			wantErr: models.ErrInvalidRecurrenceType,
		},
		{
			name:    "interval below range",
			raw:     `{"type":"daily","interval":0}`,
			wantErr: models.ErrInvalidRecurrenceInterval,
		},
		{
			name:    "interval above range",
			raw:     `{"type":"daily","interval":366}`,
			wantErr: models.ErrInvalidRecurrenceInterval,
		},
		{
			name:    "end date today is not strictly after",
			raw:     `{"type":"weekly","interval":2,"endDate":"2026-03-15T23:00:00Z"}`,
			wantErr: models.ErrInvalidRecurrenceEndDate,
		},
		{
			name: "end date tomorrow",
			raw:  `{"type":"weekly","interval":2,"endDate":"2026-03-16T00:00:00Z"}`,
		},
		{
			name: "valid without end date",
			raw:  `{"type":"monthly","interval":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}

			cfg, err := parseRecurrence(raw, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantClear {
				assert.Nil(t, cfg)
			} else {
				require.NotNil(t, cfg)
				assert.True(t, models.ValidRecurrenceType(cfg.Type))
			}
		})
	}
}

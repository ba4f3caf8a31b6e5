//go:build unit
// +build unit

package calibration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	today := date(2024, 3, 10)

	tests := []struct {
		name     string
		due      time.Time
		expected Status
	}{
		{"one day overdue", today.AddDate(0, 0, -1), StatusExpired},
		{"long overdue", today.AddDate(-1, 0, 0), StatusExpired},
		{"due today", today, StatusNearExpiry},
		{"due in seven days", today.AddDate(0, 0, 7), StatusNearExpiry},
		{"due in eight days", today.AddDate(0, 0, 8), StatusActive},
		{"due next year", today.AddDate(1, 0, 0), StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.due, today))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysRemaining(due, today))
	assert.Equal(t, StatusNearExpiry, Classify(due, today))
}

func TestDaysRemaining_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("timezone database not available")
	}

	today := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	due := time.Date(2024, 4, 6, 0, 0, 0, 0, loc)

	assert.Equal(t, 7, DaysRemaining(due, today))
	assert.Equal(t, StatusNearExpiry, Classify(due, today))
}

func TestClassifyPtr(t *testing.T) {
	today := date(2024, 3, 10)
	due := today.AddDate(0, 1, 0)

	assert.Equal(t, StatusUnknown, ClassifyPtr(nil, today))
	assert.Equal(t, StatusUnknown, ClassifyPtr(&time.Time{}, today))
	assert.Equal(t, StatusActive, ClassifyPtr(&due, today))
}

func TestStatus_BlocksIssue(t *testing.T) {
	assert.True(t, StatusExpired.BlocksIssue())
	assert.True(t, StatusNearExpiry.BlocksIssue())
	assert.False(t, StatusActive.BlocksIssue())
	assert.False(t, StatusUnknown.BlocksIssue())
}

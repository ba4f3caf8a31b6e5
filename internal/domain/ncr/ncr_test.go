//go:build unit
// +build unit

package ncr

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNCR() *NCR {
	return &NCR{
		ID:              uuid.NewString(),
		NCRNo:           "NCR-2024-001",
		Date:            time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
		Source:          SourceSupplier,
		Department:      "Machining",
		PartNo:          "P-100",
		Description:     "Bore diameter out of tolerance",
		Quantity:        12,
		Status:          StatusOpen,
		DateTimeCreated: time.Now(),
	}
}

func TestNCR_Validate(t *testing.T) {
	n := newTestNCR()
	assert.NoError(t, n.Validate())

	n.Source = "vendor"
	assert.Error(t, n.Validate())

	n = newTestNCR()
	n.Disposition = "burn"
	assert.Error(t, n.Validate())

	n = newTestNCR()
	n.Status = StatusClosed
	err := n.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close time")
}

func TestNCR_Close(t *testing.T) {
	n := newTestNCR()
	closedAt := time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC)

	err := n.Close("", closedAt)
	require.Error(t, err)
	assert.Equal(t, StatusOpen, n.Status)

	require.NoError(t, n.Close(DispositionRework, closedAt))
	assert.Equal(t, StatusClosed, n.Status)
	assert.Equal(t, DispositionRework, n.Disposition)
	require.NotNil(t, n.ClosedAt)
	assert.Equal(t, closedAt, *n.ClosedAt)

	assert.ErrorIs(t, n.Close(DispositionScrap, closedAt), ErrAlreadyClosed)
}

func TestNCRQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   *NCRQuery
		wantErr bool
	}{
		{"empty", NewNCRQuery(), false},
		{"year and month", &NCRQuery{Year: 2024, Month: "03-05"}, false},
		{"month without year", &NCRQuery{Month: "03"}, true},
		{"bad month", &NCRQuery{Year: 2024, Month: "13"}, true},
		{"bad source", &NCRQuery{Source: "vendor"}, true},
		{"bad sort", &NCRQuery{SortBy: "quantity"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

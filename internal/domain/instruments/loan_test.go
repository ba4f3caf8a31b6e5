//go:build unit
// +build unit

package instruments

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestLoan() *InstrumentLoan {
	return &InstrumentLoan{
		ID:              uuid.NewString(),
		EquipmentID:     uuid.NewString(),
		JFTNo:           "JFT-0001",
		Borrower:        "Budi",
		IssuedAt:        time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC),
		Status:          LoanStatusIssued,
		DateTimeCreated: time.Now(),
	}
}

func TestInstrumentLoan_Validate(t *testing.T) {
	l := newTestLoan()
	assert.NoError(t, l.Validate())

	l.Status = LoanStatusReturned
	assert.Error(t, l.Validate())

	before := l.IssuedAt.Add(-time.Hour)
	l.ReturnedAt = &before
	assert.Error(t, l.Validate())

	after := l.IssuedAt.Add(time.Hour)
	l.ReturnedAt = &after
	assert.NoError(t, l.Validate())

	l = newTestLoan()
	l.Borrower = ""
	assert.Error(t, l.Validate())
}

func TestIssueRequest_Validate(t *testing.T) {
	assert.NoError(t, (&IssueRequest{JFTNo: "JFT-0001", Borrower: "Budi"}).Validate())
	assert.Error(t, (&IssueRequest{JFTNo: "JFT-0001"}).Validate())
	assert.Error(t, (&IssueRequest{Borrower: "Budi"}).Validate())
}

func TestLoanQuery_Validate(t *testing.T) {
	assert.NoError(t, NewLoanQuery().Validate())
	assert.NoError(t, (&LoanQuery{Year: 2024, Month: "11-12", Status: LoanStatusReturned}).Validate())
	assert.Error(t, (&LoanQuery{Month: "11"}).Validate())
	assert.Error(t, (&LoanQuery{Status: "lost"}).Validate())
}

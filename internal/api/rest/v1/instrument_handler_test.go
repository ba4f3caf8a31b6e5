//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInstrumentHandler_Issue_Blocked(t *testing.T) {
	loanService := new(MockInstrumentLoanService)
	handler := NewInstrumentHandler(loanService)

	loanService.On("Issue", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: JFT-9 is Akan Expired", instruments.ErrCalibrationBlocked))

	c, w := jsonContext(t, http.MethodPost, "/instruments/issue", IssueInstrumentRequest{JFTNo: "JFT-9", Borrower: "Andi"})
	handler.Issue(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Akan Expired")
}

func TestInstrumentHandler_Issue_Success(t *testing.T) {
	loanService := new(MockInstrumentLoanService)
	handler := NewInstrumentHandler(loanService)

	issuedAt := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	loanService.On("Issue", mock.Anything, mock.MatchedBy(func(r *instruments.IssueRequest) bool {
		return r.JFTNo == "JFT-9" && r.IssuedAt.Equal(issuedAt)
	})).Return(&instruments.InstrumentLoan{ID: "loan-1", JFTNo: "JFT-9", IssuedAt: issuedAt, Status: instruments.LoanStatusIssued}, nil)

	c, w := jsonContext(t, http.MethodPost, "/instruments/issue", IssueInstrumentRequest{
		JFTNo:    "JFT-9",
		Borrower: "Andi",
		IssuedAt: "2024-06-10T09:00:00Z",
	})
	handler.Issue(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"issued"`)
}

func TestInstrumentHandler_Return_Twice(t *testing.T) {
	loanService := new(MockInstrumentLoanService)
	handler := NewInstrumentHandler(loanService)

	loanService.On("Return", mock.Anything, "loan-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: JFT-9", instruments.ErrAlreadyReturned))

	c, w := jsonContext(t, http.MethodPost, "/instruments/loan-1/return", ReturnInstrumentRequest{ReturnCondition: "good"})
	c.Params = gin.Params{{Key: "id", Value: "loan-1"}}
	handler.Return(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInstrumentHandler_List_MonthWithoutYear(t *testing.T) {
	loanService := new(MockInstrumentLoanService)
	handler := NewInstrumentHandler(loanService)

	c, w := jsonContext(t, http.MethodGet, "/instruments?month=03", nil)
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	loanService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

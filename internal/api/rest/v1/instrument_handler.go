package v1

import (
	"fmt"
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// InstrumentHandler handles the instrument issue/return log
type InstrumentHandler interface {
	Issue(ctx *gin.Context)
	Return(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type instrumentHandler struct {
	loanService instruments.InstrumentLoanService
}

// NewInstrumentHandler creates a new InstrumentHandler
func NewInstrumentHandler(loanService instruments.InstrumentLoanService) InstrumentHandler {
	return &instrumentHandler{loanService: loanService}
}

// Issue loans out an instrument
// @Summary Issue instrument
// @Description Refused with 409 when the calibration is expired or expires within seven days.
// @Tags Instruments
// @Accept json
// @Produce json
// @Param requestBody body IssueInstrumentRequest true "Issue"
// @Success 201 {object} InstrumentLoanResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /instruments/issue [post]
func (handler *instrumentHandler) Issue(ctx *gin.Context) {
	var request IssueInstrumentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid issue data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	issue, err := request.ToDomain()
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	loan, err := handler.loanService.Issue(ctx, issue)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, NewInstrumentLoanResponse(loan))
}

// Return closes an open loan
func (handler *instrumentHandler) Return(ctx *gin.Context) {
	var request ReturnInstrumentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid return data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	ret, err := request.ToDomain()
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	loan, err := handler.loanService.Return(ctx, ctx.Param("id"), ret)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewInstrumentLoanResponse(loan))
}

func (handler *instrumentHandler) List(ctx *gin.Context) {
	query := instruments.NewLoanQuery()
	query.JFTNo = ctx.Query("jftNo")
	query.Borrower = ctx.Query("borrower")
	query.Department = ctx.Query("department")
	query.Status = ctx.Query("status")
	query.Month = ctx.Query("month")

	if year := ctx.Query("year"); len(year) > 0 {
		query.Year = strutil.ConvertToInt(year)
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	loans, err := handler.loanService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []InstrumentLoanResponse{}
	for _, loan := range loans {
		response = append(response, NewInstrumentLoanResponse(loan))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *instrumentHandler) GetByID(ctx *gin.Context) {
	loan, err := handler.loanService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewInstrumentLoanResponse(loan))
}

func (handler *instrumentHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := handler.loanService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted instrument loan with id %s", id)})
}

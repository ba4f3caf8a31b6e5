package v1

import (
	"fmt"
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NCRHandler handles non-conformance reports
type NCRHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Close(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type ncrHandler struct {
	ncrService ncr.NCRService
}

// NewNCRHandler creates a new NCRHandler
func NewNCRHandler(ncrService ncr.NCRService) NCRHandler {
	return &ncrHandler{ncrService: ncrService}
}

func (handler *ncrHandler) Create(ctx *gin.Context) {
	var request NCRRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid ncr data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	n, err := request.ToDomain(uuid.NewString())
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	created, err := handler.ncrService.Create(ctx, n)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, NewNCRResponse(created))
}

// List fetches NCRs filtered by number, source, department, status, year and month
func (handler *ncrHandler) List(ctx *gin.Context) {
	query := ncr.NewNCRQuery()
	query.NCRNo = ctx.Query("ncrNo")
	query.Source = ctx.Query("source")
	query.Department = ctx.Query("department")
	query.Status = ctx.Query("status")
	query.Month = ctx.Query("month")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

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

	list, err := handler.ncrService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []NCRResponse{}
	for _, n := range list {
		response = append(response, NewNCRResponse(n))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *ncrHandler) GetByID(ctx *gin.Context) {
	n, err := handler.ncrService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewNCRResponse(n))
}

func (handler *ncrHandler) Update(ctx *gin.Context) {
	var request NCRRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid ncr data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	n, err := request.ToDomain(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	updated, err := handler.ncrService.Update(ctx, n)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewNCRResponse(updated))
}

func (handler *ncrHandler) Close(ctx *gin.Context) {
	var request CloseNCRRequest
	// an empty body keeps the current disposition
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid close data: %v", err))
			return
		}
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	closed, err := handler.ncrService.Close(ctx, ctx.Param("id"), request.Disposition)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewNCRResponse(closed))
}

func (handler *ncrHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := handler.ncrService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted ncr with id %s", id)})
}

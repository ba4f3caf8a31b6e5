package v1

import (
	"fmt"
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"

	"github.com/gin-gonic/gin"
)

// CardekHandler handles single calibration card entries
type CardekHandler interface {
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type cardekHandler struct {
	cardekService cardek.CardekService
}

// NewCardekHandler creates a new CardekHandler
func NewCardekHandler(cardekService cardek.CardekService) CardekHandler {
	return &cardekHandler{cardekService: cardekService}
}

func (handler *cardekHandler) GetByID(ctx *gin.Context) {
	entry, err := handler.cardekService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCardekResponse(entry))
}

func (handler *cardekHandler) Update(ctx *gin.Context) {
	var request CardekRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid cardek data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	entry, err := request.ToDomain(ctx.Param("id"), "")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	updated, err := handler.cardekService.Update(ctx, entry)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCardekResponse(updated))
}

func (handler *cardekHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := handler.cardekService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted cardek entry with id %s", id)})
}

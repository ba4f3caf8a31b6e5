package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EquipmentHandler defines the interface for handling equipment registry operations
type EquipmentHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	GetByJFTNo(ctx *gin.Context)
	Update(ctx *gin.Context)
	Extend(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Label(ctx *gin.Context)
	ListCardek(ctx *gin.Context)
	CreateCardek(ctx *gin.Context)
}

type equipmentHandler struct {
	equipmentService equipment.EquipmentService
	labelService     equipment.LabelService
	cardekService    cardek.CardekService
	now              func() time.Time
}

// NewEquipmentHandler creates a new EquipmentHandler
func NewEquipmentHandler(equipmentService equipment.EquipmentService, labelService equipment.LabelService, cardekService cardek.CardekService) EquipmentHandler {
	return &equipmentHandler{
		equipmentService: equipmentService,
		labelService:     labelService,
		cardekService:    cardekService,
		now:              calibration.Now,
	}
}

// Create registers equipment
// @Summary Register equipment
// @Tags Equipment
// @Accept json
// @Produce json
// @Param requestBody body EquipmentRequest true "Equipment"
// @Success 201 {object} EquipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /equipment [post]
func (handler *equipmentHandler) Create(ctx *gin.Context) {
	var request EquipmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid equipment data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	e, err := request.ToDomain(uuid.NewString())
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	created, err := handler.equipmentService.Create(ctx, e)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewEquipmentResponse(created, handler.now()))
}

// List fetches equipment optionally filtered by query parameters
// @Summary List equipment
// @Tags Equipment
// @Produce json
// @Param jftNo query string false "JFT No. substring"
// @Param department query string false "Department"
// @Param location query string false "Location"
// @Param status query string false "expired, near_expiry, active or unknown"
// @Success 200 {array} EquipmentResponse
// @Failure 400 {object} ErrorResponse
// @Router /equipment [get]
func (handler *equipmentHandler) List(ctx *gin.Context) {
	query := equipment.NewEquipmentQuery()
	query.JFTNo = ctx.Query("jftNo")
	query.Description = ctx.Query("description")
	query.Department = ctx.Query("department")
	query.Location = ctx.Query("location")
	query.Status = calibration.Status(ctx.Query("status"))

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	list, err := handler.equipmentService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	today := handler.now()
	response := []EquipmentResponse{}
	for _, e := range list {
		response = append(response, NewEquipmentResponse(e, today))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *equipmentHandler) GetByID(ctx *gin.Context) {
	e, err := handler.equipmentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewEquipmentResponse(e, handler.now()))
}

func (handler *equipmentHandler) GetByJFTNo(ctx *gin.Context) {
	e, err := handler.equipmentService.GetByJFTNo(ctx, ctx.Param("jftNo"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewEquipmentResponse(e, handler.now()))
}

// Update overwrites equipment by ID
func (handler *equipmentHandler) Update(ctx *gin.Context) {
	var request EquipmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid equipment data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	e, err := request.ToDomain(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	updated, err := handler.equipmentService.Update(ctx, e)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewEquipmentResponse(updated, handler.now()))
}

// Extend records a new calibration and reschedules the next one
// @Summary Extend calibration
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param requestBody body ExtendRequest true "Calibration"
// @Success 200 {object} EquipmentResponse
// @Failure 404 {object} ErrorResponse
// @Router /equipment/{id}/extend [post]
func (handler *equipmentHandler) Extend(ctx *gin.Context) {
	var request ExtendRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid extension data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	extension, err := request.ToDomain()
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	extended, err := handler.equipmentService.Extend(ctx, ctx.Param("id"), extension)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewEquipmentResponse(extended, handler.now()))
}

func (handler *equipmentHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := handler.equipmentService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted equipment with id %s", id)})
}

// Label returns a PNG QR code of the JFT No.; size is the edge length in pixels
func (handler *equipmentHandler) Label(ctx *gin.Context) {
	size := 0
	if s := ctx.Query("size"); len(s) > 0 {
		size = strutil.ConvertToInt(s)
		if size == 0 {
			respondBadRequest(ctx, "size must be a number")
			return
		}
	}

	png, err := handler.labelService.QRCode(ctx, ctx.Param("id"), size)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

// ListCardek returns the calibration history of equipment, newest first
func (handler *equipmentHandler) ListCardek(ctx *gin.Context) {
	entries, err := handler.cardekService.ListByEquipment(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []CardekResponse{}
	for _, entry := range entries {
		response = append(response, NewCardekResponse(entry))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *equipmentHandler) CreateCardek(ctx *gin.Context) {
	var request CardekRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid cardek data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	entry, err := request.ToDomain(uuid.NewString(), ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	created, err := handler.cardekService.Create(ctx, entry)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, NewCardekResponse(created))
}

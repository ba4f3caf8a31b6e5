package v1

import (
	"fmt"
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"

	"github.com/gin-gonic/gin"
)

// UploadHandler stores uploaded certificates and images and serves them back
type UploadHandler interface {
	UploadEquipment(ctx *gin.Context)
	UploadInstrument(ctx *gin.Context)
	UploadProfile(ctx *gin.Context)
	ServeFile(ctx *gin.Context)
}

type uploadHandler struct {
	uploadService files.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService files.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

// UploadEquipment stores a calibration certificate PDF
// @Summary Upload equipment certificate
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF certificate"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Router /uploads/equipment [post]
func (handler *uploadHandler) UploadEquipment(ctx *gin.Context) {
	handler.upload(ctx, files.CategoryEquipment)
}

// UploadInstrument stores an issue or return photo; kind is "issued" or "return"
func (handler *uploadHandler) UploadInstrument(ctx *gin.Context) {
	category, ok := files.InstrumentCategory(ctx.Param("kind"))
	if !ok {
		respondBadRequest(ctx, fmt.Sprintf("unknown instrument upload kind %q", ctx.Param("kind")))
		return
	}
	handler.upload(ctx, category)
}

func (handler *uploadHandler) UploadProfile(ctx *gin.Context) {
	handler.upload(ctx, files.CategoryProfiles)
}

func (handler *uploadHandler) upload(ctx *gin.Context, category files.Category) {
	header, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "invalid form data: missing file")
		return
	}

	stored, err := handler.uploadService.Upload(ctx, category, header)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, UploadResponse{Path: stored.Path})
}

// ServeFile streams a stored file by its relative path
func (handler *uploadHandler) ServeFile(ctx *gin.Context) {
	data, contentType, err := handler.uploadService.Download(ctx, ctx.Param("path"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, contentType, data)
}

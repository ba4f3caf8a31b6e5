package v1

import (
	"fmt"
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// UserHandler handles logins and account administration
type UserHandler interface {
	Login(ctx *gin.Context)
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	SetProfileImage(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type userHandler struct {
	userService   users.UserService
	uploadService files.UploadService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, uploadService files.UploadService) UserHandler {
	return &userHandler{
		userService:   userService,
		uploadService: uploadService,
	}
}

// Login exchanges credentials for a bearer token
// @Summary Login
// @Tags Users
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *userHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid login data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	token, expiresAt, user, err := handler.userService.Authenticate(ctx, request.Username, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      NewUserResponse(user),
	})
}

func (handler *userHandler) Create(ctx *gin.Context) {
	var request CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid user data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	user, err := handler.userService.Create(ctx, &users.CreateUserRequest{
		Username: request.Username,
		FullName: request.FullName,
		Email:    request.Email,
		Role:     request.Role,
		Password: request.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()
	query.Username = ctx.Query("username")
	query.Role = ctx.Query("role")
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

	list, err := handler.userService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []UserResponse{}
	for _, u := range list {
		response = append(response, NewUserResponse(u))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *userHandler) GetByID(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

func (handler *userHandler) Update(ctx *gin.Context) {
	var request UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid user data: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	user, err := handler.userService.Update(ctx, ctx.Param("id"), &users.UpdateUserRequest{
		FullName: request.FullName,
		Email:    request.Email,
		Role:     request.Role,
		Password: request.Password,
		Active:   request.Active,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// SetProfileImage accepts either a multipart "file" or a JSON body with an already uploaded path.
// Non-admin callers may only change their own picture.
func (handler *userHandler) SetProfileImage(ctx *gin.Context) {
	id := ctx.Param("id")
	if claims := claimsFrom(ctx); claims != nil && !claims.IsAdmin() && claims.UserID != id {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "cannot change another user's profile image"})
		return
	}

	var imagePath string
	if header, err := ctx.FormFile("file"); err == nil {
		stored, err := handler.uploadService.Upload(ctx, files.CategoryProfiles, header)
		if err != nil {
			respondError(ctx, err)
			return
		}
		imagePath = stored.Path
	} else {
		var request ProfileImageRequest
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondBadRequest(ctx, "expected a multipart file or a JSON path")
			return
		}
		if err := request.Validate(); err != nil {
			respondBadRequest(ctx, err.Error())
			return
		}
		cleaned, err := files.CleanPath(request.Path)
		if err != nil {
			respondError(ctx, err)
			return
		}
		imagePath = cleaned
	}

	user, err := handler.userService.SetProfileImage(ctx, id, imagePath)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := handler.userService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted user with id %s", id)})
}

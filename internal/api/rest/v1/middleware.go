package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "caltrack.claims"

// RequestLogger writes one log line per request through logger
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		args := []interface{}{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"clientIP", ctx.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed", args...)
		case status >= http.StatusBadRequest:
			log.Warn("Request rejected", args...)
		default:
			log.Info("Request served", args...)
		}
	}
}

// Authenticate requires a valid bearer token and stores its claims on the context
func Authenticate(issuer users.TokenIssuer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the admin role
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !claimsFrom(ctx).IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "admin role required"})
			return
		}
		ctx.Next()
	}
}

// claimsFrom returns the verified claims, or nil when authentication is disabled
func claimsFrom(ctx *gin.Context) *users.Claims {
	value, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*users.Claims)
	return claims
}

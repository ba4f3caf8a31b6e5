//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(services *Services, issuer users.TokenIssuer) *gin.Engine {
	r := gin.New()
	SetupRoutes(r, services, issuer)
	return r
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_Registered(t *testing.T) {
	r := newTestRouter(newMockServices(), nil)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET " + BasePath + "/healthz",
		"POST " + BasePath + "/auth/login",
		"POST " + BasePath + "/equipment",
		"GET " + BasePath + "/equipment/jft/:jftNo",
		"POST " + BasePath + "/equipment/:id/extend",
		"GET " + BasePath + "/equipment/:id/label",
		"GET " + BasePath + "/equipment/:id/cardek",
		"PUT " + BasePath + "/cardek/:id",
		"POST " + BasePath + "/instruments/issue",
		"POST " + BasePath + "/instruments/:id/return",
		"POST " + BasePath + "/ncrs/:id/close",
		"GET " + BasePath + "/reports/ncr",
		"GET " + BasePath + "/reports/instruments",
		"POST " + BasePath + "/uploads/equipment",
		"POST " + BasePath + "/uploads/instruments/:kind",
		"POST " + BasePath + "/uploads/profiles",
		"GET " + BasePath + "/files/*path",
		"GET " + BasePath + "/dashboard/calibration",
		"POST " + BasePath + "/users",
		"POST " + BasePath + "/users/:id/profile-image",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestSetupRoutes_HealthIsPublic(t *testing.T) {
	r := newTestRouter(newMockServices(), new(MockTokenIssuer))

	w := serve(r, http.MethodGet, BasePath+"/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_MissingToken(t *testing.T) {
	r := newTestRouter(newMockServices(), new(MockTokenIssuer))

	w := serve(r, http.MethodGet, BasePath+"/dashboard/calibration", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRoutes_InvalidToken(t *testing.T) {
	issuer := new(MockTokenIssuer)
	issuer.On("Verify", "forged").Return(nil, errors.New("token signature is invalid"))
	r := newTestRouter(newMockServices(), issuer)

	w := serve(r, http.MethodGet, BasePath+"/dashboard/calibration", "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRoutes_ValidToken(t *testing.T) {
	services := newMockServices()
	services.Monitoring.(*MockMonitoringService).On("Overview", mock.Anything, mock.Anything).
		Return(&monitoring.CalibrationOverview{Total: 0}, nil)

	issuer := new(MockTokenIssuer)
	issuer.On("Verify", "good").Return(&users.Claims{UserID: "u1", Username: "operator1", Role: users.RoleOperator}, nil)
	r := newTestRouter(services, issuer)

	w := serve(r, http.MethodGet, BasePath+"/dashboard/calibration", "good")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_AdminOnly(t *testing.T) {
	issuer := new(MockTokenIssuer)
	issuer.On("Verify", "operator").Return(&users.Claims{UserID: "u1", Role: users.RoleOperator}, nil)
	r := newTestRouter(newMockServices(), issuer)

	w := serve(r, http.MethodGet, BasePath+"/users", "operator")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetupRoutes_AdminAllowed(t *testing.T) {
	services := newMockServices()
	services.Users.(*MockUserService).On("List", mock.Anything, mock.Anything).Return([]*users.User{}, nil)

	issuer := new(MockTokenIssuer)
	issuer.On("Verify", "admin").Return(&users.Claims{UserID: "u0", Role: users.RoleAdmin}, nil)
	r := newTestRouter(services, issuer)

	w := serve(r, http.MethodGet, BasePath+"/users", "admin")
	assert.Equal(t, http.StatusOK, w.Code)
}

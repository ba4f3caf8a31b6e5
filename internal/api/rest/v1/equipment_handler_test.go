//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEquipmentHandler(now time.Time) (*equipmentHandler, *MockEquipmentService, *MockLabelService, *MockCardekService) {
	equipmentService := new(MockEquipmentService)
	labelService := new(MockLabelService)
	cardekService := new(MockCardekService)

	handler := NewEquipmentHandler(equipmentService, labelService, cardekService).(*equipmentHandler)
	handler.now = func() time.Time { return now }
	return handler, equipmentService, labelService, cardekService
}

func jsonContext(t *testing.T, method, url string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestEquipmentHandler_Create_Success(t *testing.T) {
	now := time.Date(2024, 2, 8, 10, 0, 0, 0, time.UTC)
	handler, equipmentService, _, _ := newTestEquipmentHandler(now)

	equipmentService.On("Create", mock.Anything, mock.MatchedBy(func(e *equipment.Equipment) bool {
		return e.JFTNo == "JFT-1" && e.CalibrationDate.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	})).Return(func() *equipment.Equipment {
		due := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)
		return &equipment.Equipment{
			ID:              "id-1",
			JFTNo:           "JFT-1",
			Description:     "Caliper",
			Frequency:       "4 Week",
			CalibrationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			NextCalibration: &due,
		}
	}(), nil)

	c, w := jsonContext(t, http.MethodPost, "/equipment", EquipmentRequest{
		JFTNo:           "JFT-1",
		Description:     "Caliper",
		Frequency:       "4 Week",
		CalibrationDate: "2024-01-15",
	})
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var response EquipmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.NextCalibration)
	assert.Equal(t, "2024-02-12", *response.NextCalibration)
	assert.Equal(t, calibration.StatusNearExpiry, response.Status)
	require.NotNil(t, response.DaysRemaining)
	assert.Equal(t, 4, *response.DaysRemaining)
	equipmentService.AssertExpectations(t)
}

func TestEquipmentHandler_Create_BadDate(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())

	c, w := jsonContext(t, http.MethodPost, "/equipment", EquipmentRequest{
		JFTNo:           "JFT-1",
		Description:     "Caliper",
		CalibrationDate: "15/01/2024",
	})
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	equipmentService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEquipmentHandler_Create_Duplicate(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())
	equipmentService.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("JFT No. JFT-1 is already registered: %w", apperr.ErrConflict))

	c, w := jsonContext(t, http.MethodPost, "/equipment", EquipmentRequest{
		JFTNo:           "JFT-1",
		Description:     "Caliper",
		CalibrationDate: "2024-01-15",
	})
	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestEquipmentHandler_GetByID_UnknownDueDate(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())
	equipmentService.On("GetByID", mock.Anything, "id-2").Return(&equipment.Equipment{
		ID:              "id-2",
		JFTNo:           "JFT-2",
		Frequency:       "sometimes",
		CalibrationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}, nil)

	c, w := jsonContext(t, http.MethodGet, "/equipment/id-2", nil)
	c.Params = gin.Params{{Key: "id", Value: "id-2"}}
	handler.GetByID(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nextCalibration":null`)
	assert.Contains(t, w.Body.String(), `"status":"unknown"`)
	assert.Contains(t, w.Body.String(), `"daysRemaining":null`)
}

func TestEquipmentHandler_GetByID_NotFound(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())
	equipmentService.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("equipment with ID missing %w", apperr.ErrNotFound))

	c, w := jsonContext(t, http.MethodGet, "/equipment/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEquipmentHandler_List_InvalidStatus(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())

	c, w := jsonContext(t, http.MethodGet, "/equipment?status=broken", nil)
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	equipmentService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestEquipmentHandler_List_PassesFilters(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())
	equipmentService.On("List", mock.Anything, mock.MatchedBy(func(q *equipment.EquipmentQuery) bool {
		return q.Department == "Quality" && q.Status == calibration.StatusExpired && q.Limit == 10
	})).Return([]*equipment.Equipment{}, nil)

	c, w := jsonContext(t, http.MethodGet, "/equipment?department=Quality&status=expired&limit=10", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	equipmentService.AssertExpectations(t)
}

func TestEquipmentHandler_Extend(t *testing.T) {
	handler, equipmentService, _, _ := newTestEquipmentHandler(time.Now())
	equipmentService.On("Extend", mock.Anything, "id-3", mock.MatchedBy(func(r *equipment.ExtensionRequest) bool {
		return r.CertificateNo == "C-9" && r.CalibrationDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&equipment.Equipment{ID: "id-3", JFTNo: "JFT-3", CalibrationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}, nil)

	c, w := jsonContext(t, http.MethodPost, "/equipment/id-3/extend", ExtendRequest{
		CalibrationDate: "2024-06-01",
		CertificateNo:   "C-9",
		Result:          "pass",
	})
	c.Params = gin.Params{{Key: "id", Value: "id-3"}}
	handler.Extend(c)

	assert.Equal(t, http.StatusOK, w.Code)
	equipmentService.AssertExpectations(t)
}

func TestEquipmentHandler_Label(t *testing.T) {
	handler, _, labelService, _ := newTestEquipmentHandler(time.Now())
	labelService.On("QRCode", mock.Anything, "id-4", 128).Return([]byte("\x89PNG"), nil)

	c, w := jsonContext(t, http.MethodGet, "/equipment/id-4/label?size=128", nil)
	c.Params = gin.Params{{Key: "id", Value: "id-4"}}
	handler.Label(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

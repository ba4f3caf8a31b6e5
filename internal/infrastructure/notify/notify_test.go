//go:build unit
// +build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/testutil"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

func testAlert() *monitoring.CalibrationAlert {
	return &monitoring.CalibrationAlert{
		EquipmentID:     "8f14e45f-ceea-4e6b-9b1a-0a7d2c3e4f50",
		JFTNo:           "JFT-0001",
		Description:     "Caliper",
		NextCalibration: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
		DaysRemaining:   3,
		Status:          calibration.StatusNearExpiry,
		GeneratedAt:     time.Date(2024, 4, 5, 6, 0, 0, 0, time.UTC),
	}
}

func TestAMQPNotifier_Notify(t *testing.T) {
	publisher := new(mockPublisher)
	notifier := NewAMQPNotifierWithPublisher(publisher, "caltrack", "calibration.alerts", testutil.SetupTestLogger(t))

	var published amqp.Publishing
	publisher.On("PublishWithContext", mock.Anything, "caltrack", "calibration.alerts", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil)

	require.NoError(t, notifier.Notify(context.Background(), testAlert()))
	publisher.AssertExpectations(t)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, "near_expiry", published.Type)
	assert.Equal(t, "8f14e45f-ceea-4e6b-9b1a-0a7d2c3e4f50/20240405", published.MessageId)

	var decoded monitoring.CalibrationAlert
	require.NoError(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, "JFT-0001", decoded.JFTNo)
	assert.Equal(t, 3, decoded.DaysRemaining)
}

func TestAMQPNotifier_Notify_Error(t *testing.T) {
	publisher := new(mockPublisher)
	notifier := NewAMQPNotifierWithPublisher(publisher, "", "alerts", testutil.SetupTestLogger(t))
	publisher.On("PublishWithContext", mock.Anything, "", "alerts", false, false, mock.Anything).Return(errors.New("channel closed"))

	err := notifier.Notify(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JFT-0001")
}

func TestAMQPNotifier_Close(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("Close").Return(nil)

	notifier := NewAMQPNotifierWithPublisher(publisher, "", "alerts", testutil.SetupTestLogger(t))
	assert.NoError(t, notifier.Close())
	publisher.AssertExpectations(t)
}

func TestLogNotifier(t *testing.T) {
	notifier := NewLogNotifier(testutil.SetupTestLogger(t))
	assert.NoError(t, notifier.Notify(context.Background(), testAlert()))
	assert.NoError(t, notifier.Close())
}

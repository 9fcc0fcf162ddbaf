package handler

import (
	"net/http"
	"testing"

	"mandoob/config"
	"mandoob/internal/domain/entity"
	mockUC "mandoob/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliveryAppHandler_ListDeliveryApps(t *testing.T) {
	appUC := mockUC.NewMockDeliveryAppUsecase(t)
	h := NewDeliveryAppHandler(DeliveryAppHandlerParams{DeliveryAppUC: appUC})
	e := newEcho()

	appUC.EXPECT().ListDeliveryApps(mock.Anything).Return([]*entity.DeliveryApp{
		{ID: uuid.New(), Name: "Talabat", IsActive: true},
		{ID: uuid.New(), Name: "Careem", IsActive: true},
	}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/delivery-apps", "", uuid.Nil)

	require.NoError(t, h.ListDeliveryApps(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.DeliveryApp](t, rec), 2)
}

func TestStatusHandler_Status(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "mandoob"
	h := NewStatusHandler(cfg)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/status", "", uuid.Nil)

	require.NoError(t, h.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	status := decodeData[map[string]any](t, rec)
	assert.Equal(t, "mandoob", status["service"])
	assert.Equal(t, "online", status["status"])
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(newEcho(), http.MethodGet, "/health", "", uuid.Nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

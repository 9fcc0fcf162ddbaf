package extraction

import (
	"context"
	"strings"
	"testing"

	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/service"
	mockSvc "mandoob/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pickupPoint  = entity.Location{Latitude: 30.0444, Longitude: 31.2357}
	dropoffPoint = entity.Location{Latitude: 30.0566, Longitude: 31.2394}
)

func newNotification(appName, content string) *entity.Notification {
	return &entity.Notification{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		AppID:   uuid.New(),
		AppName: appName,
		Title:   "New order",
		Content: content,
	}
}

func TestExtractor_Extract_Talabat(t *testing.T) {
	geocoder := mockSvc.NewMockGeocoder(t)
	extractor := NewExtractor(DefaultCueTables(), geocoder)
	ctx := context.Background()

	notification := newNotification("Talabat", "pickup from Restaurant A, deliver to Customer Address B, amount 120 جنيه")

	geocoder.EXPECT().
		Resolve(ctx, "restaurant a", service.LocationRolePickup).
		Return(entity.Location{Latitude: pickupPoint.Latitude, Longitude: pickupPoint.Longitude, Address: "restaurant a"}, nil)
	geocoder.EXPECT().
		Resolve(ctx, "customer address b", service.LocationRoleDropoff).
		Return(entity.Location{Latitude: dropoffPoint.Latitude, Longitude: dropoffPoint.Longitude, Address: "customer address b"}, nil)

	order, err := extractor.Extract(ctx, notification)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Contains(t, order.Pickup.Address, "restaurant a")
	assert.Contains(t, order.Dropoff.Address, "customer address b")
	require.NotNil(t, order.PaymentAmount)
	assert.InDelta(t, 120.0, *order.PaymentAmount, 1e-9)
	require.NotNil(t, order.CustomerName)
	assert.Equal(t, "address b, amount 120 جنيه", *order.CustomerName)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, notification.UserID, order.UserID)
	assert.Equal(t, notification.AppID, order.AppID)
	assert.Equal(t, "Talabat", order.AppName)
	require.NotNil(t, order.NotificationID)
	assert.Equal(t, notification.ID, *order.NotificationID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderReference, "ORDER-"))
	assert.Len(t, order.OrderReference, len("ORDER-")+8)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestExtractor_Extract_ArabicContent(t *testing.T) {
	geocoder := mockSvc.NewMockGeocoder(t)
	extractor := NewExtractor(DefaultCueTables(), geocoder)
	ctx := context.Background()

	notification := newNotification("talabat", "من مطعم الشرق, إلى شارع التحرير. المبلغ ١٥٠ جنيه")

	geocoder.EXPECT().
		Resolve(ctx, "مطعم الشرق", service.LocationRolePickup).
		Return(pickupPoint, nil)
	geocoder.EXPECT().
		Resolve(ctx, "شارع التحرير", service.LocationRoleDropoff).
		Return(dropoffPoint, nil)

	order, err := extractor.Extract(ctx, notification)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, order.PaymentAmount)
	assert.InDelta(t, 150.0, *order.PaymentAmount, 1e-9)
	assert.Nil(t, order.CustomerName)
}

func TestExtractor_Extract_MissDoesNotGeocode(t *testing.T) {
	geocoder := mockSvc.NewMockGeocoder(t)
	extractor := NewExtractor(DefaultCueTables(), geocoder)

	order, err := extractor.Extract(context.Background(), newNotification("Careem", "pickup at City Stars mall, fare 60 egp"))
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestExtractor_Extract_GeocoderError(t *testing.T) {
	geocoder := mockSvc.NewMockGeocoder(t)
	extractor := NewExtractor(DefaultCueTables(), geocoder)
	ctx := context.Background()

	geocoder.EXPECT().
		Resolve(ctx, "restaurant a", service.LocationRolePickup).
		Return(entity.Location{}, errors.New("geocoder unavailable"))

	order, err := extractor.Extract(ctx, newNotification("Talabat", "pickup from Restaurant A, deliver to Customer Address B"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geocoder unavailable")
	assert.Nil(t, order)
}

func TestExtractor_Match(t *testing.T) {
	extractor := NewExtractor(DefaultCueTables(), nil)

	t.Run("zero amount is absent", func(t *testing.T) {
		fields := extractor.Match("Talabat", "pickup from Restaurant A, deliver to Customer Address B, amount 0")
		assert.True(t, fields.Complete())
		assert.Nil(t, fields.Amount)
	})

	t.Run("unknown app uses fallback table", func(t *testing.T) {
		fields := extractor.Match("Mrsool", "Store: Carrefour Maadi. Deliver to: Street 9 building 4. Total 230")
		assert.Equal(t, ": carrefour maadi", fields.Pickup)
		assert.Equal(t, "to: street 9 building 4", fields.Dropoff)
		require.NotNil(t, fields.Amount)
		assert.InDelta(t, 230.0, *fields.Amount, 1e-9)
	})

	t.Run("only content is matched", func(t *testing.T) {
		notification := newNotification("Talabat", "new order waiting")
		notification.Title = "pickup from Restaurant A, deliver to Customer Address B"
		fields := extractor.Match(notification.AppName, notification.Content)
		assert.False(t, fields.Complete())
	})
}

package postgres

import (
	"testing"
	"time"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderMapper_RoundTripsFlattenedLocations(t *testing.T) {
	notificationID := uuid.New()
	name := "ahmed ali"
	amount := 120.0
	now := time.Now().UTC()

	order := &entity.Order{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		AppID:          uuid.New(),
		AppName:        "Talabat",
		NotificationID: &notificationID,
		OrderReference: "ORDER-1a2b3c4d",
		CustomerName:   &name,
		Pickup:         entity.Location{Latitude: 30.0444, Longitude: 31.2357, Address: "restaurant a"},
		Dropoff:        entity.Location{Latitude: 30.0566, Longitude: 31.2394, Address: "customer address b"},
		PaymentAmount:  &amount,
		Status:         entity.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	orderM := fromOrderDomain(order)
	assert.Equal(t, "restaurant a", orderM.PickupAddress)
	assert.Equal(t, 31.2394, orderM.DropoffLongitude)
	assert.Equal(t, "pending", orderM.Status)

	assert.Equal(t, order, toOrderDomain(orderM))
	assert.Nil(t, toOrderDomain(nil))
	assert.Nil(t, fromOrderDomain(nil))
}

func TestCombinationMapper_RoundTripsOrderIDs(t *testing.T) {
	combination := &entity.OrderCombination{
		ID:                   uuid.New(),
		UserID:               uuid.New(),
		OrderIDs:             []uuid.UUID{uuid.New(), uuid.New()},
		TotalDistanceKm:      12.12,
		EstimatedTimeMinutes: 61,
		SavingsPercentage:    -9,
		Accepted:             true,
		CreatedAt:            time.Now().UTC(),
	}

	combinationM := fromCombinationDomain(combination)
	assert.Len(t, combinationM.OrderIDs, 2)

	assert.Equal(t, combination, toCombinationDomain(combinationM))
}

func TestUserMapper_KeepsPasswordHash(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "courier1",
		Email:        "courier1@example.com",
		FullName:     "Courier One",
		PasswordHash: "$2a$10$hash",
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
}

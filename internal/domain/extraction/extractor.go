package extraction

import (
	"context"
	"strings"
	"time"

	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Fields holds what the cue matchers found in one notification.
type Fields struct {
	Pickup       string
	Dropoff      string
	Amount       *float64
	CustomerName *string
}

// Complete reports whether both trip ends were found, the only case that yields an Order.
func (f Fields) Complete() bool {
	return f.Pickup != "" && f.Dropoff != ""
}

// Extractor derives Orders from notifications.
type Extractor struct {
	tables   *CueTables
	geocoder service.Geocoder
	now      func() time.Time
}

// NewExtractor creates an Extractor using tables for cue lookup and geocoder for coordinates.
func NewExtractor(tables *CueTables, geocoder service.Geocoder) *Extractor {
	return &Extractor{
		tables:   tables,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// Match runs every cue matcher against the lower-cased content.
func (e *Extractor) Match(appName, content string) Fields {
	table := e.tables.Lookup(appName)
	normalized := strings.ToLower(content)

	var fields Fields
	if pickup, ok := MatchAddress(normalized, table.Pickup); ok {
		fields.Pickup = pickup
	}
	if dropoff, ok := MatchAddress(normalized, table.Dropoff); ok {
		fields.Dropoff = dropoff
	}
	if amount, ok := MatchAmount(normalized, table.Amount); ok && amount != 0 {
		fields.Amount = &amount
	}
	if name, ok := MatchCustomerName(normalized); ok {
		fields.CustomerName = &name
	}

	return fields
}

// Extract returns the Order described by the notification, or nil when pickup or
// dropoff could not be found. A nil Order with a nil error is an ordinary miss.
func (e *Extractor) Extract(ctx context.Context, notification *entity.Notification) (*entity.Order, error) {
	fields := e.Match(notification.AppName, notification.Content)
	if !fields.Complete() {
		return nil, nil
	}

	pickup, err := e.geocoder.Resolve(ctx, fields.Pickup, service.LocationRolePickup)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve pickup address")
	}

	dropoff, err := e.geocoder.Resolve(ctx, fields.Dropoff, service.LocationRoleDropoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve dropoff address")
	}

	now := e.now()
	notificationID := notification.ID

	return &entity.Order{
		ID:             uuid.New(),
		UserID:         notification.UserID,
		AppID:          notification.AppID,
		AppName:        notification.AppName,
		NotificationID: &notificationID,
		OrderReference: entity.NewOrderReference(),
		CustomerName:   fields.CustomerName,
		Pickup:         pickup,
		Dropoff:        dropoff,
		PaymentAmount:  fields.Amount,
		Status:         entity.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

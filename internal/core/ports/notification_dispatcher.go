package ports

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// StatusNotification carries everything the dispatcher needs to tell a
// customer their order moved. The core decides whether and with what content
// to notify; how the message travels is the adapter's concern.
type StatusNotification struct {
	RecipientEmail   string
	RecipientName    string
	OrderNumber      int
	Status           order.Status
	RestaurantName   string
	DeliveryLocation string
}

// NotificationDispatcher sends a status-change message to the customer.
//
// Dispatch failures must never fail the order mutation that triggered them:
// callers log and swallow any returned error.
type NotificationDispatcher interface {
	DispatchStatusChange(ctx context.Context, notification StatusNotification) error
}

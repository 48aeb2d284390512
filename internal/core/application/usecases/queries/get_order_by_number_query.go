package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
	ErrOrderNumberIsInvalid = errors.New("order number is out of range")
)

// GetOrderByNumberQuery retrieves a single order by its human-facing number,
// the one printed on receipts and read out at pickup.
type GetOrderByNumberQuery struct {
	orderNumber int

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for one order. The number must be
// in the range the counter hands out.
func NewGetOrderByNumberQuery(orderNumber int) (GetOrderByNumberQuery, error) {
	if orderNumber < order.MinOrderNumber {
		return GetOrderByNumberQuery{}, ErrOrderNumberIsInvalid
	}

	return GetOrderByNumberQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderNumber returns the requested order number.
func (q GetOrderByNumberQuery) OrderNumber() int {
	return q.orderNumber
}

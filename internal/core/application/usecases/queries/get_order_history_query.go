package queries

import (
	"errors"

	"kakanin/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists every order, earliest pickup date first.
//
// Example:
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, NewGetOrderHistoryQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to load history: %w", err)
//	}
//	for _, o := range history {
//	    fmt.Printf("%s  %s x%d for %s\n", o.PickupDate, o.Delicacy, o.Quantity, o.Buyer.Name)
//	}
type GetOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery() GetOrderHistoryQuery {
	return GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

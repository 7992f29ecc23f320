package commands

import (
	"context"

	"kakanin/internal/core/domain/model/buyer"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
)

// CreateOrderCommandHandler records an order on behalf of the administrator.
// The buyer is looked up by name, contact number and address and created when
// no record matches, so repeat customers share one buyer row.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the order in Pending status and returns its id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	admin, err := uow.UserRepository().GetFirst(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	buyerRepo := uow.BuyerRepository()
	customer, err := buyerRepo.FindByDetails(ctx, cmd.BuyerName(), cmd.ContactNumber(), cmd.Address())
	if err != nil {
		return kernel.UUID{}, err
	}
	if customer == nil {
		customer, err = buyer.NewBuyer(kernel.NewUUID(), cmd.BuyerName(), cmd.ContactNumber(), cmd.Address())
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = buyerRepo.Add(ctx, customer); err != nil {
			return kernel.UUID{}, err
		}
	}

	o, err := order.NewOrder(cmd.OrderID(), admin.ID(), customer.ID(), cmd.Details())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}

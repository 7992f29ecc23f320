package queries

import (
	"context"

	"kakanin/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads orders in storage order and sorts them by
// pickup date with services.SortByPickupDate. Orders sharing a pickup date stay
// in the order they were recorded.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := loadOrderViews(ctx, h.db, "ORDER BY o.created_at, o.id")
	if err != nil {
		return nil, err
	}

	return services.SortByPickupDate(views, orderViewPickupDate)
}

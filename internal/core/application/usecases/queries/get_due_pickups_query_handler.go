package queries

import (
	"context"

	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetDuePickupsQueryHandler struct {
	db *gorm.DB
}

func NewGetDuePickupsQueryHandler(db *gorm.DB) GetDuePickupsQueryHandler {
	return GetDuePickupsQueryHandler{db: db}
}

func (h GetDuePickupsQueryHandler) Handle(ctx context.Context, query GetDuePickupsQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := loadOrderViews(ctx, h.db,
		"WHERE o.pickup_date = ? AND o.status IN (?, ?)\nORDER BY o.created_at, o.id",
		query.Date().Time(), order.Pending.Code(), order.InProgress.Code(),
	)
	if err != nil {
		return nil, err
	}

	return services.SortByPickupDate(views, orderViewPickupDate)
}

package orderrepo

import (
	"context"
	"errors"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/pkg/errs"

	"gorm.io/gorm"
)

// insertionOrder matches the ORDER BY of the order list query. created_at is
// stamped in UTC so it sorts the same on every driver.
const insertionOrder = "created_at, id"

// aggregateTracker is the part of the unit of work that remembers which orders
// a transaction touched.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOrderRepository stores orders as OrderDTO rows. db is either the plain
// connection or the transaction opened by the unit of work.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts a freshly recorded order. created_at is filled in by gorm.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	row := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the mutable columns. Ownership and created_at are left alone,
// so an order keeps its place in the list after a status change.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	row := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", row.ID).
		Select(mutableColumns).
		Updates(&row)
	switch {
	case result.Error != nil:
		return result.Error
	case result.RowsAffected == 0:
		return orderNotFound(aggregate.ID(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads one order. A row holding an unknown enumeration code is reported
// as ErrValueIsInvalid.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row OrderDTO
	err := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, orderNotFound(id, nil)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(row)
}

// GetAll loads every order in insertion order. Sorting by pickup date is left
// to the caller.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var rows []OrderDTO
	if err := r.db.WithContext(ctx).Order(insertionOrder).Find(&rows).Error; err != nil {
		return nil, err
	}

	return toDomainAll(rows)
}

func toDomainAll(rows []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, len(rows))
	for i, row := range rows {
		o, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

func orderNotFound(id kernel.UUID, cause error) error {
	if cause == nil {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewObjectNotFoundErrorWithCause("order", id.String(), cause)
}

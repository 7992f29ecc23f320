package buyerrepo

import (
	"context"
	"errors"
	"strings"

	"kakanin/internal/core/domain/model/buyer"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBuyerRepository implements BuyerRepository using GORM.
type GormBuyerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBuyerRepository(db *gorm.DB, tracker aggregateTracker) *GormBuyerRepository {
	return &GormBuyerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBuyerRepository) Add(ctx context.Context, aggregate *buyer.Buyer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByDetails matches on all three trimmed fields exactly. It returns
// (nil, nil) when no buyer matches.
func (r *GormBuyerRepository) FindByDetails(
	ctx context.Context,
	name, contactNumber, address string,
) (*buyer.Buyer, error) {
	var dtos []BuyerDTO
	err := r.db.WithContext(ctx).
		Where(&BuyerDTO{
			Name:          strings.TrimSpace(name),
			ContactNumber: strings.TrimSpace(contactNumber),
			Address:       strings.TrimSpace(address),
		}).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is not an error for find-or-create
	}

	return toDomain(dtos[0])
}

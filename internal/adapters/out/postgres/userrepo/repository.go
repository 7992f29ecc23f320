package userrepo

import (
	"context"
	"errors"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/user"
	"kakanin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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

// GetFirst returns the administrator. Only one account is expected; ties are
// broken by username.
func (r *GormUserRepository) GetFirst(ctx context.Context) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Order("username").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", "admin")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

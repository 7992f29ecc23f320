package queries

import (
	"errors"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/guard"
)

var ErrGetDuePickupsQueryIsNotConstructed = errors.New(
	"GetDuePickupsQuery must be created via NewGetDuePickupsQuery constructor",
)

// GetDuePickupsQuery lists the open orders (Pending or In Progress) to be
// collected on a given date.
type GetDuePickupsQuery struct {
	date kernel.PickupDate

	guard guard.ConstructorGuard
}

func NewGetDuePickupsQuery(date kernel.PickupDate) (GetDuePickupsQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDuePickupsQuery{}, err
	}
	return GetDuePickupsQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDuePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetDuePickupsQueryIsNotConstructed)
}

func (q GetDuePickupsQuery) Date() kernel.PickupDate {
	return q.date
}

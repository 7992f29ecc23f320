package ports

import (
	"context"

	"kakanin/internal/core/domain/model/buyer"
	"kakanin/internal/core/domain/model/kernel"
)

// BuyerRepository defines the persistence contract for buyers.
type BuyerRepository interface {
	Add(ctx context.Context, aggregate *buyer.Buyer) error

	// Get returns errs.ObjectNotFoundError when no buyer has that id.
	Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error)

	// FindByDetails looks a buyer up by name, contact number and address.
	// It returns (nil, nil) when there is no match.
	FindByDetails(ctx context.Context, name, contactNumber, address string) (*buyer.Buyer, error)
}

// Package buyerrepo persists buyers in the buyer_info table.
package buyerrepo

import (
	"kakanin/internal/core/domain/model/buyer"
	"kakanin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type BuyerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100;not null;index:idx_buyer_details"`
	ContactNumber string    `gorm:"size:11;not null;index:idx_buyer_details"`
	Address       string    `gorm:"size:255;not null;index:idx_buyer_details"`
}

func (BuyerDTO) TableName() string {
	return "buyer_info"
}

func fromDomain(b *buyer.Buyer) BuyerDTO {
	return BuyerDTO{
		ID:            b.ID().Bytes(),
		Name:          b.Name(),
		ContactNumber: b.ContactNumber(),
		Address:       b.Address(),
	}
}

func toDomain(dto BuyerDTO) (*buyer.Buyer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return buyer.RestoreBuyer(id, dto.Name, dto.ContactNumber, dto.Address)
}

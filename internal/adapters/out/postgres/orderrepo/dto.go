// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table row. Enumerations are stored by code so the
// table stays readable and does not depend on Go constant ordering.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Delicacy       string    `gorm:"size:32;not null"`
	Quantity       int       `gorm:"not null"`
	ContainerSize  string    `gorm:"size:16;not null"`
	SpecialRequest string    `gorm:"size:255"`
	PickupPlace    string    `gorm:"size:255;not null"`
	PickupDate     time.Time `gorm:"type:date;not null;index"`
	Status         string    `gorm:"size:16;not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns are written by Update. id, user_id, buyer_id and created_at never change.
var mutableColumns = []string{
	"delicacy", "quantity", "container_size", "special_request",
	"pickup_place", "pickup_date", "status",
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		UserID:         o.UserID().Bytes(),
		BuyerID:        o.BuyerID().Bytes(),
		Delicacy:       o.Delicacy().Code(),
		Quantity:       o.Quantity(),
		ContainerSize:  o.ContainerSize().Code(),
		SpecialRequest: o.SpecialRequest(),
		PickupPlace:    o.PickupPlace(),
		PickupDate:     o.PickupDate().Time(),
		Status:         o.Status().Code(),
	}
}

// toDomain rebuilds an order from its row. Unknown enumeration codes are reported
// as errors rather than mapped to a default.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	details, err := detailsFromColumns(dto.Delicacy, dto.Quantity, dto.ContainerSize,
		dto.SpecialRequest, dto.PickupPlace, dto.PickupDate)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, buyerID, details, status)
}

func detailsFromColumns(
	delicacyCode string,
	quantity int,
	containerCode, specialRequest, pickupPlace string,
	pickupDate time.Time,
) (order.Details, error) {
	delicacy, err := order.ParseDelicacy(delicacyCode)
	if err != nil {
		return order.Details{}, err
	}
	size, err := order.ParseContainerSize(containerCode)
	if err != nil {
		return order.Details{}, err
	}
	date, err := kernel.PickupDateFromTime(pickupDate.UTC())
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Delicacy:       delicacy,
		Quantity:       quantity,
		ContainerSize:  size,
		SpecialRequest: specialRequest,
		PickupPlace:    pickupPlace,
		PickupDate:     date,
	}, nil
}

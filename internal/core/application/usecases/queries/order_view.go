// Package queries contains read-only operations for the order tracking pages.
// Handlers read through GORM raw SQL and return flat views instead of aggregates.
package queries

import (
	"context"
	"time"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuyerView is the buyer part of an order row.
type BuyerView struct {
	ID            kernel.UUID
	Name          string
	ContactNumber string
	Address       string
}

// OrderView is one order joined with its buyer, as shown on the history,
// management and tracking pages.
type OrderView struct {
	ID             kernel.UUID
	Buyer          BuyerView
	Delicacy       order.Delicacy
	Quantity       int
	ContainerSize  order.ContainerSize
	SpecialRequest string
	PickupPlace    string
	PickupDate     kernel.PickupDate
	Status         order.Status
}

func orderViewPickupDate(v OrderView) kernel.PickupDate {
	return v.PickupDate
}

const selectOrderViews = `
	SELECT
		o.id,
		o.delicacy,
		o.quantity,
		o.container_size,
		o.special_request,
		o.pickup_place,
		o.pickup_date,
		o.status,
		b.id,
		b.name,
		b.contact_number,
		b.address
	FROM orders o
	JOIN buyer_info b ON b.id = o.buyer_id`

// loadOrderViews runs selectOrderViews followed by tail and maps every row.
func loadOrderViews(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrderViews+"\n"+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			orderID, buyerID            uuid.UUID
			delicacyCode, containerCode string
			statusCode                  string
			pickupDate                  time.Time
			view                        OrderView
		)

		err = rows.Scan(
			&orderID,
			&delicacyCode,
			&view.Quantity,
			&containerCode,
			&view.SpecialRequest,
			&view.PickupPlace,
			&pickupDate,
			&statusCode,
			&buyerID,
			&view.Buyer.Name,
			&view.Buyer.ContactNumber,
			&view.Buyer.Address,
		)
		if err != nil {
			return nil, err
		}

		if err = view.fill(orderID, buyerID, delicacyCode, containerCode, statusCode, pickupDate); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func (v *OrderView) fill(
	orderID, buyerID uuid.UUID,
	delicacyCode, containerCode, statusCode string,
	pickupDate time.Time,
) error {
	var err error
	if v.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return err
	}
	if v.Buyer.ID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return err
	}
	if v.Delicacy, err = order.ParseDelicacy(delicacyCode); err != nil {
		return err
	}
	if v.ContainerSize, err = order.ParseContainerSize(containerCode); err != nil {
		return err
	}
	if v.Status, err = order.ParseStatus(statusCode); err != nil {
		return err
	}
	v.PickupDate, err = kernel.PickupDateFromTime(pickupDate.UTC())
	return err
}

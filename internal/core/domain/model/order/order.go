package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 10

	MaxPickupPlaceLength    = 255
	MaxSpecialRequestLength = 255
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details groups what the buyer asked for. It is plain input for NewOrder and
// RestoreOrder, which validate every field.
type Details struct {
	Delicacy       Delicacy
	Quantity       int
	ContainerSize  ContainerSize
	SpecialRequest string
	PickupPlace    string
	PickupDate     kernel.PickupDate
}

// Order is the aggregate root of a buyer's request for one delicacy.
//
// Order follows these invariants:
//   - id, user and buyer references are valid identifiers
//   - delicacy and container size are known enumeration values
//   - quantity is between MinQuantity and MaxQuantity
//   - pickup place is present, pickup date is a constructed calendar date
//   - status only moves forward (see Status)
type Order struct {
	id             kernel.UUID
	userID         kernel.UUID
	buyerID        kernel.UUID
	delicacy       Delicacy
	quantity       int
	containerSize  ContainerSize
	specialRequest string
	pickupPlace    string
	pickupDate     kernel.PickupDate
	status         Status

	isConstructed bool
}

// NewOrder records a new order in Pending status.
//
// Example:
//
//	date, _ := kernel.NewPickupDate(2024, 12, 24)
//	o, err := order.NewOrder(kernel.NewUUID(), adminID, buyerID, order.Details{
//	    Delicacy:      order.SapinSapin,
//	    Quantity:      2,
//	    ContainerSize: order.Bilao12,
//	    PickupPlace:   "Kalayaan Ave. stall",
//	    PickupDate:    date,
//	})
//
// All field errors are joined so the caller can report them together.
func NewOrder(id, userID, buyerID kernel.UUID, details Details) (*Order, error) {
	return RestoreOrder(id, userID, buyerID, details, Pending)
}

// RestoreOrder rebuilds an order read from storage, with its persisted status.
func RestoreOrder(id, userID, buyerID kernel.UUID, details Details, status Status) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, userID, buyerID),
		o.setDelicacy(details.Delicacy),
		o.setQuantity(details.Quantity),
		o.setContainerSize(details.ContainerSize),
		o.setSpecialRequest(details.SpecialRequest),
		o.setPickupPlace(details.PickupPlace),
		o.setPickupDate(details.PickupDate),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID is the administrator who recorded the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

func (o *Order) Delicacy() Delicacy {
	return o.delicacy
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) ContainerSize() ContainerSize {
	return o.containerSize
}

func (o *Order) SpecialRequest() string {
	return o.specialRequest
}

func (o *Order) PickupPlace() string {
	return o.pickupPlace
}

func (o *Order) PickupDate() kernel.PickupDate {
	return o.pickupDate
}

func (o *Order) Status() Status {
	return o.status
}

// Start marks the order as being prepared.
func (o *Order) Start() error {
	return o.transition(o.status.Start)
}

// Complete marks the order as collected by the buyer.
func (o *Order) Complete() error {
	return o.transition(o.status.Complete)
}

// Remove cancels the order.
func (o *Order) Remove() error {
	return o.transition(o.status.Remove)
}

// ChangeStatus moves the order to target, enforcing the Status state machine.
func (o *Order) ChangeStatus(target Status) error {
	return o.transition(func() (Status, error) {
		return o.status.TransitionTo(target)
	})
}

func (o *Order) transition(next func() (Status, error)) error {
	if err := o.Validate(); err != nil {
		return err
	}
	newStatus, err := next()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setIDs(id, userID, buyerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), userID.Validate(), buyerID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.userID = userID
	o.buyerID = buyerID
	return nil
}

func (o *Order) setDelicacy(d Delicacy) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.delicacy = d
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setContainerSize(c ContainerSize) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.containerSize = c
	return nil
}

func (o *Order) setSpecialRequest(request string) error {
	request = strings.TrimSpace(request)
	if n := utf8.RuneCountInString(request); n > MaxSpecialRequestLength {
		return errs.NewValueIsOutOfRangeError("special request length", n, 0, MaxSpecialRequestLength)
	}
	o.specialRequest = request
	return nil
}

func (o *Order) setPickupPlace(place string) error {
	place = strings.TrimSpace(place)
	if place == "" {
		return errs.NewValueIsRequiredError("pickup place")
	}
	if n := utf8.RuneCountInString(place); n > MaxPickupPlaceLength {
		return errs.NewValueIsOutOfRangeError("pickup place length", n, 1, MaxPickupPlaceLength)
	}
	o.pickupPlace = place
	return nil
}

func (o *Order) setPickupDate(date kernel.PickupDate) error {
	if err := date.Validate(); err != nil {
		return err
	}
	o.pickupDate = date
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

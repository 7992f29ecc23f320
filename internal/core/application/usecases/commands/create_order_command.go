package commands

import (
	"errors"
	"strings"

	"kakanin/internal/core/domain/model/buyer"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/pkg/errs"
	"kakanin/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderInput is the order form as submitted. Delicacy, container size and
// pickup date are raw text and are parsed strictly by NewCreateOrderCommand.
type CreateOrderInput struct {
	BuyerName     string
	ContactNumber string
	Address       string

	Delicacy       string
	Quantity       int
	ContainerSize  string
	SpecialRequest string
	PickupPlace    string
	PickupDate     string
}

// CreateOrderCommand represents a request to record a new order for a buyer.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, CreateOrderInput{
//	    BuyerName:     "Maria Santos",
//	    ContactNumber: "09171234567",
//	    Address:       "12 Mabini St., Quezon City",
//	    Delicacy:      "Sapin-Sapin",
//	    Quantity:      2,
//	    ContainerSize: "12' Bilao",
//	    PickupPlace:   "Home",
//	    PickupDate:    "2024-12-24",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order form: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	buyerName     string
	contactNumber string
	address       string

	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses and validates the form. Every field error is
// joined into the returned error.
func NewCreateOrderCommand(orderID kernel.UUID, input CreateOrderInput) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setBuyer(input.BuyerName, input.ContactNumber, input.Address),
		command.setDelicacy(input.Delicacy),
		command.setQuantity(input.Quantity),
		command.setContainerSize(input.ContainerSize),
		command.setPickupPlace(input.PickupPlace),
		command.setPickupDate(input.PickupDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	command.details.SpecialRequest = strings.TrimSpace(input.SpecialRequest)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) BuyerName() string {
	return c.buyerName
}

func (c CreateOrderCommand) ContactNumber() string {
	return c.contactNumber
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

// Details returns the parsed order details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyer(name, contactNumber, address string) error {
	name = strings.TrimSpace(name)
	contactNumber = strings.TrimSpace(contactNumber)
	address = strings.TrimSpace(address)

	var nameErr, contactErr, addressErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("buyer name")
	}
	if contactNumber == "" {
		contactErr = errs.NewValueIsRequiredError("contact number")
	} else {
		contactErr = buyer.ValidateContactNumber(contactNumber)
	}
	if address == "" {
		addressErr = errs.NewValueIsRequiredError("address")
	}
	if err := errors.Join(nameErr, contactErr, addressErr); err != nil {
		return err
	}

	c.buyerName = name
	c.contactNumber = contactNumber
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDelicacy(raw string) error {
	d, err := order.ParseDelicacy(raw)
	if err != nil {
		return err
	}
	c.details.Delicacy = d
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}
	c.details.Quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setContainerSize(raw string) error {
	size, err := order.ParseContainerSize(raw)
	if err != nil {
		return err
	}
	c.details.ContainerSize = size
	return nil
}

func (c *CreateOrderCommand) setPickupPlace(place string) error {
	place = strings.TrimSpace(place)
	if place == "" {
		return errs.NewValueIsRequiredError("pickup place")
	}
	c.details.PickupPlace = place
	return nil
}

func (c *CreateOrderCommand) setPickupDate(raw string) error {
	date, err := kernel.ParsePickupDate(raw)
	if err != nil {
		return err
	}
	c.details.PickupDate = date
	return nil
}

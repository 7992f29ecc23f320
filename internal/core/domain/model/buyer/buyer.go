// Package buyer holds the Buyer aggregate: the customer an order is recorded for.
// Buyers are matched by their full details, so the same person ordering twice
// reuses one record.
package buyer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/errs"
)

const (
	ContactNumberLength = 11

	MaxNameLength    = 100
	MaxAddressLength = 255
)

var ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer constructor")

// Buyer is a customer with a local 11-digit mobile number (e.g. 09171234567).
type Buyer struct {
	id            kernel.UUID
	name          string
	contactNumber string
	address       string

	isConstructed bool
}

// NewBuyer validates and creates a buyer. Name and address are trimmed, the
// contact number must be exactly ContactNumberLength digits.
func NewBuyer(id kernel.UUID, name, contactNumber, address string) (*Buyer, error) {
	b := &Buyer{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setContactNumber(contactNumber),
		b.setAddress(address),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBuyer rebuilds a buyer read from storage. It applies the same rules as NewBuyer.
func RestoreBuyer(id kernel.UUID, name, contactNumber, address string) (*Buyer, error) {
	return NewBuyer(id, name, contactNumber, address)
}

// ValidateContactNumber reports whether s is exactly 11 ASCII digits.
func ValidateContactNumber(s string) error {
	if len(s) != ContactNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"contact number",
			fmt.Errorf("must be exactly %d digits, got %d characters", ContactNumberLength, len(s)),
		)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"contact number",
				fmt.Errorf("must contain digits only, found %q", r),
			)
		}
	}
	return nil
}

func (b *Buyer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBuyerIsNotConstructed
	}
	return nil
}

func (b *Buyer) IsEqual(other *Buyer) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Buyer) ID() kernel.UUID {
	return b.id
}

func (b *Buyer) Name() string {
	return b.name
}

func (b *Buyer) ContactNumber() string {
	return b.contactNumber
}

func (b *Buyer) Address() string {
	return b.address
}

func (b *Buyer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Buyer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	b.name = name
	return nil
}

func (b *Buyer) setContactNumber(contactNumber string) error {
	contactNumber = strings.TrimSpace(contactNumber)
	if contactNumber == "" {
		return errs.NewValueIsRequiredError("contact number")
	}
	if err := ValidateContactNumber(contactNumber); err != nil {
		return err
	}
	b.contactNumber = contactNumber
	return nil
}

func (b *Buyer) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if n := utf8.RuneCountInString(address); n > MaxAddressLength {
		return errs.NewValueIsOutOfRangeError("address length", n, 1, MaxAddressLength)
	}
	b.address = address
	return nil
}

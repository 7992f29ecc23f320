package order

import (
	"fmt"

	"kakanin/internal/pkg/errs"
)

// ContainerSize is the packaging an order is delivered in: a bilao (woven tray)
// of a given diameter in inches, a tab, or a slice.
type ContainerSize int

const (
	UnknownContainerSize ContainerSize = iota
	Bilao10
	Bilao12
	Bilao14
	Bilao16
	Bilao18
	Tab
	Slice
)

var containerSizes = []enumEntry[ContainerSize]{
	{Bilao10, "BILAO_10", "10' Bilao"},
	{Bilao12, "BILAO_12", "12' Bilao"},
	{Bilao14, "BILAO_14", "14' Bilao"},
	{Bilao16, "BILAO_16", "16' Bilao"},
	{Bilao18, "BILAO_18", "18' Bilao"},
	{Tab, "TAB", "Tab"},
	{Slice, "SLICE", "Slice"},
}

// ParseContainerSize accepts a code ("BILAO_12") or a display name ("12' Bilao").
func ParseContainerSize(raw string) (ContainerSize, error) {
	return parseEnum("container size", raw, containerSizes)
}

// ContainerSizes lists every container size, smallest bilao first.
func ContainerSizes() []ContainerSize {
	return enumValues(containerSizes)
}

func (c ContainerSize) Validate() error {
	if _, ok := lookupEntry(c, containerSizes); !ok {
		return errs.NewValueIsInvalidErrorWithCause("container size", fmt.Errorf("%d is not a valid container size", c))
	}
	return nil
}

func (c ContainerSize) Code() string {
	if e, ok := lookupEntry(c, containerSizes); ok {
		return e.code
	}
	return "UNKNOWN"
}

func (c ContainerSize) String() string {
	if e, ok := lookupEntry(c, containerSizes); ok {
		return e.name
	}
	return "Unknown"
}

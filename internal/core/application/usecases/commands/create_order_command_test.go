package commands_test

import (
	"testing"

	"kakanin/internal/core/application/usecases/commands"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		BuyerName:      "Maria Santos",
		ContactNumber:  "09171234567",
		Address:        "12 Mabini St., Quezon City",
		Delicacy:       "Sapin-Sapin",
		Quantity:       2,
		ContainerSize:  "12' Bilao",
		SpecialRequest: "  less sugar ",
		PickupPlace:    "Home",
		PickupDate:     "2024-12-24",
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(id, validOrderInput())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Maria Santos", cmd.BuyerName())
	assert.Equal(t, "09171234567", cmd.ContactNumber())
	assert.Equal(t, "12 Mabini St., Quezon City", cmd.Address())

	details := cmd.Details()
	assert.Equal(t, order.SapinSapin, details.Delicacy)
	assert.Equal(t, 2, details.Quantity)
	assert.Equal(t, order.Bilao12, details.ContainerSize)
	assert.Equal(t, "less sugar", details.SpecialRequest)
	assert.Equal(t, "Home", details.PickupPlace)
	assert.Equal(t, "2024-12-24", details.PickupDate.String())
}

func TestNewCreateOrderCommand_AcceptsCodes(t *testing.T) {
	input := validOrderInput()
	input.Delicacy = "suman_lihia"
	input.ContainerSize = "TAB"

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), input)

	require.NoError(t, err)
	assert.Equal(t, order.SumanLihia, cmd.Details().Delicacy)
	assert.Equal(t, order.Tab, cmd.Details().ContainerSize)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*commands.CreateOrderInput)
		target error
	}{
		{"unknown delicacy", func(in *commands.CreateOrderInput) { in.Delicacy = "Bibingka" }, errs.ErrValueIsInvalid},
		{"unknown container", func(in *commands.CreateOrderInput) { in.ContainerSize = "20' Bilao" }, errs.ErrValueIsInvalid},
		{"missing delicacy", func(in *commands.CreateOrderInput) { in.Delicacy = " " }, errs.ErrValueIsRequired},
		{"zero quantity", func(in *commands.CreateOrderInput) { in.Quantity = 0 }, errs.ErrValueIsOutOfRange},
		{"quantity above limit", func(in *commands.CreateOrderInput) { in.Quantity = 11 }, errs.ErrValueIsOutOfRange},
		{"short contact number", func(in *commands.CreateOrderInput) { in.ContactNumber = "0917123" }, errs.ErrValueIsInvalid},
		{"missing buyer name", func(in *commands.CreateOrderInput) { in.BuyerName = "" }, errs.ErrValueIsRequired},
		{"missing address", func(in *commands.CreateOrderInput) { in.Address = "" }, errs.ErrValueIsRequired},
		{"missing pickup place", func(in *commands.CreateOrderInput) { in.PickupPlace = "" }, errs.ErrValueIsRequired},
		{"malformed pickup date", func(in *commands.CreateOrderInput) { in.PickupDate = "24/12/2024" }, errs.ErrValueIsInvalid},
		{"impossible pickup date", func(in *commands.CreateOrderInput) { in.PickupDate = "2023-02-30" }, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validOrderInput()
			tc.mutate(&input)

			cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), input)

			require.Error(t, err)
			require.ErrorIs(t, err, tc.target)
			assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
		})
	}
}

func TestNewCreateOrderCommand_JoinsAllErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), commands.CreateOrderInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "buyer name")
	assert.Contains(t, err.Error(), "pickup date")
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, validOrderInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

package main

import (
	"bytes"
	"context"
	"testing"

	"kakanin/cmd"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportSeed = seedFile{Orders: []seedOrder{
	{
		Buyer:         seedBuyer{Name: "Maria Santos", ContactNumber: "09171234567", Address: "12 Mabini St."},
		Delicacy:      "Sapin-Sapin",
		Quantity:      2,
		ContainerSize: "12' Bilao",
		PickupPlace:   "Home",
		PickupDate:    "2024-05-03",
		Status:        "Completed",
	},
	{
		Buyer:          seedBuyer{Name: "Jose Rizal", ContactNumber: "09181234567", Address: "1 Calamba Rd."},
		Delicacy:       "PUTO",
		Quantity:       1,
		ContainerSize:  "TAB",
		SpecialRequest: "less sugar",
		PickupPlace:    "Market",
		PickupDate:     "2024-05-03",
	},
	{
		Buyer:         seedBuyer{Name: "Maria Santos", ContactNumber: "09171234567", Address: "12 Mabini St."},
		Delicacy:      "Maja",
		Quantity:      3,
		ContainerSize: "SLICE",
		PickupPlace:   "Home",
		PickupDate:    "2023-12-24",
		Status:        "Canceled",
	},
}}

func seedApp(t *testing.T, app cmd.CompositionRoot, file seedFile) []kernel.UUID {
	t.Helper()
	creator := app.CreateCreateOrderCommandHandler()
	updater := app.CreateUpdateOrderStatusCommandHandler()
	ids, err := seedOrders(context.Background(), &creator, &updater, file)
	require.NoError(t, err)
	return ids
}

func TestExportOrders_SortsByPickupDate(t *testing.T) {
	app, _ := newSQLiteApp(t)
	seedApp(t, app, exportSeed)

	file, err := exportOrders(context.Background(), app.CreateUnitOfWork())
	require.NoError(t, err)

	expected := []seedOrder{
		{
			Buyer:         seedBuyer{Name: "Maria Santos", ContactNumber: "09171234567", Address: "12 Mabini St."},
			Delicacy:      "MAJA",
			Quantity:      3,
			ContainerSize: "SLICE",
			PickupPlace:   "Home",
			PickupDate:    "2023-12-24",
			Status:        "REMOVED",
		},
		{
			Buyer:         seedBuyer{Name: "Maria Santos", ContactNumber: "09171234567", Address: "12 Mabini St."},
			Delicacy:      "SAPIN_SAPIN",
			Quantity:      2,
			ContainerSize: "BILAO_12",
			PickupPlace:   "Home",
			PickupDate:    "2024-05-03",
			Status:        "COMPLETED",
		},
		{
			Buyer:          seedBuyer{Name: "Jose Rizal", ContactNumber: "09181234567", Address: "1 Calamba Rd."},
			Delicacy:       "PUTO",
			Quantity:       1,
			ContainerSize:  "TAB",
			SpecialRequest: "less sugar",
			PickupPlace:    "Market",
			PickupDate:     "2024-05-03",
			Status:         "PENDING",
		},
	}
	if diff := cmp.Diff(expected, file.Orders); diff != "" {
		t.Errorf("exported orders mismatch (-want +got):\n%s", diff)
	}
}

func TestExportOrders_ReseedsIntoSameHistory(t *testing.T) {
	source, _ := newSQLiteApp(t)
	seedApp(t, source, exportSeed)
	exported, err := exportOrders(context.Background(), source.CreateUnitOfWork())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf, exported))
	reparsed, err := parseSeed(&buf)
	require.NoError(t, err)

	target, _ := newSQLiteApp(t)
	seedApp(t, target, reparsed)
	again, err := exportOrders(context.Background(), target.CreateUnitOfWork())
	require.NoError(t, err)

	if diff := cmp.Diff(exported, again); diff != "" {
		t.Errorf("re-exported orders mismatch (-want +got):\n%s", diff)
	}
}

func TestExportOrders_Empty(t *testing.T) {
	app, _ := newSQLiteApp(t)

	file, err := exportOrders(context.Background(), app.CreateUnitOfWork())

	require.NoError(t, err)
	assert.Empty(t, file.Orders)
}

func TestExportOrders_MissingBuyer(t *testing.T) {
	app, db := newSQLiteApp(t)
	ids := seedApp(t, app, seedFile{Orders: exportSeed.Orders[:1]})
	require.NoError(t, db.Exec("DELETE FROM buyer_info").Error)

	_, err := exportOrders(context.Background(), app.CreateUnitOfWork())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), ids[0].String())
}

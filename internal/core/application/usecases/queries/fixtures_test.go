package queries_test

import (
	"context"
	"testing"

	"kakanin/internal/adapters/out/postgres/buyerrepo"
	"kakanin/internal/adapters/out/postgres/orderrepo"
	"kakanin/internal/adapters/out/postgres/pgtest"
	"kakanin/internal/core/domain/model/buyer"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// fixture writes orders through the repositories so queries read real rows.
type fixture struct {
	t      *testing.T
	db     *gorm.DB
	buyer  *buyer.Buyer
	userID kernel.UUID
}

func newSQLiteFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := pgtest.OpenSQLite()
	require.NoError(t, err)
	return newFixture(t, db)
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	b, err := buyer.NewBuyer(kernel.NewUUID(), "Maria Santos", "09171234567", "12 Mabini St.")
	require.NoError(t, err)
	require.NoError(t, buyerrepo.NewGormBuyerRepository(db, noopTracker{}).Add(context.Background(), b))

	return &fixture{t: t, db: db, buyer: b, userID: kernel.NewUUID()}
}

func (f *fixture) addOrder(date string, delicacy order.Delicacy, status order.Status) *order.Order {
	f.t.Helper()
	pickupDate, err := kernel.ParsePickupDate(date)
	require.NoError(f.t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), f.userID, f.buyer.ID(), order.Details{
		Delicacy:      delicacy,
		Quantity:      1,
		ContainerSize: order.Bilao10,
		PickupPlace:   "Home",
		PickupDate:    pickupDate,
	}, status)
	require.NoError(f.t, err)
	require.NoError(f.t, orderrepo.NewGormOrderRepository(f.db, noopTracker{}).Add(context.Background(), o))
	return o
}

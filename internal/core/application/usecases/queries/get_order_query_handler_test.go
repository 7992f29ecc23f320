package queries_test

import (
	"testing"

	"kakanin/internal/core/application/usecases/queries"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	f := newSQLiteFixture(t)
	o := f.addOrder("2024-12-24", order.PichiPichi, order.Pending)
	h := queries.NewGetOrderQueryHandler(f.db)

	t.Run("should return the order", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)

		view, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(view.ID))
		assert.Equal(t, order.PichiPichi, view.Delicacy)
		assert.Equal(t, "2024-12-24", view.PickupDate.String())
		assert.Equal(t, "Home", view.PickupPlace)
	})

	t.Run("should report unknown order", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

package queries_test

import (
	"testing"

	"kakanin/internal/adapters/out/postgres/pgtest"
	"kakanin/internal/adapters/out/postgres/userrepo"
	"kakanin/internal/core/application/usecases/queries"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func TestAuthenticateQueryHandler_Handle(t *testing.T) {
	db, err := pgtest.OpenSQLite()
	require.NoError(t, err)
	h := queries.NewAuthenticateQueryHandler(db)

	t.Run("should refuse when no admin exists", func(t *testing.T) {
		err := h.Handle(t.Context(), queries.NewAuthenticateQuery("admin", "password"))

		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	admin, err := user.NewUser(kernel.NewUUID(), "admin", "password")
	require.NoError(t, err)
	require.NoError(t, userrepo.NewGormUserRepository(db, noopTracker{}).Add(t.Context(), admin))

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"should accept correct credentials", "admin", "password", nil},
		{"should refuse wrong password", "admin", "passw0rd", user.ErrInvalidCredentials},
		{"should refuse unknown username", "root", "password", user.ErrInvalidCredentials},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := h.Handle(t.Context(), queries.NewAuthenticateQuery(tc.username, tc.password))

			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("should reject query built without constructor", func(t *testing.T) {
		require.ErrorIs(t, h.Handle(t.Context(), queries.AuthenticateQuery{}), queries.ErrAuthenticateQueryIsNotConstructed)
	})
}

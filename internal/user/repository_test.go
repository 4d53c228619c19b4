package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
			AddRow("u-1", "buyer@example.com", "hashed", "user", time.Now())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "buyer@example.com", "hashed", RoleUser).
			WillReturnRows(rows)

		u, err := repo.Create(ctx, "buyer@example.com", "hashed", RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, "buyer@example.com", "hashed", RoleUser)
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
			AddRow("u-1", "buyer@example.com", "hashed", "user", time.Now())

		mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE email = \$1`).
			WithArgs("buyer@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "buyer@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}))

		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
			AddRow("u-1", "buyer@example.com", "hashed", "admin", time.Now())

		mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(rows)

		u, err := repo.FindByID(ctx, "u-1")
		assert.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}))

		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

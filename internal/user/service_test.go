package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, email, hash string, role Role) (User, error)
	findByEmailFn func(ctx context.Context, email string) (User, error)
	findByIDFn    func(ctx context.Context, id string) (User, error)
}

func (f *fakeRepo) Create(ctx context.Context, email, hash string, role Role) (User, error) {
	return f.createFn(ctx, email, hash, role)
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (User, error) {
	return f.findByIDFn(ctx, id)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, email, hash string, role Role) (User, error) {
				assert.Equal(t, RoleUser, role)
				assert.True(t, CheckPasswordHash("pass123", hash))
				return User{ID: "u-1", Email: email, Password: hash, Role: role}, nil
			},
		}
		svc := NewService(repo)

		token, u, err := svc.Register(ctx, "buyer@example.com", "pass123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc := NewService(&fakeRepo{})

		_, _, err := svc.Register(ctx, "not-an-email", "pass123")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, email, hash string, role Role) (User, error) {
				return User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)
			},
		}
		svc := NewService(repo)

		_, _, err := svc.Register(ctx, "buyer@example.com", "pass123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	ctx := context.Background()

	hash, err := HashPassword("pass123")
	require.NoError(t, err)

	stored := User{ID: "u-1", Email: "buyer@example.com", Password: hash, Role: RoleUser}

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (User, error) {
				return stored, nil
			},
		}
		svc := NewService(repo)

		token, u, err := svc.Login(ctx, "buyer@example.com", "pass123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (User, error) {
				return User{}, ErrNotFound
			},
		}
		svc := NewService(repo)

		_, _, err := svc.Login(ctx, "nobody@example.com", "pass123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (User, error) {
				return stored, nil
			},
		}
		svc := NewService(repo)

		_, _, err := svc.Login(ctx, "buyer@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

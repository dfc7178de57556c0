package services

import (
	"context"
	"testing"

	"github.com/praiaclube/beachtennis-system/models"
	"github.com/praiaclube/beachtennis-system/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrUserEmailConflict
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the trimmed full name and defaults to staff", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		user, err := svc.Register(ctx, RegisterInput{
			FullName: "  Maria Souza  ",
			Email:    "Maria@Clube.BR",
			Password: "segredo-forte",
		})
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", user.FullName)
		assert.Equal(t, "maria@clube.br", user.Email)
		assert.Equal(t, models.RoleStaff, user.Role)
		assert.Empty(t, user.PasswordHash, "hash never leaves the service")

		stored, err := repo.GetByEmail(ctx, "maria@clube.br")
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", stored.FullName)
		assert.NotEmpty(t, stored.PasswordHash)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())
		_, err := svc.Register(ctx, RegisterInput{FullName: "Ana", Email: "ana@clube.br", Password: "curta"})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())
		input := RegisterInput{FullName: "Ana", Email: "ana@clube.br", Password: "segredo-forte"}
		_, err := svc.Register(ctx, input)
		require.NoError(t, err)
		_, err = svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrUserEmailConflict)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())
		_, err := svc.Register(ctx, RegisterInput{FullName: "Ana", Email: "ana@clube.br", Password: "segredo-forte", Role: "owner"})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(ctx, RegisterInput{
		FullName: "Maria Souza",
		Email:    "maria@clube.br",
		Password: "segredo-forte",
		Role:     "admin",
	})
	require.NoError(t, err)

	t.Run("valid credentials return the user", func(t *testing.T) {
		user, err := svc.Login(ctx, LoginInput{Email: "MARIA@clube.br", Password: "segredo-forte"})
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", user.FullName)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "maria@clube.br", Password: "errada-errada"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "ninguem@clube.br", Password: "segredo-forte"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

package usecase

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/infrastructure/slot"
	"sueahahn/internal/store"
)

const testPassword = "pw12"

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(slot.NewMemory("test_db"), nil)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func newAuth(s *store.Store) *AuthUseCase {
	return NewAuthUseCase(s, validator.New(), 4)
}

func newValidate() *validator.Validate {
	return validator.New()
}

func signup(t *testing.T, auth *AuthUseCase, email, name string) *entity.User {
	t.Helper()
	user, err := auth.Signup(context.Background(), SignupInput{
		Email:       email,
		Password:    testPassword,
		DisplayName: name,
	})
	require.NoError(t, err)
	return user
}

func loginAs(t *testing.T, auth *AuthUseCase, email string) *entity.User {
	t.Helper()
	user, err := auth.Login(context.Background(), email, testPassword)
	require.NoError(t, err)
	return user
}

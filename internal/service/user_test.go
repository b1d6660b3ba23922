package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beingsaumyadeep/py-commerce/internal/models"
)

func TestRegisterHashesPassword(t *testing.T) {
	gdb := newTestDB(t)
	svc := &UserService{DB: gdb}

	user, err := svc.Register(context.Background(), "a@b.com", "hunter2", "Alice B")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.True(t, user.IsActive)
	require.False(t, user.IsAdmin)
	require.NotEqual(t, "hunter2", user.HashedPassword)

	var stored models.User
	require.NoError(t, gdb.First(&stored, user.ID).Error)
	require.NotContains(t, stored.HashedPassword, "hunter2")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	gdb := newTestDB(t)
	svc := &UserService{DB: gdb}

	_, err := svc.Register(context.Background(), "a@b.com", "hunter2", "Alice B")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@b.com", "other", "Imposter")
	require.ErrorIs(t, err, ErrConflict)

	require.EqualValues(t, 1, countRows(t, gdb, &models.User{}))
}

func TestRegisterValidation(t *testing.T) {
	gdb := newTestDB(t)
	svc := &UserService{DB: gdb}

	_, err := svc.Register(context.Background(), "", "pw", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), "a@b.com", "", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestLogin(t *testing.T) {
	gdb := newTestDB(t)
	svc := &UserService{DB: gdb}

	_, err := svc.Register(context.Background(), "a@b.com", "hunter2", "Alice B")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "a@b.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", user.Email)

	_, err = svc.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@b.com", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByEmail(t *testing.T) {
	gdb := newTestDB(t)
	svc := &UserService{DB: gdb}
	seedUser(t, gdb, "a@b.com")

	user, err := svc.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", user.Email)

	_, err = svc.GetByEmail(context.Background(), "missing@b.com")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "user", nf.Entity)
}

func TestListUsersClampsParams(t *testing.T) {
	gdb := newTestDB(t)
	svc := &UserService{DB: gdb}

	seedUser(t, gdb, "a@b.com")
	seedUser(t, gdb, "b@b.com")

	users, err := svc.ListUsers(context.Background(), -10, -10)
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = svc.ListUsers(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "b@b.com", users[0].Email)
}

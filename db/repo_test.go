package db

import (
	"context"
	"testing"
	"time"

	"Gin_sqlite_redis_archive_tool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	email := "maria@example.com"
	u := &models.User{Username: "maria", PasswordHash: "$2a$10$x", Email: &email}
	require.NoError(t, r.CreateUser(ctx, u))

	token, err := r.GenerateResetToken(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := r.FindUserByResetToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotNil(t, got.TokenExpiry)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *got.TokenExpiry, time.Minute)

	// Changing the password clears the token and its expiry.
	require.NoError(t, r.UpdateUserPassword(ctx, u.ID, "$2a$10$y"))

	_, err = r.FindUserByResetToken(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	fresh, err := r.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.ResetToken)
	assert.Nil(t, fresh.TokenExpiry)
	assert.Equal(t, "$2a$10$y", fresh.PasswordHash)
}

func TestFindUserByEmailAndUsername(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	email := "jose@example.com"
	require.NoError(t, r.CreateUser(ctx, &models.User{
		Username: "jose", PasswordHash: "$2a$10$x", Email: &email,
	}))

	u, err := r.FindUserByUsername(ctx, "jose")
	require.NoError(t, err)
	assert.Equal(t, email, *u.Email)

	u, err = r.FindUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "jose", u.Username)

	_, err = r.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserEmailNotFound(t *testing.T) {
	r := newTestRepo(t)
	assert.ErrorIs(t, r.UpdateUserEmail(context.Background(), 42, "x@example.com"), ErrNotFound)
}

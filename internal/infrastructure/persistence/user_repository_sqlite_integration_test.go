//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_CRUD(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	admin := CreateTestUser(t, "admin", users.RoleAdmin)
	viewer := CreateTestUser(t, "viewer1", users.RoleViewer)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), admin))
	require.NoError(t, ctx.UserRepo.Create(context.Background(), viewer))

	fetched, err := ctx.UserRepo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, fetched.ID)
	assert.True(t, fetched.Active)

	query := users.NewUserQuery()
	query.Role = users.RoleViewer
	list, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, viewer.ID, list[0].ID)

	path := "profiles/a.png"
	viewer.ProfileImagePath = &path
	viewer.Active = false
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), viewer))

	fetched, err = ctx.UserRepo.GetByID(context.Background(), viewer.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.ProfileImagePath)
	assert.Equal(t, path, *fetched.ProfileImagePath)
	assert.False(t, fetched.Active)

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), viewer.ID))
	_, err = ctx.UserRepo.GetByUsername(context.Background(), "viewer1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

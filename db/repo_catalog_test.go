package db

import (
	"context"
	"testing"

	"Gin_sqlite_redis_archive_tool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNameIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateDepartment(ctx, &models.Department{Name: "Legal"}))
	require.NoError(t, r.CreateDepartment(ctx, &models.Department{Name: "Contabilidad"}))

	m, err := r.DepartmentNameIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.NotZero(t, m["Legal"])
	assert.NotZero(t, m["Contabilidad"])
}

func TestCatalogNameIDsDuplicateNamesLastWins(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := &models.Department{Name: "Legal"}
	second := &models.Department{Name: "Legal"}
	require.NoError(t, r.CreateDepartment(ctx, first))
	require.NoError(t, r.CreateDepartment(ctx, second))

	m, err := r.DepartmentNameIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, m["Legal"])
}

func TestCatalogUpdateDeleteNotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, r.UpdateDepartment(ctx, 99, "x", ""), ErrNotFound)
	assert.ErrorIs(t, r.DeleteDepartment(ctx, 99), ErrNotFound)
	assert.ErrorIs(t, r.UpdateBoxType(ctx, 99, "x"), ErrNotFound)
	assert.ErrorIs(t, r.DeleteBoxType(ctx, 99), ErrNotFound)
	assert.ErrorIs(t, r.UpdateWarehouse(ctx, 99, "x", ""), ErrNotFound)
	assert.ErrorIs(t, r.DeleteWarehouse(ctx, 99), ErrNotFound)
	assert.ErrorIs(t, r.UpdateLocation(ctx, 99, "x"), ErrNotFound)
	assert.ErrorIs(t, r.DeleteLocation(ctx, 99), ErrNotFound)
}

func TestWarehouseKeepsSize(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	w := &models.Warehouse{Name: "Bodega Sur", Size: "35m"}
	require.NoError(t, r.CreateWarehouse(ctx, w))
	require.NoError(t, r.UpdateWarehouse(ctx, w.ID, "Bodega Sur", "40m"))

	ws, err := r.ListWarehouses(ctx)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "40m", ws[0].Size)
}

package db

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"Gin_sqlite_redis_archive_tool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBoxAllocatesSequentialIDs(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	prev := 0
	for i := 0; i < 5; i++ {
		id, err := r.CreateBox(ctx, testBox(dep, typ, wh, loc))
		require.NoError(t, err)
		require.Len(t, id, DisplayIDWidth)

		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		assert.Equal(t, prev+1, n, "ids must increase by one with no gaps")
		prev = n
	}
	assert.Equal(t, "00001", fmt.Sprintf("%0*d", DisplayIDWidth, 1))
}

func TestAllocatorSkipsExplicitIDs(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	b := testBox(dep, typ, wh, loc)
	b.DisplayID = "00042"
	require.NoError(t, r.CreateBoxWithDisplayID(ctx, b))

	id, err := r.CreateBox(ctx, testBox(dep, typ, wh, loc))
	require.NoError(t, err)
	assert.Equal(t, "00043", id, "allocation continues past the explicit maximum")
}

func TestCreateBoxWithDisplayIDRejectsDuplicates(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	b := testBox(dep, typ, wh, loc)
	b.DisplayID = "00042"
	require.NoError(t, r.CreateBoxWithDisplayID(ctx, b))

	dup := testBox(dep, typ, wh, loc)
	dup.DisplayID = "00042"
	err := r.CreateBoxWithDisplayID(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateDisplayID)
}

func TestGetBoxResolvesCatalogNames(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	b := testBox(dep, typ, wh, loc)
	_, err := r.CreateBox(ctx, b)
	require.NoError(t, err)

	row, err := r.GetBox(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Legal", row.Department)
	assert.Equal(t, "Expediente", row.Type)
	assert.Equal(t, "Bodega Norte", row.Warehouse)
	assert.Equal(t, "Planta 1", row.Location)
	assert.Equal(t, "00001", row.DisplayID)
}

func TestGetBoxDanglingCatalogResolvesEmpty(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	b := testBox(dep, typ, wh, loc)
	_, err := r.CreateBox(ctx, b)
	require.NoError(t, err)

	require.NoError(t, r.DeleteDepartment(ctx, dep))

	row, err := r.GetBox(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, row.Department, "deleted catalog reference displays as unknown")
	assert.Equal(t, "Expediente", row.Type)
}

func TestSearchBoxes(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	other := &models.Department{Name: "Contabilidad"}
	require.NoError(t, r.CreateDepartment(ctx, other))

	// Three matches for "2023": by year, by observation, by description.
	for i := 0; i < 2; i++ {
		_, err := r.CreateBox(ctx, testBox(dep, typ, wh, loc))
		require.NoError(t, err)
	}
	b3 := testBox(other.ID, typ, wh, loc)
	b3.Year = "2019"
	b3.Observation = "revisado en 2023"
	_, err := r.CreateBox(ctx, b3)
	require.NoError(t, err)

	b4 := testBox(other.ID, typ, wh, loc)
	b4.Year = "2019"
	_, err = r.CreateBox(ctx, b4)
	require.NoError(t, err)

	rows, total, err := r.SearchBoxes(ctx, "2023", 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 3)

	// Case-insensitive match against a joined catalog name.
	rows, total, err = r.SearchBoxes(ctx, "contabilidad", 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	// Total reflects all matches even when the page is smaller.
	rows, total, err = r.SearchBoxes(ctx, "2023", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 2)

	rows, total, err = r.SearchBoxes(ctx, "no-such-thing", 1, 50)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
}

func TestListBoxesNormalizesPaging(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.CreateBox(ctx, testBox(dep, typ, wh, loc))
		require.NoError(t, err)
	}

	// Non-positive page/size fall back to 1 and 50.
	rows, total, err := r.ListBoxes(ctx, 0, -7)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 3)

	rows, total, err = r.ListBoxes(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 1)
}

func TestUpdateBoxNotFound(t *testing.T) {
	r := newTestRepo(t)
	err := r.UpdateBox(context.Background(), 999, BoxFields{Year: "2024"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBoxCascadesLoans(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	b := testBox(dep, typ, wh, loc)
	_, err := r.CreateBox(ctx, b)
	require.NoError(t, err)

	loan := &models.Loan{
		BoxID:    b.ID,
		Item:     "carpeta 12",
		LoanDate: "2024-01-10",
		DueDate:  "2024-01-20",
		Email:    "ana@example.com",
	}
	require.NoError(t, r.CreateLoan(ctx, loan))

	require.NoError(t, r.DeleteBox(ctx, b.ID))

	_, err = r.GetBox(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.FindLoanByID(ctx, loan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, r.DeleteBox(ctx, b.ID), ErrNotFound)
}

func TestListBoxesByDisplayRange(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	for _, id := range []string{"00010", "00002", "00025"} {
		b := testBox(dep, typ, wh, loc)
		b.DisplayID = id
		require.NoError(t, r.CreateBoxWithDisplayID(ctx, b))
	}

	rows, err := r.ListBoxesByDisplayRange(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "00002", rows[0].DisplayID, "numeric order, not insertion order")
	assert.Equal(t, "00010", rows[1].DisplayID)
}

func TestUsedDisplayIDs(t *testing.T) {
	r := newTestRepo(t)
	dep, typ, wh, loc := seedCatalogs(t, r)
	ctx := context.Background()

	b := testBox(dep, typ, wh, loc)
	b.DisplayID = "00042"
	require.NoError(t, r.CreateBoxWithDisplayID(ctx, b))

	used, err := r.UsedDisplayIDs(ctx)
	require.NoError(t, err)
	_, ok := used["00042"]
	assert.True(t, ok)
	assert.Len(t, used, 1)
}

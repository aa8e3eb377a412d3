package db

import (
	"context"
	"testing"
	"time"

	"Gin_sqlite_redis_archive_tool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBox(t *testing.T, r *Repo) *models.Box {
	t.Helper()
	dep, typ, wh, loc := seedCatalogs(t, r)
	b := testBox(dep, typ, wh, loc)
	_, err := r.CreateBox(context.Background(), b)
	require.NoError(t, err)
	return b
}

func TestMarkLoanReturnedIsOneWay(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	box := seedBox(t, r)

	loan := &models.Loan{
		BoxID:    box.ID,
		Item:     "expediente 7",
		LoanDate: "2024-03-01",
		DueDate:  "2024-03-15",
		Email:    "luis@example.com",
	}
	require.NoError(t, r.CreateLoan(ctx, loan))

	today := time.Now().Format(models.DateLayout)

	got, err := r.MarkLoanReturned(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, got.Returned)
	assert.Equal(t, today, got.ReturnedDate)

	// Second call keeps the flag and the original date.
	again, err := r.MarkLoanReturned(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, again.Returned)
	assert.Equal(t, got.ReturnedDate, again.ReturnedDate)
}

func TestMarkLoanReturnedNotFound(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.MarkLoanReturned(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLoanDoesNotTouchReturnedFlag(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	box := seedBox(t, r)

	loan := &models.Loan{
		BoxID:    box.ID,
		Item:     "carpeta",
		LoanDate: "2024-03-01",
		DueDate:  "2024-03-15",
		Email:    "luis@example.com",
	}
	require.NoError(t, r.CreateLoan(ctx, loan))
	_, err := r.MarkLoanReturned(ctx, loan.ID)
	require.NoError(t, err)

	require.NoError(t, r.UpdateLoan(ctx, loan.ID, LoanFields{
		BoxID:    box.ID,
		Item:     "carpeta (corregido)",
		LoanDate: "2024-03-02",
		DueDate:  "2024-03-20",
		Email:    "luis@example.com",
	}))

	got, err := r.FindLoanByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, got.Returned)
	assert.Equal(t, "carpeta (corregido)", got.Item)
}

func TestListLoansByStatus(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	box := seedBox(t, r)

	var loans []*models.Loan
	for i := 0; i < 3; i++ {
		l := &models.Loan{
			BoxID: box.ID, Item: "item", LoanDate: "2024-01-01", DueDate: "2024-02-01",
			Email: "x@example.com",
		}
		require.NoError(t, r.CreateLoan(ctx, l))
		loans = append(loans, l)
	}
	_, err := r.MarkLoanReturned(ctx, loans[0].ID)
	require.NoError(t, err)

	open, err := r.ListLoans(ctx, box.ID, "open")
	require.NoError(t, err)
	assert.Len(t, open, 2)

	returned, err := r.ListLoans(ctx, 0, "returned")
	require.NoError(t, err)
	assert.Len(t, returned, 1)

	all, err := r.ListLoans(ctx, box.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListOverdueLoans(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	box := seedBox(t, r)

	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	today := time.Now().Format(models.DateLayout)

	overdueOpen := &models.Loan{
		BoxID: box.ID, Item: "a", LoanDate: "2024-01-01", DueDate: yesterday,
		Email: "late@example.com",
	}
	require.NoError(t, r.CreateLoan(ctx, overdueOpen))

	// Same due date but already returned: no notice.
	returned := &models.Loan{
		BoxID: box.ID, Item: "b", LoanDate: "2024-01-01", DueDate: yesterday,
		Email: "ok@example.com",
	}
	require.NoError(t, r.CreateLoan(ctx, returned))
	_, err := r.MarkLoanReturned(ctx, returned.ID)
	require.NoError(t, err)

	// Due today is not overdue: the comparison is strict.
	dueToday := &models.Loan{
		BoxID: box.ID, Item: "c", LoanDate: "2024-01-01", DueDate: today,
		Email: "ontime@example.com",
	}
	require.NoError(t, r.CreateLoan(ctx, dueToday))

	rows, err := r.ListOverdueLoans(ctx, today)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, overdueOpen.ID, rows[0].LoanID)
	assert.Equal(t, "late@example.com", rows[0].Email)
	assert.Equal(t, box.DisplayID, rows[0].BoxDisplayID)
	assert.Equal(t, yesterday, rows[0].DueDate)
}

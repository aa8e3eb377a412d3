package db

import (
	"context"
	"time"

	"Gin_sqlite_redis_archive_tool/models"
)

func (r *Repo) CreateLoan(ctx context.Context, l *models.Loan) error {
	return r.DB.WithContext(ctx).Create(l).Error
}

func (r *Repo) FindLoanByID(ctx context.Context, id uint) (*models.Loan, error) {
	var l models.Loan
	if err := r.DB.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *Repo) ListLoans(ctx context.Context, boxID uint, status string) ([]models.Loan, error) {
	q := r.DB.WithContext(ctx).Model(&models.Loan{}).Order("id")
	if boxID != 0 {
		q = q.Where("box_id = ?", boxID)
	}
	switch status {
	case "open":
		q = q.Where("returned = ?", false)
	case "returned":
		q = q.Where("returned = ?", true)
	}
	var ls []models.Loan
	if err := q.Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}

// LoanFields carries the editable columns; the returned flag only moves
// through MarkLoanReturned.
type LoanFields struct {
	BoxID    uint
	Item     string
	LoanDate string
	DueDate  string
	Email    string
}

func (r *Repo) UpdateLoan(ctx context.Context, id uint, f LoanFields) error {
	return checked(r.DB.WithContext(ctx).Model(&models.Loan{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"box_id":    f.BoxID,
			"item":      f.Item,
			"loan_date": f.LoanDate,
			"due_date":  f.DueDate,
			"email":     f.Email,
		}))
}

func (r *Repo) DeleteLoan(ctx context.Context, id uint) error {
	return checked(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Loan{}))
}

// MarkLoanReturned is the only state transition a loan has: open → returned,
// stamped with today's date. Calling it on an already-returned loan is a
// no-op that keeps the original return date.
func (r *Repo) MarkLoanReturned(ctx context.Context, id uint) (*models.Loan, error) {
	l, err := r.FindLoanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Returned {
		return l, nil
	}
	today := time.Now().Format(models.DateLayout)
	if err := checked(r.DB.WithContext(ctx).Model(&models.Loan{}).
		Where("id = ?", id).
		Updates(map[string]any{"returned": true, "returned_date": today})); err != nil {
		return nil, err
	}
	l.Returned = true
	l.ReturnedDate = today
	return l, nil
}

// OverdueLoan is what the notifier needs per notice: where to send it and
// which box/date to name.
type OverdueLoan struct {
	LoanID       uint   `json:"loanId"`
	Email        string `json:"email"`
	BoxDisplayID string `json:"boxDisplayId"`
	DueDate      string `json:"dueDate"`
}

// ListOverdueLoans returns open loans whose due date is strictly before the
// given calendar date (ISO string compare).
func (r *Repo) ListOverdueLoans(ctx context.Context, today string) ([]OverdueLoan, error) {
	var rows []OverdueLoan
	err := r.DB.WithContext(ctx).
		Table(models.LoanTable+" p").
		Select("p.id AS loan_id, p.email, b.display_id AS box_display_id, p.due_date").
		Joins("JOIN "+models.BoxTable+" b ON b.id = p.box_id").
		Where("p.returned = ? AND p.due_date < ?", false, today).
		Order("p.due_date").
		Scan(&rows).Error
	return rows, err
}

package models

import "time"

const LoanTable = "loans"

// Loan tracks an item temporarily checked out of a box. Dates are stored as
// ISO "2006-01-02" strings so calendar comparison works lexicographically,
// matching the due-date scan in the overdue notifier.
type Loan struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	BoxID uint   `gorm:"index;not null" json:"boxId"`
	Item  string `gorm:"size:255;not null" json:"item"`

	LoanDate string `gorm:"size:10;not null" json:"loanDate"`
	DueDate  string `gorm:"size:10;not null" json:"dueDate"`

	Returned     bool   `gorm:"not null;default:false" json:"returned"`
	ReturnedDate string `gorm:"size:10" json:"returnedDate,omitempty"`

	// Email of the responsible party, target of overdue notices.
	Email string `gorm:"size:255;not null" json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Loan) TableName() string { return LoanTable }

const DateLayout = "2006-01-02"

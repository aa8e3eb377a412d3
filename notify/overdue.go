package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/models"

	"github.com/robfig/cron/v3"
)

// Notifier scans open loans past their due date and mails the responsible
// party, one notice per loan. It shares the store with the request path but
// takes no lock: a concurrent return either lands before the scan (no mail)
// or after (one extra mail), never corruption.
type Notifier struct {
	repo   *db.Repo
	sender Sender
}

func NewNotifier(repo *db.Repo, sender Sender) *Notifier {
	return &Notifier{repo: repo, sender: sender}
}

// RunOnce performs a single scan. A failed send is logged and the loop moves
// on; there is no retry or dead-letter, the next scheduled scan will pick the
// loan up again if it is still open.
func (n *Notifier) RunOnce(ctx context.Context) error {
	today := time.Now().Format(models.DateLayout)
	overdue, err := n.repo.ListOverdueLoans(ctx, today)
	if err != nil {
		return fmt.Errorf("list overdue loans: %w", err)
	}
	for _, loan := range overdue {
		subject := fmt.Sprintf("Préstamo vencido: Caja %s", loan.BoxDisplayID)
		body := fmt.Sprintf(
			"El préstamo de la caja %s venció el %s.\nPor favor, gestionar la devolución a la brevedad.",
			loan.BoxDisplayID, loan.DueDate,
		)
		if err := n.sender.Send(loan.Email, subject, body); err != nil {
			log.Printf("overdue notice for loan %d to %s failed: %v", loan.LoanID, loan.Email, err)
			continue
		}
		log.Printf("overdue notice sent for loan %d (caja %s)", loan.LoanID, loan.BoxDisplayID)
	}
	return nil
}

// Schedule runs RunOnce on the given cron spec (default: daily at 09:00) and
// returns the started scheduler so main can Stop it on shutdown.
func (n *Notifier) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := n.RunOnce(context.Background()); err != nil {
			log.Printf("overdue scan failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule overdue scan: %w", err)
	}
	c.Start()
	log.Printf("overdue notifier scheduled (%s)", spec)
	return c, nil
}

package utils

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"startupos/models"
	"startupos/store"
)

// MarkOverdueInvoices flips sent invoices whose due date has passed to
// overdue. Returns the number of invoices updated.
func MarkOverdueInvoices(reg *store.Registry, now time.Time) int {
	ctx := context.Background()

	invoices, err := reg.Invoices.GetAll(ctx)
	if err != nil {
		log.Println("[OPS-SCHEDULER] Failed to list invoices:", err)
		return 0
	}

	updated := 0
	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusSent || inv.DueDate == nil {
			continue
		}
		if !inv.DueDate.Before(now) {
			continue
		}
		if _, err := reg.Invoices.Update(ctx, inv.ID, map[string]any{"status": models.InvoiceStatusOverdue}); err != nil {
			log.Println("[OPS-SCHEDULER] Failed to mark invoice overdue:", err)
			continue
		}
		updated++
	}
	return updated
}

// SendAuditReminders mails founders whose next compliance audit falls within
// the coming week. Returns the number of reminders sent.
func SendAuditReminders(reg *store.Registry, now time.Time) int {
	ctx := context.Background()

	records, err := reg.Compliance.GetAll(ctx)
	if err != nil {
		log.Println("[OPS-SCHEDULER] Failed to list compliance records:", err)
		return 0
	}

	cutoff := now.AddDate(0, 0, 7)
	sent := 0
	for _, rec := range records {
		if rec.NextAuditDate == nil {
			continue
		}
		if rec.NextAuditDate.Before(now) || rec.NextAuditDate.After(cutoff) {
			continue
		}
		startup, err := reg.Startups.GetByID(ctx, rec.StartupID)
		if err != nil {
			continue
		}
		SendAuditReminder(startup.FounderEmail, startup.FounderName, rec.NextAuditDate.Format("02 Jan 2006"))
		sent++
	}
	return sent
}

// InitializeOperationsScheduler runs the daily operations sweep at 9 AM:
// overdue invoice marking and audit reminders.
func InitializeOperationsScheduler(reg *store.Registry) {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		log.Println("[OPS-SCHEDULER] Running daily operations sweep...")
		now := time.Now()
		overdue := MarkOverdueInvoices(reg, now)
		reminders := SendAuditReminders(reg, now)
		log.Printf("[OPS-SCHEDULER] Sweep complete: %d invoices marked overdue, %d audit reminders sent", overdue, reminders)
	})
	if err != nil {
		log.Println("[OPS-SCHEDULER] Failed to schedule daily sweep:", err)
		return
	}

	c.Start()
	log.Println("[OPS-SCHEDULER] Operations scheduler started (daily at 9 AM)")
}

package models

import "time"

const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

type Invoice struct {
	Base
	ClientName string     `gorm:"not null" json:"clientName"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Status     string     `gorm:"default:'draft'" json:"status"`
	IssueDate  *time.Time `json:"issueDate"`
	DueDate    *time.Time `json:"dueDate"`
	PaidDate   *time.Time `json:"paidDate"`
}

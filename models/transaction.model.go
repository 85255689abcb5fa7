package models

import "time"

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusOverdue   = "overdue"
)

type Transaction struct {
	Base
	Type        string     `gorm:"not null" json:"type"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Category    string     `gorm:"default:''" json:"category"`
	Description string     `gorm:"default:''" json:"description"`
	Date        *time.Time `json:"date"`
	Status      string     `gorm:"default:'pending'" json:"status"`
}

package models

import "time"

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusApproved    = "approved"
	ApplicationStatusRejected    = "rejected"
)

// Application is a raw program application prior to full onboarding.
type Application struct {
	Base
	FounderName      string     `gorm:"not null" json:"founderName"`
	Email            string     `gorm:"not null" json:"email"`
	Phone            string     `gorm:"default:''" json:"phone"`
	BusinessName     string     `gorm:"not null" json:"businessName"`
	StartupType      string     `gorm:"default:''" json:"startupType"`
	BusinessIdea     string     `gorm:"type:text" json:"businessIdea"`
	InvestmentAmount string     `gorm:"default:''" json:"investmentAmount"`
	Timeline         string     `gorm:"default:''" json:"timeline"`
	Status           string     `gorm:"default:'pending'" json:"status"`
	SubmittedAt      *time.Time `json:"submittedAt"`
}

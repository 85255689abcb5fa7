package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ComplianceCategoryDataSecurity = "data-security"
	ComplianceCategoryBusiness     = "business-compliance"
	ComplianceCategoryPolicy       = "startup-policy"
	ComplianceCategoryFinancial    = "financial-compliance"
)

// ComplianceCategories in display order.
var ComplianceCategories = []string{
	ComplianceCategoryDataSecurity,
	ComplianceCategoryBusiness,
	ComplianceCategoryPolicy,
	ComplianceCategoryFinancial,
}

const (
	ComplianceStatusCompliant    = "compliant"
	ComplianceStatusNonCompliant = "non-compliant"
	ComplianceStatusInProgress   = "in-progress"
	ComplianceStatusNotStarted   = "not-started"
)

// ComplianceRequirement is one checklist item inside a compliance record.
type ComplianceRequirement struct {
	ID            int        `json:"id"`
	Requirement   string     `json:"requirement"`
	Status        string     `json:"status"`
	CompletedDate *time.Time `json:"completedDate"`
}

// AuditEntry is one historical audit result.
type AuditEntry struct {
	Date    time.Time `json:"date"`
	Auditor string    `json:"auditor"`
	Result  string    `json:"result"`
	Score   int       `json:"score"`
}

type ComplianceRecord struct {
	Base
	StartupID uint `gorm:"index;not null" json:"startupId"`

	Category        string     `gorm:"not null" json:"category"`
	Status          string     `gorm:"default:'not-started'" json:"status"`
	ComplianceScore int        `gorm:"default:0" json:"complianceScore"`
	LastAuditDate   *time.Time `json:"lastAuditDate"`
	NextAuditDate   *time.Time `json:"nextAuditDate"`

	Requirements datatypes.JSONType[[]ComplianceRequirement] `json:"requirements"`
	AuditHistory datatypes.JSONType[[]AuditEntry]            `json:"auditHistory"`
}

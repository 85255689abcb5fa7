package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// Document slots collected during KYC. businessPlan is the only optional one.
const (
	DocumentSlotPANCard      = "panCard"
	DocumentSlotAadhaarCard  = "aadhaarCard"
	DocumentSlotAddressProof = "addressProof"
	DocumentSlotFounderPhoto = "founderPhoto"
	DocumentSlotBusinessPlan = "businessPlan"
)

// RequiredDocumentSlots must all be attached before a submission is accepted.
var RequiredDocumentSlots = []string{
	DocumentSlotPANCard,
	DocumentSlotAadhaarCard,
	DocumentSlotAddressProof,
	DocumentSlotFounderPhoto,
}

// MaxDocumentSize is the per-file upload ceiling (5 MiB).
const MaxDocumentSize = 5 * 1024 * 1024

// DocumentUpload is the stored reference for one uploaded file.
type DocumentUpload struct {
	FileName    string `json:"fileName"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type KYCSubmission struct {
	Base
	StartupID uint `gorm:"index;not null" json:"startupId"`

	PANNumber     string `gorm:"not null" json:"panNumber"`
	AadhaarNumber string `gorm:"not null" json:"aadhaarNumber"`

	BusinessAddress string `gorm:"not null" json:"businessAddress"`
	BusinessCity    string `gorm:"default:''" json:"businessCity"`
	BusinessState   string `gorm:"default:''" json:"businessState"`
	BusinessPincode string `gorm:"default:''" json:"businessPincode"`

	Documents datatypes.JSONType[map[string]DocumentUpload] `json:"documents"`

	Status         string     `gorm:"default:'pending'" json:"status"`
	SubmissionDate *time.Time `json:"submissionDate"`
	ReviewDate     *time.Time `json:"reviewDate"`
	ReviewComments string     `gorm:"default:''" json:"reviewComments"`
	ReviewerID     *uint      `json:"reviewerId"`
}

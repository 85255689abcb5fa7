package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	PaymentMethodUPI        = "upi"
	PaymentMethodCard       = "card"
	PaymentMethodNetBanking = "netbanking"
	PaymentMethodWallet     = "wallet"
)

// PaymentMethods lists the accepted checkout methods.
var PaymentMethods = []string{
	PaymentMethodUPI,
	PaymentMethodCard,
	PaymentMethodNetBanking,
	PaymentMethodWallet,
}

// FeeBreakdown splits the onboarding fee into its fixed components.
// The invariant is that the four parts always sum to the payment amount.
type FeeBreakdown struct {
	PlatformRegistration float64 `json:"platformRegistration"`
	KYCVerification      float64 `json:"kycVerification"`
	ComplianceSetup      float64 `json:"complianceSetup"`
	ServiceTax           float64 `json:"serviceTax"`
}

// Total returns the sum of the breakdown components.
func (f FeeBreakdown) Total() float64 {
	return f.PlatformRegistration + f.KYCVerification + f.ComplianceSetup + f.ServiceTax
}

// DefaultFeeBreakdown is the fixed onboarding fee split: 6000 INR in total.
func DefaultFeeBreakdown() FeeBreakdown {
	return FeeBreakdown{
		PlatformRegistration: 4000,
		KYCVerification:      1000,
		ComplianceSetup:      500,
		ServiceTax:           500,
	}
}

type Payment struct {
	Base
	StartupID uint `gorm:"index;not null" json:"startupId"`

	Amount      float64 `gorm:"not null" json:"amount"`
	Currency    string  `gorm:"default:'INR'" json:"currency"`
	Method      string  `gorm:"not null" json:"method"`
	Status      string  `gorm:"default:'pending'" json:"status"`
	Description string  `gorm:"default:''" json:"description"`

	Breakdown FeeBreakdown `gorm:"embedded;embeddedPrefix:fee_" json:"breakdown"`

	PaymentDate      *time.Time `json:"paymentDate"`
	TransactionID    string     `gorm:"default:''" json:"transactionId"`
	GatewayOrderID   string     `gorm:"default:''" json:"gatewayOrderId"`
	GatewayPaymentID string     `gorm:"default:''" json:"gatewayPaymentId"`
	InvoiceNumber    string     `gorm:"default:''" json:"invoiceNumber"`
	FailureReason    string     `gorm:"default:''" json:"failureReason"`
	IdempotencyKey   string     `gorm:"index;default:''" json:"idempotencyKey"`
}

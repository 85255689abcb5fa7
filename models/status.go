package models

import "strings"

// StatusStyle is the presentation hint for a status pill: a display label,
// a color tone the UI maps to its theme, and an icon name.
type StatusStyle struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
	Icon  string `json:"icon"`
}

const (
	ToneInfo    = "info"
	ToneWarning = "warning"
	ToneSuccess = "success"
	ToneDanger  = "danger"
	ToneMuted   = "muted"
	ToneAccent  = "accent"
)

// StatusRegistry is the single status-to-presentation table shared by every
// entity kind, replacing the lookup maps that used to be duplicated per page.
var StatusRegistry = map[string]map[string]StatusStyle{
	"startup": {
		StartupStatusPending: {Label: "Pending", Tone: ToneWarning, Icon: "Clock"},
		StartupStatusActive:  {Label: "Active", Tone: ToneSuccess, Icon: "CheckCircle"},
	},
	"kyc": {
		KYCStatusPending:  {Label: "Pending", Tone: ToneWarning, Icon: "Clock"},
		KYCStatusApproved: {Label: "Approved", Tone: ToneSuccess, Icon: "CheckCircle"},
		KYCStatusRejected: {Label: "Rejected", Tone: ToneDanger, Icon: "XCircle"},
	},
	"payment": {
		PaymentStatusPending:   {Label: "Pending", Tone: ToneWarning, Icon: "Clock"},
		PaymentStatusCompleted: {Label: "Completed", Tone: ToneSuccess, Icon: "CheckCircle"},
		PaymentStatusFailed:    {Label: "Failed", Tone: ToneDanger, Icon: "AlertCircle"},
	},
	"compliance": {
		ComplianceStatusCompliant:    {Label: "Compliant", Tone: ToneSuccess, Icon: "CheckCircle"},
		ComplianceStatusNonCompliant: {Label: "Non-Compliant", Tone: ToneDanger, Icon: "XCircle"},
		ComplianceStatusInProgress:   {Label: "In Progress", Tone: ToneInfo, Icon: "Clock"},
		ComplianceStatusNotStarted:   {Label: "Not Started", Tone: ToneMuted, Icon: "Circle"},
	},
	"invoice": {
		InvoiceStatusDraft:   {Label: "Draft", Tone: ToneMuted, Icon: "FileText"},
		InvoiceStatusSent:    {Label: "Sent", Tone: ToneInfo, Icon: "Send"},
		InvoiceStatusPaid:    {Label: "Paid", Tone: ToneSuccess, Icon: "CheckCircle"},
		InvoiceStatusOverdue: {Label: "Overdue", Tone: ToneDanger, Icon: "AlertCircle"},
	},
	"lead": {
		LeadStatusNew:       {Label: "New", Tone: ToneInfo, Icon: "UserPlus"},
		LeadStatusContacted: {Label: "Contacted", Tone: ToneWarning, Icon: "Phone"},
		LeadStatusQualified: {Label: "Qualified", Tone: ToneAccent, Icon: "CheckCircle"},
		LeadStatusProposal:  {Label: "Proposal", Tone: ToneWarning, Icon: "FileText"},
		LeadStatusWon:       {Label: "Won", Tone: ToneSuccess, Icon: "Trophy"},
		LeadStatusLost:      {Label: "Lost", Tone: ToneDanger, Icon: "X"},
	},
	"transaction": {
		TransactionStatusPending:   {Label: "Pending", Tone: ToneWarning, Icon: "Clock"},
		TransactionStatusCompleted: {Label: "Completed", Tone: ToneSuccess, Icon: "CheckCircle"},
		TransactionStatusOverdue:   {Label: "Overdue", Tone: ToneDanger, Icon: "AlertCircle"},
	},
	"vendor": {
		VendorStatusActive:   {Label: "Active", Tone: ToneSuccess, Icon: "CheckCircle"},
		VendorStatusInactive: {Label: "Inactive", Tone: ToneMuted, Icon: "Circle"},
	},
	"task": {
		TaskStatusTodo:       {Label: "To Do", Tone: ToneMuted, Icon: "Circle"},
		TaskStatusInProgress: {Label: "In Progress", Tone: ToneInfo, Icon: "Clock"},
		TaskStatusCompleted:  {Label: "Completed", Tone: ToneSuccess, Icon: "CheckCircle"},
	},
	"application": {
		ApplicationStatusPending:     {Label: "Pending", Tone: ToneWarning, Icon: "Clock"},
		ApplicationStatusUnderReview: {Label: "Under Review", Tone: ToneInfo, Icon: "Search"},
		ApplicationStatusApproved:    {Label: "Approved", Tone: ToneSuccess, Icon: "CheckCircle"},
		ApplicationStatusRejected:    {Label: "Rejected", Tone: ToneDanger, Icon: "XCircle"},
	},
}

// StatusPresentation looks up the pill style for an entity kind and status.
// Unknown combinations fall back to a neutral pill with a title-cased label.
func StatusPresentation(kind, status string) StatusStyle {
	if byStatus, ok := StatusRegistry[kind]; ok {
		if style, ok := byStatus[status]; ok {
			return style
		}
	}
	label := status
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return StatusStyle{Label: label, Tone: ToneMuted, Icon: "Circle"}
}

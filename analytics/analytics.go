// Package analytics holds the pure aggregation functions behind the
// dashboard pages. Every function takes its input collection and, where
// day arithmetic is involved, an explicit now so results are reproducible.
package analytics

import (
	"math"
	"time"

	"startupos/models"
)

// CreditMetrics summarizes receivables for the credit page.
type CreditMetrics struct {
	TotalInvoices    int     `json:"totalInvoices"`
	TotalReceivables float64 `json:"totalReceivables"`
	OverdueAmount    float64 `json:"overdueAmount"`
	OverdueInvoices  int     `json:"overdueInvoices"`
	PaidAmount       float64 `json:"paidAmount"`
	CollectionRate   float64 `json:"collectionRate"`
}

// AgingBuckets groups unpaid invoice amounts by days past due, with fixed
// boundaries at 0, 30 and 60 days.
type AgingBuckets struct {
	Current float64 `json:"current"`
	Days30  float64 `json:"days30"`
	Days60  float64 `json:"days60"`
	Days90  float64 `json:"days90"`
}

// AgingBucketLabels in chart order, matching the AgingBuckets fields.
var AgingBucketLabels = []string{"Current", "1-30 Days", "31-60 Days", "60+ Days"}

func Credit(invoices []*models.Invoice) CreditMetrics {
	m := CreditMetrics{TotalInvoices: len(invoices)}
	paidCount := 0
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoiceStatusPaid:
			paidCount++
			m.PaidAmount += inv.Amount
		case models.InvoiceStatusOverdue:
			m.OverdueInvoices++
			m.OverdueAmount += inv.Amount
			m.TotalReceivables += inv.Amount
		default:
			m.TotalReceivables += inv.Amount
		}
	}
	m.CollectionRate = rate(paidCount, m.TotalInvoices)
	return m
}

// Aging buckets unpaid invoices by whole days past due at now. Invoices
// without a due date count as current.
func Aging(invoices []*models.Invoice, now time.Time) AgingBuckets {
	var b AgingBuckets
	for _, inv := range invoices {
		if inv.Status == models.InvoiceStatusPaid {
			continue
		}
		days := 0
		if inv.DueDate != nil {
			days = daysBetween(now, *inv.DueDate)
		}
		switch {
		case days <= 0:
			b.Current += inv.Amount
		case days <= 30:
			b.Days30 += inv.Amount
		case days <= 60:
			b.Days60 += inv.Amount
		default:
			b.Days90 += inv.Amount
		}
	}
	return b
}

// InvoiceStatusCounts returns the per-status invoice count.
func InvoiceStatusCounts(invoices []*models.Invoice) map[string]int {
	counts := map[string]int{
		models.InvoiceStatusDraft:   0,
		models.InvoiceStatusSent:    0,
		models.InvoiceStatusPaid:    0,
		models.InvoiceStatusOverdue: 0,
	}
	for _, inv := range invoices {
		counts[inv.Status]++
	}
	return counts
}

// SalesMetrics summarizes the lead pipeline.
type SalesMetrics struct {
	TotalLeads     int     `json:"totalLeads"`
	ActiveLeads    int     `json:"activeLeads"`
	WonLeads       int     `json:"wonLeads"`
	LostLeads      int     `json:"lostLeads"`
	ConversionRate float64 `json:"conversionRate"`
	TotalValue     float64 `json:"totalValue"`
	WonValue       float64 `json:"wonValue"`
	PipelineValue  float64 `json:"pipelineValue"`
}

// FunnelStage is one bar of the sales funnel chart.
type FunnelStage struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

func Sales(leads []*models.Lead) SalesMetrics {
	m := SalesMetrics{TotalLeads: len(leads)}
	for _, l := range leads {
		m.TotalValue += l.Value
		switch l.Status {
		case models.LeadStatusWon:
			m.WonLeads++
			m.WonValue += l.Value
		case models.LeadStatusLost:
			m.LostLeads++
		default:
			m.ActiveLeads++
			if l.Status == models.LeadStatusQualified || l.Status == models.LeadStatusProposal {
				m.PipelineValue += l.Value
			}
		}
	}
	m.ConversionRate = rate(m.WonLeads, m.TotalLeads)
	return m
}

// Funnel returns lead counts and values per pipeline stage, in order.
func Funnel(leads []*models.Lead) []FunnelStage {
	stages := make([]FunnelStage, len(models.LeadFunnelOrder))
	index := make(map[string]int, len(models.LeadFunnelOrder))
	for i, status := range models.LeadFunnelOrder {
		stages[i].Status = status
		index[status] = i
	}
	for _, l := range leads {
		if i, ok := index[l.Status]; ok {
			stages[i].Count++
			stages[i].Value += l.Value
		}
	}
	return stages
}

// FinanceSummary totals cash movement for the finance page.
type FinanceSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	PendingIncome float64 `json:"pendingIncome"`
	OverdueAmount float64 `json:"overdueAmount"`
	NetCashFlow   float64 `json:"netCashFlow"`
}

func Finance(transactions []*models.Transaction) FinanceSummary {
	var s FinanceSummary
	for _, t := range transactions {
		switch {
		case t.Status == models.TransactionStatusOverdue:
			s.OverdueAmount += t.Amount
		case t.Type == models.TransactionTypeIncome && t.Status == models.TransactionStatusCompleted:
			s.TotalIncome += t.Amount
		case t.Type == models.TransactionTypeExpense && t.Status == models.TransactionStatusCompleted:
			s.TotalExpenses += t.Amount
		case t.Type == models.TransactionTypeIncome && t.Status == models.TransactionStatusPending:
			s.PendingIncome += t.Amount
		}
	}
	s.NetCashFlow = s.TotalIncome - s.TotalExpenses
	return s
}

// TaskMetrics summarizes the task board.
type TaskMetrics struct {
	TotalTasks     int     `json:"totalTasks"`
	Completed      int     `json:"completed"`
	Todo           int     `json:"todo"`
	InProgress     int     `json:"inProgress"`
	HighPriority   int     `json:"highPriority"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completionRate"`
}

func Tasks(tasks []*models.Task, now time.Time) TaskMetrics {
	m := TaskMetrics{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusCompleted:
			m.Completed++
			continue
		case models.TaskStatusTodo:
			m.Todo++
		case models.TaskStatusInProgress:
			m.InProgress++
		}
		if t.Priority == models.TaskPriorityHigh {
			m.HighPriority++
		}
		if t.DueDate != nil && t.DueDate.Before(now) {
			m.Overdue++
		}
	}
	m.CompletionRate = rate(m.Completed, m.TotalTasks)
	return m
}

// ProcurementMetrics summarizes vendor spend.
type ProcurementMetrics struct {
	TotalVendors  int                `json:"totalVendors"`
	TotalSpent    float64            `json:"totalSpent"`
	AverageRating float64            `json:"averageRating"`
	TopVendor     string             `json:"topVendor"`
	CategorySpend map[string]float64 `json:"categorySpend"`
}

func Procurement(vendors []*models.Vendor) ProcurementMetrics {
	m := ProcurementMetrics{
		TotalVendors:  len(vendors),
		CategorySpend: make(map[string]float64),
	}
	var ratingSum float64
	topSpent := -1.0
	for _, v := range vendors {
		m.TotalSpent += v.TotalSpent
		ratingSum += v.Rating
		m.CategorySpend[v.Category] += v.TotalSpent
		if v.TotalSpent > topSpent {
			topSpent = v.TotalSpent
			m.TopVendor = v.Name
		}
	}
	if len(vendors) > 0 {
		m.AverageRating = round1(ratingSum / float64(len(vendors)))
	}
	return m
}

// ComplianceOverview rolls up compliance records per category.
type ComplianceOverview struct {
	TotalRecords int               `json:"totalRecords"`
	OverallScore float64           `json:"overallScore"`
	ByCategory   map[string]string `json:"byCategory"`
}

func Compliance(records []*models.ComplianceRecord) ComplianceOverview {
	o := ComplianceOverview{
		TotalRecords: len(records),
		ByCategory:   make(map[string]string),
	}
	compliant := 0
	for _, r := range records {
		if r.Status == models.ComplianceStatusCompliant {
			compliant++
		}
		// The worst status wins when a category has several records.
		current, seen := o.ByCategory[r.Category]
		if !seen || statusSeverity(r.Status) > statusSeverity(current) {
			o.ByCategory[r.Category] = r.Status
		}
	}
	o.OverallScore = rate(compliant, len(records))
	return o
}

func statusSeverity(status string) int {
	switch status {
	case models.ComplianceStatusNonCompliant:
		return 3
	case models.ComplianceStatusNotStarted:
		return 2
	case models.ComplianceStatusInProgress:
		return 1
	default:
		return 0
	}
}

// DashboardSummary is the home-page composition of the page metrics.
type DashboardSummary struct {
	Finance     FinanceSummary     `json:"finance"`
	Sales       SalesMetrics       `json:"sales"`
	Credit      CreditMetrics      `json:"credit"`
	Tasks       TaskMetrics        `json:"tasks"`
	Compliance  ComplianceOverview `json:"compliance"`
	Procurement ProcurementMetrics `json:"procurement"`
}

func Dashboard(
	transactions []*models.Transaction,
	leads []*models.Lead,
	invoices []*models.Invoice,
	tasks []*models.Task,
	compliance []*models.ComplianceRecord,
	vendors []*models.Vendor,
	now time.Time,
) DashboardSummary {
	return DashboardSummary{
		Finance:     Finance(transactions),
		Sales:       Sales(leads),
		Credit:      Credit(invoices),
		Tasks:       Tasks(tasks, now),
		Compliance:  Compliance(compliance),
		Procurement: Procurement(vendors),
	}
}

// rate is part/total as a percentage rounded to one decimal, 0 when the
// collection is empty.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// daysBetween returns whole days from b to a, truncating partial days.
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b).Hours() / 24)
}

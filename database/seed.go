package database

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"

	"startupos/models"
	"startupos/store"
)

func parseDate(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

func daysFromNow(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

// SeedDemo loads the demo dataset through the store seam. It is a no-op when
// startups already exist, so restarts against a database do not duplicate
// records.
func SeedDemo(ctx context.Context, reg *store.Registry) error {
	existing, err := reg.Startups.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Demo data already present, skipping seed.")
		return nil
	}

	log.Println("Seeding demo data...")

	startups := []*models.Startup{
		{
			FounderName: "Arjun Patel", FounderEmail: "arjun.patel@email.com", FounderPhone: "+91 9876543210",
			FounderExperience: "5 years in food processing",
			BusinessName:      "EcoFresh Foods", BusinessType: models.BusinessTypeManufacturing,
			BusinessIdea:  "Manufacturing organic ready-to-eat meals using locally sourced ingredients.",
			BusinessStage: models.BusinessStageLaunch, BusinessLocation: "Bhubaneswar",
			MentorshipRequired: true, FundingRequired: true,
			ComplianceConsent: true, DataProcessingConsent: true,
			Status: models.StartupStatusActive, OnboardingComplete: true,
			RegistrationDate: parseDate("2024-01-15T10:30:00Z"),
		},
		{
			FounderName: "Priya Sharma", FounderEmail: "priya.sharma@email.com", FounderPhone: "+91 9123456789",
			BusinessName: "Coastal Distributors", BusinessType: models.BusinessTypeFMCGDistribution,
			BusinessIdea:  "Micro-distribution network for last-mile delivery to remote villages.",
			BusinessStage: models.BusinessStagePilot, BusinessLocation: "Puri",
			PitchDeckRequired: true,
			ComplianceConsent: true, DataProcessingConsent: true,
			Status: models.StartupStatusActive, OnboardingComplete: true,
			RegistrationDate: parseDate("2024-01-10T14:20:00Z"),
		},
		{
			FounderName: "Rahul Kumar", FounderEmail: "rahul.kumar@email.com", FounderPhone: "+91 9876512345",
			BusinessName: "TechSolutions Odisha", BusinessType: models.BusinessTypeDigitalServices,
			BusinessIdea:  "E-commerce platform connecting artisans and small businesses with global markets.",
			BusinessStage: models.BusinessStageMVP, BusinessLocation: "Cuttack",
			FundingRequired:   true,
			ComplianceConsent: true, DataProcessingConsent: true,
			Status: models.StartupStatusPending, NextStep: models.NextStepPayment,
			RegistrationDate: parseDate("2024-01-08T16:45:00Z"),
		},
		{
			FounderName: "Sneha Mishra", FounderEmail: "sneha.mishra@email.com", FounderPhone: "+91 9345678901",
			BusinessName: "Handloom Heritage", BusinessType: models.BusinessTypeManufacturing,
			BusinessIdea:  "Premium handloom textile products using traditional weaving techniques.",
			BusinessStage: models.BusinessStagePrototype, BusinessLocation: "Sambalpur",
			MentorshipRequired: true,
			ComplianceConsent:  true, DataProcessingConsent: true,
			Status: models.StartupStatusPending, NextStep: models.NextStepKYC,
			RegistrationDate: parseDate("2024-01-05T11:30:00Z"),
		},
		{
			FounderName: "Vikash Jena", FounderEmail: "vikash.jena@email.com", FounderPhone: "+91 9012345678",
			BusinessName: "AgroTech Innovations", BusinessType: models.BusinessTypeEngineeringGoods,
			BusinessIdea:  "Low-cost farm equipment for smallholder farmers.",
			BusinessStage: models.BusinessStageIdea, BusinessLocation: "Berhampur",
			ComplianceConsent: true, DataProcessingConsent: true,
			Status: models.StartupStatusPending, NextStep: models.NextStepKYC,
			RegistrationDate: parseDate("2024-01-03T09:00:00Z"),
		},
	}
	for _, s := range startups {
		if _, err := reg.Startups.Create(ctx, s); err != nil {
			return err
		}
	}

	docs := func() map[string]models.DocumentUpload {
		return map[string]models.DocumentUpload{
			models.DocumentSlotPANCard:      {FileName: "pan-card.pdf", Size: 204800, ContentType: "application/pdf"},
			models.DocumentSlotAadhaarCard:  {FileName: "aadhaar-card.pdf", Size: 186000, ContentType: "application/pdf"},
			models.DocumentSlotAddressProof: {FileName: "address-proof.pdf", Size: 312000, ContentType: "application/pdf"},
			models.DocumentSlotFounderPhoto: {FileName: "founder-photo.jpg", Size: 98000, ContentType: "image/jpeg"},
		}
	}
	reviewer := uint(1)
	kycSubmissions := []*models.KYCSubmission{
		{
			StartupID: 1, PANNumber: "ABCDE1234F", AadhaarNumber: "123456789012",
			BusinessAddress: "Plot 42, Industrial Estate", BusinessCity: "Bhubaneswar",
			BusinessState: "Odisha", BusinessPincode: "751010",
			Documents: datatypes.NewJSONType(docs()),
			Status:    models.KYCStatusApproved,
			SubmissionDate: parseDate("2024-01-16T09:00:00Z"), ReviewDate: parseDate("2024-01-18T15:00:00Z"),
			ReviewComments: "All documents verified.", ReviewerID: &reviewer,
		},
		{
			StartupID: 2, PANNumber: "FGHIJ5678K", AadhaarNumber: "234567890123",
			BusinessAddress: "Market Road", BusinessCity: "Puri",
			BusinessState: "Odisha", BusinessPincode: "752001",
			Documents: datatypes.NewJSONType(docs()),
			Status:    models.KYCStatusApproved,
			SubmissionDate: parseDate("2024-01-11T10:00:00Z"), ReviewDate: parseDate("2024-01-12T12:00:00Z"),
			ReviewComments: "Verified.", ReviewerID: &reviewer,
		},
		{
			StartupID: 3, PANNumber: "KLMNO9012P", AadhaarNumber: "345678901234",
			BusinessAddress: "Tech Park, Sector 1", BusinessCity: "Cuttack",
			BusinessState: "Odisha", BusinessPincode: "753001",
			Documents: datatypes.NewJSONType(docs()),
			Status:    models.KYCStatusApproved,
			SubmissionDate: parseDate("2024-01-09T11:00:00Z"), ReviewDate: parseDate("2024-01-10T16:00:00Z"),
			ReviewComments: "Verified.", ReviewerID: &reviewer,
		},
		{
			StartupID: 4, PANNumber: "PQRST3456U", AadhaarNumber: "456789012345",
			BusinessAddress: "Weavers Colony", BusinessCity: "Sambalpur",
			BusinessState: "Odisha", BusinessPincode: "768001",
			Documents:      datatypes.NewJSONType(docs()),
			Status:         models.KYCStatusPending,
			SubmissionDate: parseDate("2024-01-20T13:00:00Z"),
		},
	}
	for _, k := range kycSubmissions {
		if _, err := reg.KYC.Create(ctx, k); err != nil {
			return err
		}
	}

	fee := models.DefaultFeeBreakdown()
	payments := []*models.Payment{
		{
			StartupID: 1, Amount: fee.Total(), Currency: "INR", Method: models.PaymentMethodUPI,
			Status: models.PaymentStatusCompleted, Description: "Startup OS Onboarding Fee", Breakdown: fee,
			PaymentDate: parseDate("2024-01-19T10:00:00Z"), TransactionID: "TXN1705658400",
			GatewayOrderID: "order_a1b2c3d4e5f601", GatewayPaymentID: "pay_f6e5d4c3b2a101",
			InvoiceNumber: "INV-000001",
		},
		{
			StartupID: 2, Amount: fee.Total(), Currency: "INR", Method: models.PaymentMethodCard,
			Status: models.PaymentStatusCompleted, Description: "Startup OS Onboarding Fee", Breakdown: fee,
			PaymentDate: parseDate("2024-01-13T11:30:00Z"), TransactionID: "TXN1705145400",
			GatewayOrderID: "order_b2c3d4e5f6a702", GatewayPaymentID: "pay_a7f6e5d4c3b202",
			InvoiceNumber: "INV-000002",
		},
		{
			StartupID: 3, Amount: fee.Total(), Currency: "INR", Method: models.PaymentMethodNetBanking,
			Status: models.PaymentStatusFailed, Description: "Startup OS Onboarding Fee", Breakdown: fee,
			GatewayOrderID: "order_c3d4e5f6a7b803", FailureReason: "gateway declined charge: insufficient_funds",
		},
	}
	for _, p := range payments {
		if _, err := reg.Payments.Create(ctx, p); err != nil {
			return err
		}
	}

	compliance := []*models.ComplianceRecord{
		{
			StartupID: 1, Category: models.ComplianceCategoryDataSecurity,
			Status: models.ComplianceStatusCompliant, ComplianceScore: 95,
			LastAuditDate: parseDate("2024-01-20T10:00:00Z"), NextAuditDate: daysFromNow(45),
			Requirements: datatypes.NewJSONType([]models.ComplianceRequirement{
				{ID: 1, Requirement: "Data encryption at rest and in transit", Status: models.ComplianceStatusCompliant, CompletedDate: parseDate("2024-01-15T12:00:00Z")},
				{ID: 2, Requirement: "Access controls and user authentication", Status: models.ComplianceStatusCompliant, CompletedDate: parseDate("2024-01-15T12:00:00Z")},
				{ID: 3, Requirement: "Regular security audits", Status: models.ComplianceStatusCompliant, CompletedDate: parseDate("2024-01-20T10:00:00Z")},
			}),
			AuditHistory: datatypes.NewJSONType([]models.AuditEntry{
				{Date: *parseDate("2024-01-20T10:00:00Z"), Auditor: "SecureTech Audits", Result: "passed", Score: 95},
			}),
		},
		{
			StartupID: 1, Category: models.ComplianceCategoryBusiness,
			Status: models.ComplianceStatusCompliant, ComplianceScore: 88,
			LastAuditDate: parseDate("2024-01-18T14:00:00Z"), NextAuditDate: daysFromNow(120),
			Requirements: datatypes.NewJSONType([]models.ComplianceRequirement{
				{ID: 1, Requirement: "Business registration and licensing", Status: models.ComplianceStatusCompliant, CompletedDate: parseDate("2024-01-10T12:00:00Z")},
				{ID: 2, Requirement: "GST registration and filing", Status: models.ComplianceStatusCompliant, CompletedDate: parseDate("2024-01-12T12:00:00Z")},
			}),
			AuditHistory: datatypes.NewJSONType([]models.AuditEntry{
				{Date: *parseDate("2024-01-18T14:00:00Z"), Auditor: "ComplianceFirst", Result: "passed", Score: 88},
			}),
		},
		{
			StartupID: 2, Category: models.ComplianceCategoryFinancial,
			Status: models.ComplianceStatusInProgress, ComplianceScore: 60,
			NextAuditDate: daysFromNow(5),
			Requirements: datatypes.NewJSONType([]models.ComplianceRequirement{
				{ID: 1, Requirement: "Bookkeeping and accounting setup", Status: models.ComplianceStatusCompliant, CompletedDate: parseDate("2024-01-14T12:00:00Z")},
				{ID: 2, Requirement: "Annual financial statement audit", Status: models.ComplianceStatusInProgress},
			}),
		},
		{
			StartupID: 3, Category: models.ComplianceCategoryPolicy,
			Status: models.ComplianceStatusNotStarted, ComplianceScore: 0,
			Requirements: datatypes.NewJSONType([]models.ComplianceRequirement{
				{ID: 1, Requirement: "Startup policy registration", Status: models.ComplianceStatusNotStarted},
			}),
		},
	}
	for _, rec := range compliance {
		if _, err := reg.Compliance.Create(ctx, rec); err != nil {
			return err
		}
	}

	invoices := []*models.Invoice{
		{ClientName: "BigBasket Retail", Amount: 45000, Status: models.InvoiceStatusPaid, IssueDate: daysFromNow(-40), DueDate: daysFromNow(-10), PaidDate: daysFromNow(-12)},
		{ClientName: "Reliance Fresh", Amount: 82000, Status: models.InvoiceStatusSent, IssueDate: daysFromNow(-20), DueDate: daysFromNow(10)},
		{ClientName: "Metro Wholesale", Amount: 36500, Status: models.InvoiceStatusSent, IssueDate: daysFromNow(-35), DueDate: daysFromNow(-5)},
		{ClientName: "Spencer's Retail", Amount: 58000, Status: models.InvoiceStatusOverdue, IssueDate: daysFromNow(-90), DueDate: daysFromNow(-45)},
		{ClientName: "Local Kirana Network", Amount: 12400, Status: models.InvoiceStatusOverdue, IssueDate: daysFromNow(-130), DueDate: daysFromNow(-70)},
		{ClientName: "Odisha Handicrafts Board", Amount: 27500, Status: models.InvoiceStatusDraft, IssueDate: daysFromNow(-2)},
	}
	for _, inv := range invoices {
		if _, err := reg.Invoices.Create(ctx, inv); err != nil {
			return err
		}
	}

	leads := []*models.Lead{
		{Name: "Suresh Nair", Company: "GreenMart Stores", Email: "suresh@greenmart.in", Phone: "+91 9811122233", Value: 120000, Source: "referral", Status: models.LeadStatusWon},
		{Name: "Anita Das", Company: "FreshDaily Supply", Email: "anita@freshdaily.in", Phone: "+91 9822233344", Value: 85000, Source: "website", Status: models.LeadStatusProposal},
		{Name: "Manoj Behera", Company: "Urban Grocers", Email: "manoj@urbangrocers.in", Phone: "+91 9833344455", Value: 64000, Source: "trade-show", Status: models.LeadStatusQualified},
		{Name: "Kavita Rao", Company: "Sunrise Retail", Email: "kavita@sunriseretail.in", Phone: "+91 9844455566", Value: 40000, Source: "cold-call", Status: models.LeadStatusContacted},
		{Name: "Deepak Singh", Company: "ValueMart Chain", Email: "deepak@valuemart.in", Phone: "+91 9855566677", Value: 150000, Source: "website", Status: models.LeadStatusNew},
		{Name: "Ritu Mohanty", Company: "City Supermarket", Email: "ritu@citysuper.in", Phone: "+91 9866677788", Value: 30000, Source: "referral", Status: models.LeadStatusLost},
	}
	for _, l := range leads {
		if _, err := reg.Leads.Create(ctx, l); err != nil {
			return err
		}
	}

	transactions := []*models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: 45000, Category: "sales", Description: "BigBasket invoice settlement", Date: daysFromNow(-12), Status: models.TransactionStatusCompleted},
		{Type: models.TransactionTypeIncome, Amount: 28000, Category: "sales", Description: "Direct store orders", Date: daysFromNow(-8), Status: models.TransactionStatusCompleted},
		{Type: models.TransactionTypeExpense, Amount: 18500, Category: "raw-materials", Description: "Organic produce procurement", Date: daysFromNow(-10), Status: models.TransactionStatusCompleted},
		{Type: models.TransactionTypeExpense, Amount: 9600, Category: "logistics", Description: "Cold chain transport", Date: daysFromNow(-6), Status: models.TransactionStatusCompleted},
		{Type: models.TransactionTypeExpense, Amount: 12000, Category: "salaries", Description: "Production staff wages", Date: daysFromNow(-3), Status: models.TransactionStatusPending},
		{Type: models.TransactionTypeIncome, Amount: 36500, Category: "sales", Description: "Metro Wholesale order", Date: daysFromNow(-1), Status: models.TransactionStatusPending},
	}
	for _, t := range transactions {
		if _, err := reg.Transactions.Create(ctx, t); err != nil {
			return err
		}
	}

	vendors := []*models.Vendor{
		{Name: "Odisha Organic Farms", Email: "contact@odishaorganic.in", Phone: "+91 9877001122", Contact: "Bijay Pradhan", Category: "raw-materials", Rating: 4.6, TotalSpent: 185000, Status: models.VendorStatusActive},
		{Name: "PackRight Solutions", Email: "sales@packright.in", Phone: "+91 9877112233", Contact: "Meera Iyer", Category: "packaging", Rating: 4.2, TotalSpent: 96000, Status: models.VendorStatusActive},
		{Name: "ColdMove Logistics", Email: "ops@coldmove.in", Phone: "+91 9877223344", Contact: "Rajesh Gupta", Category: "logistics", Rating: 3.9, TotalSpent: 74000, Status: models.VendorStatusActive},
		{Name: "PrintHub Bhubaneswar", Email: "hello@printhub.in", Phone: "+91 9877334455", Contact: "Sasmita Patra", Category: "marketing", Rating: 4.0, TotalSpent: 22000, Status: models.VendorStatusInactive},
		{Name: "AgriEquip Traders", Email: "info@agriequip.in", Phone: "+91 9877445566", Contact: "Niranjan Sahu", Category: "equipment", Rating: 4.4, TotalSpent: 158000, Status: models.VendorStatusActive},
	}
	for _, v := range vendors {
		if _, err := reg.Vendors.Create(ctx, v); err != nil {
			return err
		}
	}

	tasks := []*models.Task{
		{Title: "Renew FSSAI license", Description: "Annual food safety license renewal.", Priority: models.TaskPriorityHigh, Status: models.TaskStatusInProgress, DueDate: daysFromNow(7), AssignedTo: "Arjun Patel"},
		{Title: "File Q4 GST returns", Priority: models.TaskPriorityHigh, Status: models.TaskStatusTodo, DueDate: daysFromNow(-2), AssignedTo: "Accounts"},
		{Title: "Follow up with FreshDaily proposal", Priority: models.TaskPriorityMedium, Status: models.TaskStatusTodo, DueDate: daysFromNow(3), AssignedTo: "Sales"},
		{Title: "Update vendor contracts", Priority: models.TaskPriorityLow, Status: models.TaskStatusCompleted, DueDate: daysFromNow(-15), AssignedTo: "Operations"},
		{Title: "Prepare audit documents", Description: "Financial compliance audit preparation.", Priority: models.TaskPriorityHigh, Status: models.TaskStatusTodo, DueDate: daysFromNow(5), AssignedTo: "Accounts"},
		{Title: "Redesign product packaging", Priority: models.TaskPriorityMedium, Status: models.TaskStatusInProgress, DueDate: daysFromNow(20), AssignedTo: "Marketing"},
	}
	for _, t := range tasks {
		if _, err := reg.Tasks.Create(ctx, t); err != nil {
			return err
		}
	}

	applications := []*models.Application{
		{FounderName: "Arjun Patel", Email: "arjun.patel@email.com", Phone: "+91 9876543210", BusinessName: "EcoFresh Foods", StartupType: models.BusinessTypeManufacturing, BusinessIdea: "Manufacturing organic ready-to-eat meals using locally sourced ingredients.", InvestmentAmount: "15 lakhs", Timeline: "6 months", Status: models.ApplicationStatusApproved, SubmittedAt: parseDate("2024-01-15T10:30:00Z")},
		{FounderName: "Priya Sharma", Email: "priya.sharma@email.com", Phone: "+91 9123456789", BusinessName: "Coastal Distributors", StartupType: models.BusinessTypeFMCGDistribution, BusinessIdea: "Micro-distribution network covering coastal districts.", InvestmentAmount: "8 lakhs", Timeline: "3 months", Status: models.ApplicationStatusApproved, SubmittedAt: parseDate("2024-01-10T14:20:00Z")},
		{FounderName: "Rahul Kumar", Email: "rahul.kumar@email.com", Phone: "+91 9876512345", BusinessName: "TechSolutions Odisha", StartupType: models.BusinessTypeDigitalServices, BusinessIdea: "E-commerce platform for local artisans.", InvestmentAmount: "12 lakhs", Timeline: "4 months", Status: models.ApplicationStatusUnderReview, SubmittedAt: parseDate("2024-01-08T16:45:00Z")},
		{FounderName: "Sneha Mishra", Email: "sneha.mishra@email.com", Phone: "+91 9345678901", BusinessName: "Handloom Heritage", StartupType: models.BusinessTypeManufacturing, BusinessIdea: "Premium handloom textile products.", InvestmentAmount: "20 lakhs", Timeline: "8 months", Status: models.ApplicationStatusPending, SubmittedAt: parseDate("2024-01-05T11:30:00Z")},
		{FounderName: "Vikash Jena", Email: "vikash.jena@email.com", Phone: "+91 9012345678", BusinessName: "AgroTech Innovations", StartupType: models.BusinessTypeEngineeringGoods, BusinessIdea: "Low-cost farm equipment for smallholder farmers.", InvestmentAmount: "10 lakhs", Timeline: "6 months", Status: models.ApplicationStatusRejected, SubmittedAt: parseDate("2024-01-03T09:00:00Z")},
	}
	for _, a := range applications {
		if _, err := reg.Applications.Create(ctx, a); err != nil {
			return err
		}
	}

	log.Println("Demo data seeded successfully.")
	return nil
}

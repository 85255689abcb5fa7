package dashboardController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"startupos/analytics"
	"startupos/middleware"
	"startupos/models"
	"startupos/store"
)

// Summary aggregates every business area into the portal landing view.
func Summary(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		transactions, err := reg.Transactions.GetAll(ctx)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard data!", nil)
		}
		leads, err := reg.Leads.GetAll(ctx)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard data!", nil)
		}
		invoices, err := reg.Invoices.GetAll(ctx)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard data!", nil)
		}
		tasks, err := reg.Tasks.GetAll(ctx)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard data!", nil)
		}
		compliance, err := reg.Compliance.GetAll(ctx)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard data!", nil)
		}
		vendors, err := reg.Vendors.GetAll(ctx)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard data!", nil)
		}

		summary := analytics.Dashboard(transactions, leads, invoices, tasks, compliance, vendors, time.Now())
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard summary fetched successfully!", summary)
	}
}

// Credit returns receivable metrics, status counts and the aging buckets.
func Credit(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invoices, err := reg.Invoices.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load invoices!", nil)
		}
		data := fiber.Map{
			"metrics":      analytics.Credit(invoices),
			"aging":        analytics.Aging(invoices, time.Now()),
			"agingLabels":  analytics.AgingBucketLabels,
			"statusCounts": analytics.InvoiceStatusCounts(invoices),
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Credit metrics fetched successfully!", data)
	}
}

// Sales returns pipeline metrics and the funnel breakdown.
func Sales(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leads, err := reg.Leads.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load leads!", nil)
		}
		data := fiber.Map{
			"metrics": analytics.Sales(leads),
			"funnel":  analytics.Funnel(leads),
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Sales metrics fetched successfully!", data)
	}
}

// Finance returns the income and expense summary.
func Finance(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactions, err := reg.Transactions.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load transactions!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Finance summary fetched successfully!", analytics.Finance(transactions))
	}
}

// Tasks returns workload metrics.
func Tasks(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := reg.Tasks.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load tasks!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Task metrics fetched successfully!", analytics.Tasks(tasks, time.Now()))
	}
}

// Procurement returns vendor spend metrics.
func Procurement(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendors, err := reg.Vendors.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load vendors!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Procurement metrics fetched successfully!", analytics.Procurement(vendors))
	}
}

// Compliance returns the overall compliance posture.
func Compliance(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := reg.Compliance.GetAll(c.Context())
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load compliance records!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Compliance overview fetched successfully!", analytics.Compliance(records))
	}
}

// Statuses returns the status display registry for every record kind.
func Statuses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Status registry fetched successfully!", models.StatusRegistry)
	}
}

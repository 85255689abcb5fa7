package store

import (
	"context"
	"errors"
	"time"

	"startupos/models"
)

// ErrNotFound is returned by GetByID, Update and Delete when no record
// carries the requested identifier. It is the only business error a
// collection can produce.
var ErrNotFound = errors.New("record not found")

// Entity is implemented by every model via the embedded models.Base.
type Entity interface {
	GetID() uint
	SetID(uint)
	Stamp(time.Time)
}

// Ptr constrains a type parameter to "pointer to T that is an Entity".
type Ptr[T any] interface {
	*T
	Entity
}

// Collection is the uniform CRUD contract every entity store satisfies.
// Create assigns the identifier and timestamps. Update applies a shallow
// field merge: only keys present in the patch change, and server-assigned
// fields are never overwritten. Delete is permanent and returns the
// removed record.
type Collection[T Entity] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id uint, patch map[string]any) (T, error)
	Delete(ctx context.Context, id uint) (T, error)
}

// Registry bundles one collection per entity. Handlers receive it instead
// of reaching for package-level state, so tests can wire in-memory
// collections and production can wire database-backed ones.
type Registry struct {
	Startups     Collection[*models.Startup]
	KYC          Collection[*models.KYCSubmission]
	Payments     Collection[*models.Payment]
	Compliance   Collection[*models.ComplianceRecord]
	Invoices     Collection[*models.Invoice]
	Leads        Collection[*models.Lead]
	Transactions Collection[*models.Transaction]
	Vendors      Collection[*models.Vendor]
	Tasks        Collection[*models.Task]
	Applications Collection[*models.Application]
}

// NewMemoryRegistry builds a registry of in-memory collections with the
// given simulated latency per operation.
func NewMemoryRegistry(latency time.Duration) *Registry {
	return &Registry{
		Startups:     NewMemory[models.Startup, *models.Startup](latency),
		KYC:          NewMemory[models.KYCSubmission, *models.KYCSubmission](latency),
		Payments:     NewMemory[models.Payment, *models.Payment](latency),
		Compliance:   NewMemory[models.ComplianceRecord, *models.ComplianceRecord](latency),
		Invoices:     NewMemory[models.Invoice, *models.Invoice](latency),
		Leads:        NewMemory[models.Lead, *models.Lead](latency),
		Transactions: NewMemory[models.Transaction, *models.Transaction](latency),
		Vendors:      NewMemory[models.Vendor, *models.Vendor](latency),
		Tasks:        NewMemory[models.Task, *models.Task](latency),
		Applications: NewMemory[models.Application, *models.Application](latency),
	}
}

type latencySetter interface {
	SetLatency(time.Duration)
}

// SetLatency applies a simulated latency to every collection that supports
// it. Database-backed collections ignore the call.
func (r *Registry) SetLatency(d time.Duration) {
	all := []any{
		r.Startups, r.KYC, r.Payments, r.Compliance, r.Invoices,
		r.Leads, r.Transactions, r.Vendors, r.Tasks, r.Applications,
	}
	for _, col := range all {
		if s, ok := col.(latencySetter); ok {
			s.SetLatency(d)
		}
	}
}

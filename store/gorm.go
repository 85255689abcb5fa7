package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"startupos/models"
)

// Gorm adapts a database table to the Collection contract. Identifiers come
// from the database sequence and deletes are hard deletes, matching the
// memory adapter's semantics.
type Gorm[T any, PT Ptr[T]] struct {
	db *gorm.DB
}

// NewGorm constructs a database-backed collection.
func NewGorm[T any, PT Ptr[T]](db *gorm.DB) *Gorm[T, PT] {
	return &Gorm[T, PT]{db: db}
}

// NewGormRegistry builds a registry of database-backed collections.
func NewGormRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Startups:     NewGorm[models.Startup, *models.Startup](db),
		KYC:          NewGorm[models.KYCSubmission, *models.KYCSubmission](db),
		Payments:     NewGorm[models.Payment, *models.Payment](db),
		Compliance:   NewGorm[models.ComplianceRecord, *models.ComplianceRecord](db),
		Invoices:     NewGorm[models.Invoice, *models.Invoice](db),
		Leads:        NewGorm[models.Lead, *models.Lead](db),
		Transactions: NewGorm[models.Transaction, *models.Transaction](db),
		Vendors:      NewGorm[models.Vendor, *models.Vendor](db),
		Tasks:        NewGorm[models.Task, *models.Task](db),
		Applications: NewGorm[models.Application, *models.Application](db),
	}
}

func (g *Gorm[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	var recs []T
	if err := g.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	out := make([]PT, len(recs))
	for i := range recs {
		out[i] = PT(&recs[i])
	}
	return out, nil
}

func (g *Gorm[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	var rec T
	err := g.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch record %d: %w", id, err)
	}
	return PT(&rec), nil
}

func (g *Gorm[T, PT]) Create(ctx context.Context, rec PT) (PT, error) {
	rec.SetID(0)
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return rec, nil
}

func (g *Gorm[T, PT]) Update(ctx context.Context, id uint, patch map[string]any) (PT, error) {
	rec, err := g.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mergePatch(rec, patch); err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	rec.SetID(id)
	if err := g.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, fmt.Errorf("save record %d: %w", id, err)
	}
	return rec, nil
}

func (g *Gorm[T, PT]) Delete(ctx context.Context, id uint) (PT, error) {
	rec, err := g.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var zero T
	if err := g.db.WithContext(ctx).Delete(&zero, id).Error; err != nil {
		return nil, fmt.Errorf("delete record %d: %w", id, err)
	}
	return rec, nil
}

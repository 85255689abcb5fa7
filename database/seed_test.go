package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupos/models"
	"startupos/store"
)

func TestSeedDemoPopulatesEveryCollection(t *testing.T) {
	reg := store.NewMemoryRegistry(0)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, reg))

	startups, err := reg.Startups.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, startups)

	kyc, err := reg.KYC.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, kyc)

	payments, err := reg.Payments.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, payments)

	compliance, err := reg.Compliance.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, compliance)

	invoices, err := reg.Invoices.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, invoices)

	leads, err := reg.Leads.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, leads)

	transactions, err := reg.Transactions.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, transactions)

	vendors, err := reg.Vendors.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, vendors)

	tasks, err := reg.Tasks.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tasks)

	applications, err := reg.Applications.GetAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, applications)
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	reg := store.NewMemoryRegistry(0)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, reg))
	first, err := reg.Startups.GetAll(ctx)
	require.NoError(t, err)

	require.NoError(t, SeedDemo(ctx, reg))
	second, err := reg.Startups.GetAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}

func TestSeedDemoCompletedPaymentsCarryFullFee(t *testing.T) {
	reg := store.NewMemoryRegistry(0)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, reg))

	payments, err := reg.Payments.GetAll(ctx)
	require.NoError(t, err)

	for _, p := range payments {
		if p.Status != models.PaymentStatusCompleted {
			continue
		}
		assert.Equal(t, 6000.0, p.Amount)
		assert.Equal(t, p.Amount, p.Breakdown.Total())
		assert.NotEmpty(t, p.InvoiceNumber)
		assert.NotEmpty(t, p.TransactionID)
	}
}

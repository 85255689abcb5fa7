package gateway

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorCapturesCharge(t *testing.T) {
	sim := &Simulator{Delay: 0}

	result, err := sim.Charge(context.Background(), ChargeRequest{
		OrderID: NewOrderID(),
		Amount:  6000,
		Method:  "upi",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.PaymentID, "pay_"))
	assert.False(t, result.CapturedAt.IsZero())
}

func TestSimulatorRejectsNonPositiveAmount(t *testing.T) {
	sim := &Simulator{Delay: 0}

	_, err := sim.Charge(context.Background(), ChargeRequest{Amount: 0})
	assert.Error(t, err)
}

func TestSimulatorHonorsContextCancellation(t *testing.T) {
	sim := &Simulator{Delay: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sim.Charge(ctx, ChargeRequest{Amount: 6000})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestNewOrderIDShape(t *testing.T) {
	id := NewOrderID()
	assert.True(t, strings.HasPrefix(id, "order_"))
	assert.Len(t, id, len("order_")+14)
	assert.NotEqual(t, id, NewOrderID())
}

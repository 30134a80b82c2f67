package domain

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(status string, amount int64, subscription bool) BookingRecord {
	category, _ := ClassifyStatus(status)
	return BookingRecord{
		RawStatus:    status,
		Status:       category,
		Subscription: subscription,
		Amount:       decimal.NewFromInt(amount),
		PlatformFee:  decimal.Zero,
		Receivable:   decimal.Zero,
		GST:          decimal.Zero,
		HandlingFee:  decimal.Zero,
	}
}

func TestBuildAggregate_Scenario(t *testing.T) {
	// Подписочная запись со статусом approved учитывается и в Approved,
	// и в Subscriptions
	records := []BookingRecord{
		record("Pending", 100, false),
		record("Completed", 250, false),
		record("parked", 0, false),
		record("approved", 50, true),
	}

	agg := BuildAggregate(records)

	assert.Equal(t, 4, agg.TotalBookings)
	assert.Equal(t, 1, agg.Count(StatusPending))
	assert.Equal(t, 1, agg.Count(StatusCompleted))
	assert.Equal(t, 1, agg.Count(StatusParked))
	assert.Equal(t, 1, agg.Count(StatusApproved))
	assert.Equal(t, 0, agg.Count(StatusCancelled))
	assert.Equal(t, 1, agg.Subscriptions)
	assert.Equal(t, "400.00", agg.TotalAmount.StringFixed(2))
}

func TestBuildAggregate_UnknownStatusCountedInTotalsOnly(t *testing.T) {
	records := []BookingRecord{
		record("refunded", 75, false),
		record("completed", 25, false),
	}

	agg := BuildAggregate(records)

	// Нераспознанный статус не попадает ни в одну категорию,
	// но его сумма входит в общий оборот
	total := 0
	for _, category := range StatusCategories {
		total += agg.Count(category)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, "100.00", agg.TotalAmount.StringFixed(2))
}

func TestBuildAggregate_OrderIndependent(t *testing.T) {
	records := []BookingRecord{
		record("pending", 10, false),
		record("completed", 20, true),
		record("cancelled", 30, false),
		record("parked", 40, true),
		record("approved", 50, false),
		record("weird", 60, false),
	}

	want := BuildAggregate(records)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]BookingRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := BuildAggregate(shuffled)

		require.Equal(t, want.StatusCounts, got.StatusCounts)
		require.Equal(t, want.Subscriptions, got.Subscriptions)
		require.True(t, want.TotalAmount.Equal(got.TotalAmount))
	}
}

func TestBuildAggregate_SumsAllMoneyFields(t *testing.T) {
	records := []BookingRecord{
		{
			Amount:      decimal.RequireFromString("100.50"),
			PlatformFee: decimal.RequireFromString("10.05"),
			Receivable:  decimal.RequireFromString("90.45"),
			GST:         decimal.RequireFromString("5.00"),
			HandlingFee: decimal.RequireFromString("2.50"),
		},
		{
			Amount:      decimal.RequireFromString("200.25"),
			PlatformFee: decimal.RequireFromString("20.00"),
			Receivable:  decimal.RequireFromString("180.25"),
			GST:         decimal.Zero,
			HandlingFee: decimal.Zero,
		},
	}

	agg := BuildAggregate(records)

	assert.Equal(t, "300.75", agg.TotalAmount.StringFixed(2))
	assert.Equal(t, "30.05", agg.TotalPlatformFee.StringFixed(2))
	assert.Equal(t, "270.70", agg.TotalReceivable.StringFixed(2))
	assert.Equal(t, "5.00", agg.TotalGST.StringFixed(2))
	assert.Equal(t, "2.50", agg.TotalHandlingFee.StringFixed(2))
}

func TestBuildAggregate_Empty(t *testing.T) {
	agg := BuildAggregate(nil)

	assert.Equal(t, 0, agg.TotalBookings)
	assert.Equal(t, 0, agg.Subscriptions)
	assert.True(t, agg.TotalAmount.IsZero())
	for _, category := range StatusCategories {
		assert.Equal(t, 0, agg.Count(category))
	}
}

package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	"github.com/m04kA/SMC-VendorDashboard/internal/integrations/parkingapi"
)

func rawFromJSON(t *testing.T, payload string) parkingapi.RawBooking {
	t.Helper()
	var raw parkingapi.RawBooking
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestNormalize_FullRecord(t *testing.T) {
	raw := rawFromJSON(t, `{
		"_id": "bk-1",
		"bookingDate": "15-06-2024",
		"parkingTime": "10:30",
		"exittime": "2024-06-15T18:00:00",
		"createdAt": "2024-06-10T09:00:00Z",
		"amount": 250.5,
		"platformfee": "25.05",
		"recievableamount": 225.45,
		"gst": 12.5,
		"handlingfee": 5,
		"vehicleNumber": "KA01AB1234",
		"vehicleType": "Car",
		"status": "Completed",
		"sts": "Subscription"
	}`)

	records, issues := Normalize([]parkingapi.RawBooking{raw})
	require.Len(t, records, 1)
	assert.Empty(t, issues)

	r := records[0]
	assert.Equal(t, "bk-1", r.ID)
	assert.Equal(t, "15-06-2024", r.BookingDate)
	assert.Equal(t, "10:30", r.ParkingTime.String())
	assert.Equal(t, "250.50", r.Amount.StringFixed(2))
	assert.Equal(t, "25.05", r.PlatformFee.StringFixed(2))
	assert.Equal(t, "225.45", r.Receivable.StringFixed(2))
	assert.Equal(t, "12.50", r.GST.StringFixed(2))
	assert.Equal(t, "5.00", r.HandlingFee.StringFixed(2))
	assert.Equal(t, domain.VehicleCar, r.VehicleType)
	assert.Equal(t, domain.StatusCompleted, r.Status)
	assert.True(t, r.Subscription)
}

func TestNormalize_MissingFieldsDefaulted(t *testing.T) {
	raw := rawFromJSON(t, `{"_id": "bk-2"}`)

	records, _ := Normalize([]parkingapi.RawBooking{raw})
	require.Len(t, records, 1)

	r := records[0]
	// Отсутствующие поля получают дефолты, downstream не видит "не задано"
	assert.Equal(t, "", r.BookingDate)
	assert.True(t, r.ParkingTime.IsZero())
	assert.True(t, r.Amount.IsZero())
	assert.True(t, r.Receivable.IsZero())
	assert.Equal(t, domain.VehicleOther, r.VehicleType)
	assert.Equal(t, domain.StatusUnknown, r.Status)
	assert.False(t, r.Subscription)
}

func TestNormalize_MissingIDFlagged(t *testing.T) {
	raw := rawFromJSON(t, `{"amount": 10}`)

	records, issues := Normalize([]parkingapi.RawBooking{raw})
	require.Len(t, records, 1)

	assert.NotEmpty(t, records[0].ID)
	require.NotEmpty(t, issues)
	assert.Equal(t, "_id", issues[0].Field)
}

func TestNormalize_ReceivableSpellings(t *testing.T) {
	t.Run("only misspelled form", func(t *testing.T) {
		raw := rawFromJSON(t, `{"_id": "a", "recievableamount": 100}`)
		records, issues := Normalize([]parkingapi.RawBooking{raw})
		assert.Equal(t, "100.00", records[0].Receivable.StringFixed(2))
		assert.Empty(t, issues)
	})

	t.Run("only canonical form", func(t *testing.T) {
		raw := rawFromJSON(t, `{"_id": "b", "receivable": "90.5"}`)
		records, issues := Normalize([]parkingapi.RawBooking{raw})
		assert.Equal(t, "90.50", records[0].Receivable.StringFixed(2))
		assert.Empty(t, issues)
	})

	t.Run("both forms disagree", func(t *testing.T) {
		raw := rawFromJSON(t, `{"_id": "c", "receivable": 80, "recievableamount": 85}`)
		records, issues := Normalize([]parkingapi.RawBooking{raw})
		// Выигрывает форма транзакций, расхождение фиксируется
		assert.Equal(t, "85.00", records[0].Receivable.StringFixed(2))
		require.Len(t, issues, 1)
		assert.Equal(t, "receivable", issues[0].Field)
	})
}

func TestNormalize_MalformedMoneyFlagged(t *testing.T) {
	raw := rawFromJSON(t, `{"_id": "d", "amount": "ten rupees"}`)

	records, issues := Normalize([]parkingapi.RawBooking{raw})
	require.Len(t, records, 1)

	assert.True(t, records[0].Amount.IsZero())
	require.NotEmpty(t, issues)
	assert.Equal(t, "amount", issues[0].Field)
}

func TestNormalize_InvalidParkingTimeFlagged(t *testing.T) {
	raw := rawFromJSON(t, `{"_id": "e", "parkingTime": "25:99"}`)

	records, issues := Normalize([]parkingapi.RawBooking{raw})
	require.Len(t, records, 1)

	assert.True(t, records[0].ParkingTime.IsZero())
	require.NotEmpty(t, issues)
	assert.Equal(t, "parkingTime", issues[0].Field)
}

func TestNormalize_AlternateFieldNames(t *testing.T) {
	raw := rawFromJSON(t, `{
		"bookingId": "alt-1",
		"date": "2024-06-15",
		"bookingamount": 42,
		"vehicleno": "MH12CD5678"
	}`)

	records, _ := Normalize([]parkingapi.RawBooking{raw})
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "alt-1", r.ID)
	assert.Equal(t, "2024-06-15", r.BookingDate)
	assert.Equal(t, "42.00", r.Amount.StringFixed(2))
	assert.Equal(t, "MH12CD5678", r.VehicleNumber)
}

func TestNormalize_EmptyInput(t *testing.T) {
	records, issues := Normalize(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Empty(t, issues)
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFreightRecalculate(t *testing.T) {
	t.Run("pending freight with only driver and date has zero total", func(t *testing.T) {
		f := &Freight{DriverID: 1, Date: NewDate(time.Now())}
		f.Recalculate()

		assert.Equal(t, StatusPending, f.Status)
		assert.True(t, f.TotalValue.IsZero())
		assert.True(t, f.ClientTotalValue.IsZero())
	})

	t.Run("filling km tons rate and client completes the freight", func(t *testing.T) {
		f := &Freight{DriverID: 1, Status: StatusPending}
		req := FreightRequest{
			Km:                  ptr(dec("350")),
			Tons:                ptr(dec("27.5")),
			PricePerKmTon:       ptr(dec("0.18")),
			ClientPricePerKmTon: ptr(dec("0.25")),
			ClientName:          ptr("Cooperativa Agro Sul"),
		}
		req.ApplyTo(f)
		f.Recalculate()

		assert.Equal(t, StatusComplete, f.Status)
		assert.True(t, dec("1732.50").Equal(f.TotalValue), f.TotalValue.String())
		assert.True(t, dec("2406.25").Equal(f.ClientTotalValue), f.ClientTotalValue.String())
	})

	t.Run("changing a single operand recomputes the total", func(t *testing.T) {
		f := &Freight{Km: dec("100"), Tons: dec("10"), PricePerKmTon: dec("0.2"), ClientName: "X"}
		f.Recalculate()
		assert.True(t, dec("200").Equal(f.TotalValue))

		(&FreightRequest{Tons: ptr(dec("12"))}).ApplyTo(f)
		f.Recalculate()
		assert.True(t, dec("240").Equal(f.TotalValue))
	})

	t.Run("missing client keeps the freight pending", func(t *testing.T) {
		f := &Freight{Km: dec("100"), Tons: dec("10"), PricePerKmTon: dec("0.2")}
		f.Recalculate()
		assert.Equal(t, StatusPending, f.Status)
		assert.True(t, dec("200").Equal(f.TotalValue))
	})

	t.Run("complete never goes back to pending", func(t *testing.T) {
		f := &Freight{Status: StatusComplete, ClientName: "X"}
		f.Recalculate()
		assert.Equal(t, StatusComplete, f.Status)
	})
}

func TestPurchaseRecalculate(t *testing.T) {
	p := &Purchase{Kind: KindFuel}
	p.Recalculate()
	assert.Equal(t, StatusPending, p.Status)
	assert.True(t, p.TotalValue.IsZero())

	(&PurchaseRequest{Quantity: ptr(dec("412.3")), UnitPrice: ptr(dec("5.89"))}).ApplyTo(p)
	p.Recalculate()
	assert.Equal(t, StatusPending, p.Status, "vendor is still missing")
	assert.True(t, dec("2428.45").Equal(p.TotalValue), p.TotalValue.String())

	(&PurchaseRequest{Vendor: ptr("Posto Graal")}).ApplyTo(p)
	p.Recalculate()
	assert.Equal(t, StatusComplete, p.Status)
}

func TestPlatesUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Plates
	}{
		{"list", `["abc-1234","BRA2E19"]`, Plates{"ABC1234", "BRA2E19"}},
		{"single string", `"abc1234"`, Plates{"ABC1234"}},
		{"comma separated", `"ABC1234, bra2e19"`, Plates{"ABC1234", "BRA2E19"}},
		{"json encoded list", `"[\"ABC1234\",\"ABC1234\"]"`, Plates{"ABC1234"}},
		{"empty string", `""`, Plates{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Plates
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			assert.Equal(t, tc.want, p)
		})
	}

	var p Plates
	assert.Error(t, json.Unmarshal([]byte(`42`), &p))
}

func TestPlatesScanValue(t *testing.T) {
	var p Plates
	require.NoError(t, p.Scan([]byte(`{ABC1234,BRA2E19}`)))
	assert.Equal(t, Plates{"ABC1234", "BRA2E19"}, p)

	v, err := Plates(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestDate(t *testing.T) {
	d, err := ParseDate("05/03/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, "05/03/2024", d.Display())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &back))
	assert.True(t, d.Equal(back.Time))

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(2024, 3, 5, 15, 4, 0, 0, time.UTC)))
	assert.Equal(t, d, scanned)

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}

func TestValidationErrorIsValidation(t *testing.T) {
	err := NewValidationError("km must be positive")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "km must be positive", err.Error())
	assert.ErrorIs(t, NotFoundError("freight", 3), ErrNotFound)
}

func ptr[T any](v T) *T {
	return &v
}

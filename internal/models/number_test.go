package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"integer", `12`, 12},
		{"float", `12.5`, 12.5},
		{"numeric string", `"42"`, 42},
		{"padded string", `" 7 "`, 7},
		{"empty string", `""`, 0},
		{"garbage string", `"n/a"`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"object", `{"a":1}`, 0},
		{"NaN string", `"NaN"`, 0},
		{"Infinity string", `"Infinity"`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestNumber_String(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{0, "0"},
		{1500, "1500"},
		{2.75, "2.75"},
		{-3, "-3"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1.2345e22, "-1.2345e+22"},
		{1e-6, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{-2e-10, "-2e-10"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
		})
	}

	out, err := json.Marshal(struct{ N Number }{1e21})
	require.NoError(t, err)
	assert.JSONEq(t, `{"N":1e+21}`, string(out))
}

func TestDashboardMetrics_MissingFieldsDefaultToZero(t *testing.T) {
	raw := `{"merchants":{"totalMerchants":3},"tickets":{"totalPendingTickets":"4","completedTickets":null}}`

	var m DashboardMetrics
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, 3.0, m.Merchants.TotalMerchants.Float64())
	assert.Equal(t, 0.0, m.Customers.TotalCustomers.Float64())
	assert.Equal(t, 4.0, m.Tickets.TotalPendingTickets.Float64())
	assert.Equal(t, 0.0, m.Tickets.TotalTickets.Float64())
}

func TestDateRange_Key(t *testing.T) {
	r := DateRange{FromDate: "09-03-2024", ToDate: "15-03-2024"}
	assert.Equal(t, "09-03-2024..15-03-2024", r.Key())
}

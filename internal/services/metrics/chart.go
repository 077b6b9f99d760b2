package metrics

import (
	"math"

	"orusconsole/internal/models"
)

// Point is one bar of the metrics chart.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Chart flattens the snapshot into the sixteen fixed bars. No snapshot gives
// an empty chart.
func Chart(m *models.DashboardMetrics) []Point {
	if m == nil {
		return []Point{}
	}
	return []Point{
		{"Merchant Credit", m.Merchants.TotalCredit.Float64()},
		{"New Merchants", m.Merchants.NewMerchants.Float64()},
		{"Total Sales", m.Merchants.TotalSales.Float64()},
		{"Total PayOut", m.Merchants.TotalPayOut.Float64()},
		{"Total Merchants", m.Merchants.TotalMerchants.Float64()},

		{"Total Load Money", m.Customers.TotalLoadMoney.Float64()},
		{"Total Bonus", m.Customers.TotalBonus.Float64()},
		{"Total Customers", m.Customers.TotalCustomers.Float64()},
		{"Customer Credit", m.Customers.TotalCredit.Float64()},
		{"Active Customers", m.Customers.ActiveCustomers.Float64()},
		{"Total Debit", m.Customers.TotalDebit.Float64()},
		{"Total Purchase", m.Customers.TotalPurchase.Float64()},

		{"Processing Tickets", m.Tickets.TotalProcessingTickets.Float64()},
		{"Pending Tickets", m.Tickets.TotalPendingTickets.Float64()},
		{"Completed Tickets", m.Tickets.TotalCompletedTickets.Float64()},
		{"Total Tickets", m.Tickets.TotalTickets.Float64()},
	}
}

// Tile is one summary figure under the chart.
type Tile struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Progress int    `json:"progress"`
}

// Summary returns the Customers, Merchants and Tickets tiles. Progress is
// the share of active customers, new merchants and completed tickets.
func Summary(m *models.DashboardMetrics) []Tile {
	if m == nil {
		return []Tile{
			{Label: "Customers", Value: "0"},
			{Label: "Merchants", Value: "0"},
			{Label: "Tickets", Value: "0"},
		}
	}
	return []Tile{
		{
			Label:    "Customers",
			Value:    m.Customers.TotalCustomers.String(),
			Progress: percent(m.Customers.ActiveCustomers, m.Customers.TotalCustomers),
		},
		{
			Label:    "Merchants",
			Value:    m.Merchants.TotalMerchants.String(),
			Progress: percent(m.Merchants.NewMerchants, m.Merchants.TotalMerchants),
		},
		{
			Label:    "Tickets",
			Value:    m.Tickets.TotalTickets.String(),
			Progress: percent(m.Tickets.TotalCompletedTickets, m.Tickets.TotalTickets),
		},
	}
}

// percent is part/whole as a whole percentage in [0, 100]; 0 when whole is 0.
func percent(part, whole models.Number) int {
	w := whole.Float64()
	if w <= 0 {
		return 0
	}
	p := math.Round(part.Float64() / w * 100)
	return int(math.Max(0, math.Min(100, p)))
}

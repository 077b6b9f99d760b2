package models

// DashboardMetrics is the aggregate snapshot the platform computes for a
// date range. It is read-only on the console side.
type DashboardMetrics struct {
	Merchants MerchantMetrics `json:"merchants"`
	Customers CustomerMetrics `json:"customers"`
	Tickets   TicketMetrics   `json:"tickets"`
}

type MerchantMetrics struct {
	ServiceFee      Number `json:"serviceFee"`
	TotalServiceFee Number `json:"totalServiceFee"`
	PayOnUsFee      Number `json:"payOnUsFee"`
	TotalCredit     Number `json:"totalCredit"`
	NewMerchants    Number `json:"newMerchants"`
	TotalSales      Number `json:"totalSales"`
	PayOut          Number `json:"payOut"`
	TotalPayOut     Number `json:"totalPayOut"`
	TotalMerchants  Number `json:"totalMerchants"`
	Credit          Number `json:"credit"`
}

type CustomerMetrics struct {
	DeactiveCustomers Number `json:"deactiveCustomers"`
	TotalLoadMoney    Number `json:"totalLoadMoney"`
	TotalBonus        Number `json:"totalBonus"`
	TotalCustomers    Number `json:"totalCustomers"`
	ShareMoneyDebit   Number `json:"shareMoneyDebit"`
	TotalCredit       Number `json:"totalCredit"`
	ShareMoneyCredit  Number `json:"shareMoneyCredit"`
	Bonus             Number `json:"bonus"`
	ActiveCustomers   Number `json:"activeCustomers"`
	Purchase          Number `json:"purchase"`
	LoadMoney         Number `json:"loadMoney"`
	TotalDebit        Number `json:"totalDebit"`
	TotalPurchase     Number `json:"totalPurchase"`
	Credit            Number `json:"credit"`
	Debit             Number `json:"debit"`
	DateBetweenUsers  Number `json:"dateBetweenUsers"`
}

// TicketMetrics counts support tickets. The platform sends several of these
// as strings.
type TicketMetrics struct {
	PendingTickets         Number `json:"pendingTickets"`
	ProcessingTickets      Number `json:"processingTickets"`
	TotalProcessingTickets Number `json:"totalProcessingTickets"`
	TotalPendingTickets    Number `json:"totalPendingTickets"`
	TotalCompletedTickets  Number `json:"totalCompletedTickets"`
	TotalTickets           Number `json:"totalTickets"`
	CompletedTickets       Number `json:"completedTickets"`
}

// DateRange bounds a metrics request. Both ends use the DD-MM-YYYY layout.
type DateRange struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// Key identifies the range for cache keys and stale-response checks.
func (r DateRange) Key() string {
	return r.FromDate + ".." + r.ToDate
}

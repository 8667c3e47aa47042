package domain

// RevenueReport is the server-computed rental revenue for a date range.
// This figure is authoritative; the dashboard's client-side sum over a
// sampled page of rentals is not.
type RevenueReport struct {
	StartDate    Timestamp `json:"start_date"`
	EndDate      Timestamp `json:"end_date"`
	TotalRevenue Cents     `json:"total_revenue"`
}

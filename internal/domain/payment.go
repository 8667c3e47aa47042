package domain

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

type Payment struct {
	ID            int32         `json:"payment_id"`
	RentalID      int32         `json:"rental_id"`
	PaymentDate   Timestamp     `json:"payment_date"`
	Amount        Cents         `json:"amount"`
	Method        string        `json:"method"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Status        PaymentStatus `json:"status"`
	PaymentType   string        `json:"payment_type"`
}

type PaymentCreate struct {
	RentalID      int32         `json:"rental_id"`
	Amount        Cents         `json:"amount"`
	Method        string        `json:"method"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Status        PaymentStatus `json:"status,omitempty"`
	PaymentType   string        `json:"payment_type"`
}

// PaymentReport is the server-computed payment summary for a date range.
type PaymentReport struct {
	StartDate     Timestamp `json:"start_date"`
	EndDate       Timestamp `json:"end_date"`
	TotalPayments int32     `json:"total_payments"`
	TotalAmount   Cents     `json:"total_amount"`
	Payments      []Payment `json:"payments"`
}

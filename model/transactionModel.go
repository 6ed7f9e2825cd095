// model/transaction.go
package model

import "time"

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

// Defaults applied when a transaction is created without explicit values.
const (
	DefaultAssurance  = 10000
	DefaultFinePerDay = 2000
)

type Transaction struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	BikeID     int64             `json:"bike_id"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	ReturnTime time.Time         `json:"return_time"`
	Assurance  float64           `json:"assurance"`
	Fine       float64           `json:"fine"`
	TotalFine  float64           `json:"total_fine"`
	Payment    float64           `json:"payment"`
	Status     TransactionStatus `json:"status"`
}

// TransactionRow is the list shape with denormalized references.
// CustomerName/BikeBrand stay nil when the referenced row no longer exists.
type TransactionRow struct {
	Transaction
	CustomerName *string `json:"customer_name,omitempty"`
	BikeBrand    *string `json:"bike_brand,omitempty"`
}

package transaction

import (
	"time"

	"github.com/MrPansu/BikeRental/model"
)

type CreateTransactionReq struct {
	CustomerID int64      `json:"customer_id" validate:"required,gt=0"`
	BikeID     int64      `json:"bike_id" validate:"required,gt=0"`
	StartTime  time.Time  `json:"start_time" validate:"required"`
	EndTime    time.Time  `json:"end_time" validate:"required"`
	ReturnTime *time.Time `json:"return_time"`
	Assurance  *float64   `json:"assurance" validate:"omitempty,gte=0"`
	Fine       *float64   `json:"fine" validate:"omitempty,gte=0"`
}

type UpdateTransactionReq struct {
	CustomerID *int64     `json:"customer_id" validate:"omitempty,gt=0"`
	BikeID     *int64     `json:"bike_id" validate:"omitempty,gt=0"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	ReturnTime *time.Time `json:"return_time"`
	Assurance  *float64   `json:"assurance" validate:"omitempty,gte=0"`
	Fine       *float64   `json:"fine" validate:"omitempty,gte=0"`
	Status     *string    `json:"status" validate:"omitempty,oneof=pending completed"`
}

func (r UpdateTransactionReq) status() *model.TransactionStatus {
	if r.Status == nil {
		return nil
	}
	s := model.TransactionStatus(*r.Status)
	return &s
}

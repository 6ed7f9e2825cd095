package transaction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/MrPansu/BikeRental/model"
	"github.com/MrPansu/BikeRental/service/fee"
	"github.com/MrPansu/BikeRental/service/inventory"
)

// errors used by controllers

type ErrCode string

const (
	ErrValidation ErrCode = "VALIDATION"
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrNoStock    ErrCode = "NO_STOCK"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// inputs

type CreateInput struct {
	CustomerID int64
	BikeID     int64
	StartTime  time.Time
	EndTime    time.Time
	ReturnTime *time.Time
	Assurance  *float64
	Fine       *float64
}

type UpdateInput struct {
	CustomerID *int64
	BikeID     *int64
	StartTime  *time.Time
	EndTime    *time.Time
	ReturnTime *time.Time
	Assurance  *float64
	Fine       *float64
	Status     *model.TransactionStatus
}

type Repo interface {
	Insert(ctx context.Context, t *model.Transaction) error
	Get(ctx context.Context, id int64) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.TransactionRow, error)
}

type BikeReader interface {
	Detail(ctx context.Context, id int64) (*model.Bike, error)
}

type Service interface {
	// List: every transaction with denormalized customer name and bike brand.
	List(ctx context.Context) ([]model.TransactionRow, error)

	// Create: open a pending rental and take one unit out of stock.
	Create(ctx context.Context, in CreateInput) (*model.Transaction, error)

	// Update: merge partial fields, recompute fees, and move stock when the
	// status actually changes.
	Update(ctx context.Context, id int64, in UpdateInput) (*model.Transaction, error)

	// Delete: hand the unit back and remove the record.
	Delete(ctx context.Context, id int64) error
}

// ----- Service implementation -----

type service struct {
	r      Repo
	bikes  BikeReader
	ledger inventory.Ledger
	log    *slog.Logger
}

func New(r Repo, bikes BikeReader, ledger inventory.Ledger, log *slog.Logger) Service {
	return &service{r: r, bikes: bikes, ledger: ledger, log: log}
}

func (s *service) List(ctx context.Context) ([]model.TransactionRow, error) {
	return s.r.List(ctx)
}

func (s *service) Create(ctx context.Context, in CreateInput) (*model.Transaction, error) {
	// required fields, rejected before any side effect
	if in.CustomerID <= 0 || in.BikeID <= 0 || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, makeErr(ErrValidation)
	}

	t := &model.Transaction{
		CustomerID: in.CustomerID,
		BikeID:     in.BikeID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		ReturnTime: in.EndTime,
		Assurance:  model.DefaultAssurance,
		Fine:       model.DefaultFinePerDay,
		Status:     model.TransactionPending,
	}
	if in.ReturnTime != nil {
		t.ReturnTime = *in.ReturnTime
	}
	if in.Assurance != nil {
		t.Assurance = *in.Assurance
	}
	if in.Fine != nil {
		t.Fine = *in.Fine
	}

	if err := s.recompute(ctx, t); err != nil {
		return nil, err
	}

	// Reserve the unit before inserting so an out-of-stock bike never
	// produces a record.
	if err := s.ledger.Decrement(ctx, t.BikeID); err != nil {
		switch inventory.Code(err) {
		case inventory.ErrNoStock:
			return nil, makeErr(ErrNoStock)
		case inventory.ErrBikeNotFound:
			// Stock simply cannot be adjusted; the rental still goes through.
			s.log.Warn("bike missing during stock decrement", "bike_id", t.BikeID)
		default:
			return nil, err
		}
	}

	if err := s.r.Insert(ctx, t); err != nil {
		if rbErr := s.ledger.Increment(ctx, t.BikeID); rbErr != nil {
			s.log.Error("failed to restore stock after insert failure",
				"bike_id", t.BikeID, "err", rbErr)
		}
		return nil, err
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, id int64, in UpdateInput) (*model.Transaction, error) {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, makeErr(ErrNotFound)
	}
	prevStatus := t.Status

	if in.CustomerID != nil {
		t.CustomerID = *in.CustomerID
	}
	if in.BikeID != nil {
		t.BikeID = *in.BikeID
	}
	if in.StartTime != nil {
		t.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		t.EndTime = *in.EndTime
	}
	if in.ReturnTime != nil {
		t.ReturnTime = *in.ReturnTime
	}
	if in.Assurance != nil {
		t.Assurance = *in.Assurance
	}
	if in.Fine != nil {
		t.Fine = *in.Fine
	}
	if in.Status != nil {
		if *in.Status != model.TransactionPending && *in.Status != model.TransactionCompleted {
			return nil, makeErr(ErrValidation)
		}
		t.Status = *in.Status
	}

	if err := s.recompute(ctx, t); err != nil {
		return nil, err
	}

	ok, err := s.r.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrNotFound)
	}

	// Stock moves only on an observed transition. Re-saving the same status
	// must not adjust the counter again.
	if prevStatus != t.Status {
		var lerr error
		if t.Status == model.TransactionCompleted {
			lerr = s.ledger.Increment(ctx, t.BikeID)
		} else {
			lerr = s.ledger.Decrement(ctx, t.BikeID)
		}
		if lerr != nil {
			s.log.Warn("stock adjustment failed on status change",
				"transaction_id", t.ID, "bike_id", t.BikeID, "status", t.Status, "err", lerr)
		}
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return makeErr(ErrNotFound)
	}

	// The unit comes back regardless of status.
	if err := s.ledger.Increment(ctx, t.BikeID); err != nil {
		s.log.Warn("stock restore failed on delete",
			"transaction_id", t.ID, "bike_id", t.BikeID, "err", err)
	}

	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

// recompute derives total_fine and payment from the current timestamps. A
// missing bike cannot contribute a daily price, so the payment degrades to
// the fine alone.
func (s *service) recompute(ctx context.Context, t *model.Transaction) error {
	t.TotalFine = fee.Fine(t.EndTime, t.ReturnTime, t.Fine)

	price := 0.0
	b, err := s.bikes.Detail(ctx, t.BikeID)
	if err != nil {
		return err
	}
	if b == nil {
		s.log.Warn("bike missing during fee computation", "bike_id", t.BikeID)
	} else {
		price = b.Price
	}
	t.Payment = fee.Payment(t.StartTime, t.ReturnTime, price, t.TotalFine)
	return nil
}

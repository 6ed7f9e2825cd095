// Package inventory owns the bike available-unit counter. All adjustments go
// through a single guarded UPDATE so concurrent rentals cannot lose updates
// or drive the count below zero.
package inventory

import (
	"context"
	"errors"
)

type ErrCode string

const (
	ErrNoStock      ErrCode = "NO_STOCK"
	ErrBikeNotFound ErrCode = "BIKE_NOT_FOUND"
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

type Repo interface {
	AdjustAmount(ctx context.Context, bikeID, delta int64) (int64, error)
	Exists(ctx context.Context, bikeID int64) (bool, error)
}

type Ledger interface {
	// Decrement takes one unit out of stock. NO_STOCK when none remain,
	// BIKE_NOT_FOUND when the bike row is gone.
	Decrement(ctx context.Context, bikeID int64) error

	// Increment puts one unit back. BIKE_NOT_FOUND when the bike row is gone.
	Increment(ctx context.Context, bikeID int64) error
}

type ledger struct{ r Repo }

func New(r Repo) Ledger { return &ledger{r: r} }

func (l *ledger) Decrement(ctx context.Context, bikeID int64) error {
	aff, err := l.r.AdjustAmount(ctx, bikeID, -1)
	if err != nil {
		return err
	}
	if aff > 0 {
		return nil
	}
	ok, err := l.r.Exists(ctx, bikeID)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrBikeNotFound)
	}
	return makeErr(ErrNoStock)
}

func (l *ledger) Increment(ctx context.Context, bikeID int64) error {
	aff, err := l.r.AdjustAmount(ctx, bikeID, 1)
	if err != nil {
		return err
	}
	if aff > 0 {
		return nil
	}
	ok, err := l.r.Exists(ctx, bikeID)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrBikeNotFound)
	}
	return nil
}

package transaction_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MrPansu/BikeRental/model"
	"github.com/MrPansu/BikeRental/service/inventory"
	ts "github.com/MrPansu/BikeRental/service/transaction"
)

var day0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func days(n int) time.Time { return day0.Add(time.Duration(n) * 24 * time.Hour) }

// --- mocks ---

type repoMock struct {
	insertFn func(ctx context.Context, t *model.Transaction) error
	getFn    func(ctx context.Context, id int64) (*model.Transaction, error)
	updateFn func(ctx context.Context, t *model.Transaction) (bool, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
	listFn   func(ctx context.Context) ([]model.TransactionRow, error)

	inserted *model.Transaction
	updated  *model.Transaction
}

func (m *repoMock) Insert(ctx context.Context, t *model.Transaction) error {
	m.inserted = t
	if m.insertFn != nil {
		return m.insertFn(ctx, t)
	}
	t.ID = 1
	return nil
}

func (m *repoMock) Get(ctx context.Context, id int64) (*model.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *repoMock) Update(ctx context.Context, t *model.Transaction) (bool, error) {
	cp := *t
	m.updated = &cp
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return true, nil
}

func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

func (m *repoMock) List(ctx context.Context) ([]model.TransactionRow, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type bikeMock struct {
	detailFn func(ctx context.Context, id int64) (*model.Bike, error)
}

func (m *bikeMock) Detail(ctx context.Context, id int64) (*model.Bike, error) {
	if m.detailFn != nil {
		return m.detailFn(ctx, id)
	}
	return nil, nil
}

type ledgerErr inventory.ErrCode

func (e ledgerErr) Error() string           { return string(e) }
func (e ledgerErr) Code() inventory.ErrCode { return inventory.ErrCode(e) }

type ledgerMock struct {
	decs, incs []int64
	decErr     error
	incErr     error
}

func (m *ledgerMock) Decrement(ctx context.Context, bikeID int64) error {
	if m.decErr != nil {
		return m.decErr
	}
	m.decs = append(m.decs, bikeID)
	return nil
}

func (m *ledgerMock) Increment(ctx context.Context, bikeID int64) error {
	if m.incErr != nil {
		return m.incErr
	}
	m.incs = append(m.incs, bikeID)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bikeWithPrice(price float64) *bikeMock {
	return &bikeMock{detailFn: func(ctx context.Context, id int64) (*model.Bike, error) {
		return &model.Bike{ID: id, Brand: "Polygon", Price: price, Amount: 3}, nil
	}}
}

// --- create ---

func TestCreate_MissingFields(t *testing.T) {
	r := &repoMock{}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	_, err := svc.Create(context.Background(), ts.CreateInput{
		CustomerID: 5,
		BikeID:     7,
		StartTime:  days(0),
		// EndTime missing
	})
	require.Equal(t, ts.ErrValidation, ts.Code(err))
	require.Nil(t, r.inserted, "nothing may be persisted")
	require.Empty(t, l.decs, "stock must stay untouched")
}

func TestCreate_TwoDayRental(t *testing.T) {
	r := &repoMock{}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	out, err := svc.Create(context.Background(), ts.CreateInput{
		CustomerID: 5,
		BikeID:     7,
		StartTime:  days(0),
		EndTime:    days(2),
	})
	require.NoError(t, err)

	require.Equal(t, model.TransactionPending, out.Status)
	require.Equal(t, days(2), out.ReturnTime, "return time defaults to end time")
	require.Equal(t, float64(model.DefaultAssurance), out.Assurance)
	require.Equal(t, float64(model.DefaultFinePerDay), out.Fine)
	require.Equal(t, 0.0, out.TotalFine)
	require.Equal(t, 100000.0, out.Payment)

	require.Equal(t, []int64{7}, l.decs, "exactly one unit leaves stock")
	require.Empty(t, l.incs)
	require.NotNil(t, r.inserted)
}

func TestCreate_NoStock(t *testing.T) {
	r := &repoMock{}
	l := &ledgerMock{decErr: ledgerErr(inventory.ErrNoStock)}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	_, err := svc.Create(context.Background(), ts.CreateInput{
		CustomerID: 5, BikeID: 7, StartTime: days(0), EndTime: days(2),
	})
	require.Equal(t, ts.ErrNoStock, ts.Code(err))
	require.Nil(t, r.inserted, "out-of-stock bike must not produce a record")
}

func TestCreate_BikeGoneIsNonFatal(t *testing.T) {
	r := &repoMock{}
	l := &ledgerMock{decErr: ledgerErr(inventory.ErrBikeNotFound)}
	missing := &bikeMock{detailFn: func(ctx context.Context, id int64) (*model.Bike, error) {
		return nil, nil
	}}
	svc := ts.New(r, missing, l, testLogger())

	fine := 2000.0
	ret := days(4)
	out, err := svc.Create(context.Background(), ts.CreateInput{
		CustomerID: 5, BikeID: 7, StartTime: days(0), EndTime: days(2),
		ReturnTime: &ret, Fine: &fine,
	})
	require.NoError(t, err, "missing bike only skips the stock adjustment")
	require.Equal(t, 4000.0, out.TotalFine)
	require.Equal(t, 4000.0, out.Payment, "no daily price without a bike")
	require.NotNil(t, r.inserted)
}

func TestCreate_InsertFailureRestoresStock(t *testing.T) {
	r := &repoMock{insertFn: func(ctx context.Context, tr *model.Transaction) error {
		return errors.New("db down")
	}}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	_, err := svc.Create(context.Background(), ts.CreateInput{
		CustomerID: 5, BikeID: 7, StartTime: days(0), EndTime: days(2),
	})
	require.Error(t, err)
	require.Equal(t, []int64{7}, l.decs)
	require.Equal(t, []int64{7}, l.incs, "reserved unit must come back")
}

// --- update ---

func pending(id int64) *model.Transaction {
	return &model.Transaction{
		ID: id, CustomerID: 5, BikeID: 7,
		StartTime: days(0), EndTime: days(2), ReturnTime: days(2),
		Assurance: 10000, Fine: 2000, Payment: 100000,
		Status: model.TransactionPending,
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := ts.New(&repoMock{}, bikeWithPrice(50000), &ledgerMock{}, testLogger())
	_, err := svc.Update(context.Background(), 99, ts.UpdateInput{})
	require.Equal(t, ts.ErrNotFound, ts.Code(err))
}

func TestUpdate_LateReturnAccruesFine(t *testing.T) {
	r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
		return pending(id), nil
	}}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	ret := days(4)
	out, err := svc.Update(context.Background(), 1, ts.UpdateInput{ReturnTime: &ret})
	require.NoError(t, err)

	require.Equal(t, 4000.0, out.TotalFine, "two days late at 2000/day")
	require.Equal(t, 204000.0, out.Payment, "4 days * 50000 + 4000")
	require.Empty(t, l.incs, "status unchanged, stock untouched")
	require.Empty(t, l.decs)
}

func TestUpdate_CompleteReturnsUnit(t *testing.T) {
	r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
		return pending(id), nil
	}}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	st := model.TransactionCompleted
	out, err := svc.Update(context.Background(), 1, ts.UpdateInput{Status: &st})
	require.NoError(t, err)
	require.Equal(t, model.TransactionCompleted, out.Status)
	require.Equal(t, []int64{7}, l.incs)
	require.Empty(t, l.decs)
}

func TestUpdate_ReopenTakesUnitAgain(t *testing.T) {
	r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
		tr := pending(id)
		tr.Status = model.TransactionCompleted
		return tr, nil
	}}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	st := model.TransactionPending
	_, err := svc.Update(context.Background(), 1, ts.UpdateInput{Status: &st})
	require.NoError(t, err)
	require.Equal(t, []int64{7}, l.decs)
	require.Empty(t, l.incs)
}

func TestUpdate_SameStatusDoesNotMoveStock(t *testing.T) {
	r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
		return pending(id), nil
	}}
	l := &ledgerMock{}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	st := model.TransactionPending
	_, err := svc.Update(context.Background(), 1, ts.UpdateInput{Status: &st})
	require.NoError(t, err)
	require.Empty(t, l.incs, "re-saving the same status must not adjust inventory")
	require.Empty(t, l.decs)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
		return pending(id), nil
	}}
	svc := ts.New(r, bikeWithPrice(50000), &ledgerMock{}, testLogger())

	st := model.TransactionStatus("cancelled")
	_, err := svc.Update(context.Background(), 1, ts.UpdateInput{Status: &st})
	require.Equal(t, ts.ErrValidation, ts.Code(err))
	require.Nil(t, r.updated)
}

// --- delete ---

func TestDelete_RestoresStockRegardlessOfStatus(t *testing.T) {
	for _, status := range []model.TransactionStatus{model.TransactionPending, model.TransactionCompleted} {
		r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
			tr := pending(id)
			tr.Status = status
			return tr, nil
		}}
		l := &ledgerMock{}
		svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

		require.NoError(t, svc.Delete(context.Background(), 1))
		require.Equal(t, []int64{7}, l.incs, "status %s", status)
		require.Empty(t, l.decs)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := ts.New(&repoMock{}, bikeWithPrice(50000), &ledgerMock{}, testLogger())
	err := svc.Delete(context.Background(), 99)
	require.Equal(t, ts.ErrNotFound, ts.Code(err))
}

func TestDelete_LedgerFailureIsNonFatal(t *testing.T) {
	r := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Transaction, error) {
		return pending(id), nil
	}}
	l := &ledgerMock{incErr: ledgerErr(inventory.ErrBikeNotFound)}
	svc := ts.New(r, bikeWithPrice(50000), l, testLogger())

	require.NoError(t, svc.Delete(context.Background(), 1), "missing bike must not block the delete")
}

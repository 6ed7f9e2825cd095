// service/bike/bike_service_test.go
package bikesvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MrPansu/BikeRental/model"
	bikesvc "github.com/MrPansu/BikeRental/service/bike"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Bike) error
	listFn   func(ctx context.Context) ([]model.Bike, error)
	detailFn func(ctx context.Context, id int64) (*model.Bike, error)
	updateFn func(ctx context.Context, b *model.Bike) (bool, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Bike) error { return m.createFn(ctx, b) }
func (m *repoMock) List(ctx context.Context) ([]model.Bike, error)  { return m.listFn(ctx) }
func (m *repoMock) Detail(ctx context.Context, id int64) (*model.Bike, error) {
	return m.detailFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, b *model.Bike) (bool, error) {
	return m.updateFn(ctx, b)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	s := bikesvc.New(&repoMock{})
	if err := s.Create(context.Background(), &model.Bike{Price: 50000, Amount: 3, Picture: "p.jpg"}); err == nil {
		t.Fatal("expected error for empty brand")
	}
	if err := s.Create(context.Background(), &model.Bike{Brand: "Polygon", Price: -1, Amount: 3, Picture: "p.jpg"}); err == nil {
		t.Fatal("expected error for negative price")
	}
	if err := s.Create(context.Background(), &model.Bike{Brand: "Polygon", Price: 50000, Amount: -1, Picture: "p.jpg"}); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if err := s.Create(context.Background(), &model.Bike{Brand: "Polygon", Price: 50000, Amount: 3}); err == nil {
		t.Fatal("expected error for missing picture")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Bike) error {
			if b.Brand != "Polygon" || b.Price != 50000 || b.Amount != 3 {
				return errors.New("bad args")
			}
			b.ID = 42
			return nil
		},
	}
	s := bikesvc.New(m)
	b := &model.Bike{Brand: "Polygon", Price: 50000, Amount: 3, Picture: "p.jpg"}
	if err := s.Create(context.Background(), b); err != nil || b.ID != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", b.ID, err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn:   func(ctx context.Context) ([]model.Bike, error) { return nil, nil },
		detailFn: func(ctx context.Context, id int64) (*model.Bike, error) { return &model.Bike{}, nil },
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
	s := bikesvc.New(m)

	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := s.Detail(context.Background(), 99); err != nil {
		t.Fatalf("Detail error: %v", err)
	}
	if ok, err := s.Delete(context.Background(), 7); err != nil || !ok {
		t.Fatalf("Delete got %v %v; want true nil", ok, err)
	}
}

package bikesvc

import (
	"context"
	"errors"

	"github.com/MrPansu/BikeRental/model"
)

var ErrInvalid = errors.New("invalid payload")

type Repo interface {
	Create(ctx context.Context, b *model.Bike) error
	List(ctx context.Context) ([]model.Bike, error)
	Detail(ctx context.Context, id int64) (*model.Bike, error)
	Update(ctx context.Context, b *model.Bike) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, b *model.Bike) error
	List(ctx context.Context) ([]model.Bike, error)
	Detail(ctx context.Context, id int64) (*model.Bike, error)
	Update(ctx context.Context, b *model.Bike) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, b *model.Bike) error {
	if b.Brand == "" || b.Picture == "" || b.Price < 0 || b.Amount < 0 {
		return ErrInvalid
	}
	return s.r.Create(ctx, b)
}

func (s *service) Update(ctx context.Context, b *model.Bike) (bool, error) {
	if b.Brand == "" || b.Price < 0 || b.Amount < 0 {
		return false, ErrInvalid
	}
	return s.r.Update(ctx, b)
}

func (s *service) List(ctx context.Context) ([]model.Bike, error)            { return s.r.List(ctx) }
func (s *service) Detail(ctx context.Context, id int64) (*model.Bike, error) { return s.r.Detail(ctx, id) }
func (s *service) Delete(ctx context.Context, id int64) (bool, error)        { return s.r.Delete(ctx, id) }

package customersvc

import (
	"context"
	"errors"

	"github.com/MrPansu/BikeRental/model"
)

var ErrInvalid = errors.New("invalid payload")

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	List(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, c *model.Customer) error
	List(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, c *model.Customer) error {
	if c.Name == "" || c.Phone == "" || c.Address == "" || c.Selfie == "" {
		return ErrInvalid
	}
	return s.r.Create(ctx, c)
}

func (s *service) Update(ctx context.Context, c *model.Customer) (bool, error) {
	if c.Name == "" || c.Phone == "" || c.Address == "" {
		return false, ErrInvalid
	}
	return s.r.Update(ctx, c)
}

func (s *service) List(ctx context.Context) ([]model.Customer, error) { return s.r.List(ctx) }
func (s *service) Detail(ctx context.Context, id int64) (*model.Customer, error) {
	return s.r.Detail(ctx, id)
}
func (s *service) Delete(ctx context.Context, id int64) (bool, error) { return s.r.Delete(ctx, id) }

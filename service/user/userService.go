// Admin-facing user management. Register/login live in service/auth.
package usersvc

import (
	"context"
	"errors"

	"github.com/MrPansu/BikeRental/model"
	userrepo "github.com/MrPansu/BikeRental/repository/user"
	"github.com/MrPansu/BikeRental/util/hash"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
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

type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

type Service interface {
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur: ur} }

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.ur.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, in UpdateInput) (*model.User, error) {
	u, err := s.ur.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, makeErr(ErrNotFound)
	}

	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		if *in.Role != "user" && *in.Role != "admin" {
			return nil, makeErr(ErrBadInput)
		}
		u.Role = *in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, makeErr(ErrBadInput)
		}
		hashed, err := hash.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hashed
	}

	ok, err := s.ur.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrNotFound)
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.ur.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

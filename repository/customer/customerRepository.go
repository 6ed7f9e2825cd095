package customerrepo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/MrPansu/BikeRental/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	List(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
INSERT INTO customers (name, phone, address, selfie)
VALUES ($1,$2,$3,$4)
RETURNING id`
	if err := r.db.QueryRowContext(ctx, q, c.Name, c.Phone, c.Address, c.Selfie).Scan(&c.ID); err != nil {
		return errors.Wrap(err, "insert customer")
	}
	return nil
}

func (r *repo) List(ctx context.Context) ([]model.Customer, error) {
	const q = `
	SELECT id, name, phone, address, selfie
	FROM customers
	ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Selfie); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
SELECT id, name, phone, address, selfie
FROM customers
WHERE id=$1`
	var c model.Customer
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Selfie)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "customer detail")
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	const q = `
		UPDATE customers
		SET name=$2, phone=$3, address=$4, selfie=$5
		WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.Phone, c.Address, c.Selfie)
	if err != nil {
		return false, errors.Wrap(err, "update customer")
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return false, errors.Wrap(err, "delete customer")
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

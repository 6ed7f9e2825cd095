package bikerepo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/MrPansu/BikeRental/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Bike) error
	List(ctx context.Context) ([]model.Bike, error)
	Detail(ctx context.Context, id int64) (*model.Bike, error)
	Update(ctx context.Context, b *model.Bike) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// AdjustAmount shifts the available-unit count by delta in one guarded
	// statement. It reports 0 rows when the bike is missing or when the
	// adjustment would push the count below zero.
	AdjustAmount(ctx context.Context, id, delta int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Bike) error {
	const q = `
INSERT INTO bikes (brand, price, amount, picture)
VALUES ($1,$2,$3,$4)
RETURNING id`
	if err := r.db.QueryRowContext(ctx, q, b.Brand, b.Price, b.Amount, b.Picture).Scan(&b.ID); err != nil {
		return errors.Wrap(err, "insert bike")
	}
	return nil
}

func (r *repo) List(ctx context.Context) ([]model.Bike, error) {
	const q = `
	SELECT id, brand, price, amount, picture
	FROM bikes
	ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list bikes")
	}
	defer rows.Close()

	var out []model.Bike
	for rows.Next() {
		var b model.Bike
		if err := rows.Scan(&b.ID, &b.Brand, &b.Price, &b.Amount, &b.Picture); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Bike, error) {
	const q = `
SELECT id, brand, price, amount, picture
FROM bikes
WHERE id=$1`
	var b model.Bike
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Brand, &b.Price, &b.Amount, &b.Picture)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "bike detail")
	}
	return &b, nil
}

func (r *repo) Update(ctx context.Context, b *model.Bike) (bool, error) {
	const q = `
		UPDATE bikes
		SET brand=$2, price=$3, amount=$4, picture=$5
		WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, b.ID, b.Brand, b.Price, b.Amount, b.Picture)
	if err != nil {
		return false, errors.Wrap(err, "update bike")
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bikes WHERE id=$1`, id)
	if err != nil {
		return false, errors.Wrap(err, "delete bike")
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) AdjustAmount(ctx context.Context, id, delta int64) (int64, error) {
	// Guard: never let amount go negative.
	const q = `
			UPDATE bikes
			SET amount = amount + $2
			WHERE id = $1
			AND amount + $2 >= 0`
	res, err := r.db.ExecContext(ctx, q, id, delta)
	if err != nil {
		return 0, errors.Wrap(err, "adjust bike amount")
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bikes WHERE id=$1)`, id).Scan(&ok)
	if err != nil {
		return false, errors.Wrap(err, "bike exists")
	}
	return ok, nil
}

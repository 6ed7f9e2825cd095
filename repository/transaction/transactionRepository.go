// repository/transaction/repo.go
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/MrPansu/BikeRental/model"
)

type Repo interface {
	Insert(ctx context.Context, t *model.Transaction) error
	Get(ctx context.Context, id int64) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// List returns every transaction joined with the customer name and bike
	// brand. Dangling references scan as NULL and stay nil on the row.
	List(ctx context.Context) ([]model.TransactionRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, t *model.Transaction) error {
	const q = `
		INSERT INTO transactions
			(customer_id, bike_id, start_time, end_time, return_time,
			 assurance, fine, total_fine, payment, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, q,
		t.CustomerID, t.BikeID, t.StartTime, t.EndTime, t.ReturnTime,
		t.Assurance, t.Fine, t.TotalFine, t.Payment, t.Status,
	).Scan(&t.ID)
	if err != nil {
		return errors.Wrap(err, "insert transaction")
	}
	return nil
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Transaction, error) {
	const q = `
		SELECT id, customer_id, bike_id, start_time, end_time, return_time,
		       assurance, fine, total_fine, payment, status
		FROM transactions
		WHERE id = $1`
	var t model.Transaction
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.CustomerID, &t.BikeID, &t.StartTime, &t.EndTime, &t.ReturnTime,
		&t.Assurance, &t.Fine, &t.TotalFine, &t.Payment, &t.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get transaction")
	}
	return &t, nil
}

func (r *repo) Update(ctx context.Context, t *model.Transaction) (bool, error) {
	const q = `
		UPDATE transactions
		SET customer_id=$2, bike_id=$3, start_time=$4, end_time=$5, return_time=$6,
		    assurance=$7, fine=$8, total_fine=$9, payment=$10, status=$11
		WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q,
		t.ID, t.CustomerID, t.BikeID, t.StartTime, t.EndTime, t.ReturnTime,
		t.Assurance, t.Fine, t.TotalFine, t.Payment, t.Status,
	)
	if err != nil {
		return false, errors.Wrap(err, "update transaction")
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	if err != nil {
		return false, errors.Wrap(err, "delete transaction")
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) List(ctx context.Context) ([]model.TransactionRow, error) {
	const q = `
			SELECT
			t.id, t.customer_id, t.bike_id, t.start_time, t.end_time, t.return_time,
			t.assurance, t.fine, t.total_fine, t.payment, t.status,
			c.name  AS customer_name,
			b.brand AS bike_brand
			FROM transactions t
			LEFT JOIN customers c ON c.id = t.customer_id
			LEFT JOIN bikes     b ON b.id = t.bike_id
			ORDER BY t.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	defer rows.Close()

	var out []model.TransactionRow
	for rows.Next() {
		var row model.TransactionRow
		var name, brand sql.NullString
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.BikeID, &row.StartTime, &row.EndTime, &row.ReturnTime,
			&row.Assurance, &row.Fine, &row.TotalFine, &row.Payment, &row.Status,
			&name, &brand,
		); err != nil {
			return nil, err
		}
		if name.Valid {
			row.CustomerName = &name.String
		}
		if brand.Valid {
			row.BikeBrand = &brand.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"time"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/jackc/pgx/v5"
)

type PaymentRecord struct {
	ClientID    string
	ClientName  string
	PaymentType string
	DueDate     time.Time
	Status      string
	PaidDate    *time.Time
	Amount      float64
	Notes       *string
}

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, client_id, client_name, payment_type, due_date, status, paid_date, amount, notes`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var id string
	var doc models.StoredPayment
	err := row.Scan(
		&id,
		&doc.ClientID,
		&doc.ClientName,
		&doc.PaymentType,
		&doc.DueDate,
		&doc.Status,
		&doc.PaidDate,
		&doc.Amount,
		&doc.Notes,
	)
	if err != nil {
		return nil, err
	}
	payment := models.PaymentFromStored(id, doc)
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, rec PaymentRecord) (*models.Payment, error) {
	query := `
		INSERT INTO payments (client_id, client_name, payment_type, due_date, status, paid_date, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + paymentColumns
	return scanPayment(r.db.QueryRow(
		ctx,
		query,
		rec.ClientID,
		rec.ClientName,
		rec.PaymentType,
		rec.DueDate,
		rec.Status,
		rec.PaidDate,
		rec.Amount,
		rec.Notes,
	))
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRow(ctx, query, id))
}

func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY due_date ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id string, rec PaymentRecord) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET client_id = $2, client_name = $3, payment_type = $4, due_date = $5,
		    status = $6, paid_date = $7, amount = $8, notes = $9
		WHERE id = $1
		RETURNING ` + paymentColumns
	return scanPayment(r.db.QueryRow(
		ctx,
		query,
		id,
		rec.ClientID,
		rec.ClientName,
		rec.PaymentType,
		rec.DueDate,
		rec.Status,
		rec.PaidDate,
		rec.Amount,
		rec.Notes,
	))
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

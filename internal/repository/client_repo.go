package repository

import (
	"context"
	"time"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/jackc/pgx/v5"
)

// ClientRecord holds the writable fields of a client document. The id and
// join date are assigned by the store and never appear here.
type ClientRecord struct {
	Name        string
	Kana        string
	Email       string
	Status      string
	Gender      *string
	Birthday    *time.Time
	Phone       *string
	Address     *string
	SessionType *string
	Notes       *string
}

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, kana, email, status, join_date, gender, birthday, phone, address, session_type, notes`

func scanClient(row pgx.Row) (*models.Client, error) {
	var id string
	var doc models.StoredClient
	err := row.Scan(
		&id,
		&doc.Name,
		&doc.Kana,
		&doc.Email,
		&doc.Status,
		&doc.JoinDate,
		&doc.Gender,
		&doc.Birthday,
		&doc.Phone,
		&doc.Address,
		&doc.SessionType,
		&doc.Notes,
	)
	if err != nil {
		return nil, err
	}
	client := models.ClientFromStored(id, doc)
	return &client, nil
}

func (r *ClientRepository) Create(ctx context.Context, rec ClientRecord) (*models.Client, error) {
	query := `
		INSERT INTO clients (name, kana, email, status, gender, birthday, phone, address, session_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + clientColumns
	return scanClient(r.db.QueryRow(
		ctx,
		query,
		rec.Name,
		rec.Kana,
		rec.Email,
		rec.Status,
		rec.Gender,
		rec.Birthday,
		rec.Phone,
		rec.Address,
		rec.SessionType,
		rec.Notes,
	))
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.db.QueryRow(ctx, query, id))
}

func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY join_date ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update overwrites every form-collected field; the id and join date are
// untouched.
func (r *ClientRepository) Update(ctx context.Context, id string, rec ClientRecord) (*models.Client, error) {
	query := `
		UPDATE clients
		SET name = $2, kana = $3, email = $4, status = $5, gender = $6, birthday = $7,
		    phone = $8, address = $9, session_type = $10, notes = $11
		WHERE id = $1
		RETURNING ` + clientColumns
	return scanClient(r.db.QueryRow(
		ctx,
		query,
		id,
		rec.Name,
		rec.Kana,
		rec.Email,
		rec.Status,
		rec.Gender,
		rec.Birthday,
		rec.Phone,
		rec.Address,
		rec.SessionType,
		rec.Notes,
	))
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

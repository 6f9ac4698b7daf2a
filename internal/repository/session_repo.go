package repository

import (
	"context"
	"time"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/jackc/pgx/v5"
)

// SessionRecord holds the writable fields of a session document. ClientName
// is a snapshot of the client's display name at creation time.
type SessionRecord struct {
	ClientID   string
	ClientName string
	Date       time.Time
	Time       string
	Type       string
	Status     string
	CoachName  string
	MeetLink   *string
	Notes      *string
	Summary    *string
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, client_id, client_name, session_date, session_time, session_type, status, coach_name, meet_link, notes, summary`

func scanSession(row pgx.Row) (*models.Session, error) {
	var id string
	var doc models.StoredSession
	err := row.Scan(
		&id,
		&doc.ClientID,
		&doc.ClientName,
		&doc.Date,
		&doc.Time,
		&doc.Type,
		&doc.Status,
		&doc.CoachName,
		&doc.MeetLink,
		&doc.Notes,
		&doc.Summary,
	)
	if err != nil {
		return nil, err
	}
	session := models.SessionFromStored(id, doc)
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, rec SessionRecord) (*models.Session, error) {
	query := `
		INSERT INTO sessions (client_id, client_name, session_date, session_time, session_type, status, coach_name, meet_link, notes, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + sessionColumns
	return scanSession(r.db.QueryRow(
		ctx,
		query,
		rec.ClientID,
		rec.ClientName,
		rec.Date,
		rec.Time,
		rec.Type,
		rec.Status,
		rec.CoachName,
		rec.MeetLink,
		rec.Notes,
		rec.Summary,
	))
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	return scanSession(r.db.QueryRow(ctx, query, id))
}

func (r *SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY session_date ASC, session_time ASC, id ASC`
	return r.collect(ctx, query)
}

func (r *SessionRepository) ListByStatus(ctx context.Context, status string) ([]models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE status = $1 ORDER BY session_date ASC, session_time ASC, id ASC`
	return r.collect(ctx, query, status)
}

func (r *SessionRepository) collect(ctx context.Context, query string, args ...any) ([]models.Session, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, rec SessionRecord) (*models.Session, error) {
	query := `
		UPDATE sessions
		SET client_id = $2, client_name = $3, session_date = $4, session_time = $5, session_type = $6,
		    status = $7, coach_name = $8, meet_link = $9, notes = $10, summary = $11
		WHERE id = $1
		RETURNING ` + sessionColumns
	return scanSession(r.db.QueryRow(
		ctx,
		query,
		id,
		rec.ClientID,
		rec.ClientName,
		rec.Date,
		rec.Time,
		rec.Type,
		rec.Status,
		rec.CoachName,
		rec.MeetLink,
		rec.Notes,
		rec.Summary,
	))
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	DB *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *model.ContactMessage) (int64, error) {
	var id int64
	query := `
		INSERT INTO contact_messages (name, email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, 'open', $5)
		RETURNING message_id
	`
	err := r.DB.QueryRow(ctx, query, m.Name, m.Email, m.Subject, m.Message, time.Now()).Scan(&id)
	return id, err
}

func (r *ContactRepository) List(ctx context.Context, status string) ([]model.ContactMessage, error) {
	query := `
		SELECT message_id, name, email, subject, message, status, assigned_to, created_at
		FROM contact_messages
		WHERE ($1 = '' OR status = $1)
		ORDER BY message_id DESC
	`
	rows, err := r.DB.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.MessageID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.AssignedTo, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Assign hands a message to an admin and marks it in progress.
func (r *ContactRepository) Assign(ctx context.Context, messageID int64, adminEmail string) error {
	query := `UPDATE contact_messages SET assigned_to=$1, status='in_progress' WHERE message_id=$2`
	tag, err := r.DB.Exec(ctx, query, adminEmail, messageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("message not found")
	}
	return nil
}

func (r *ContactRepository) Close(ctx context.Context, messageID int64) error {
	tag, err := r.DB.Exec(ctx, `UPDATE contact_messages SET status='closed' WHERE message_id=$1`, messageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("message not found")
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tempmail/internal/model"

	_ "github.com/lib/pq"
)

type PostgresMailboxRepository struct {
	db *sql.DB
}

func NewPostgresMailboxRepository(db *sql.DB) *PostgresMailboxRepository {
	return &PostgresMailboxRepository{db: db}
}

func (r *PostgresMailboxRepository) Save(ctx context.Context, mailbox *model.Mailbox) error {
	query := `
		INSERT INTO mailboxes (id, email, password, verification_code, status, used, created, last_checked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE SET
			password = EXCLUDED.password,
			verification_code = EXCLUDED.verification_code,
			status = EXCLUDED.status,
			used = EXCLUDED.used,
			last_checked = EXCLUDED.last_checked`
	_, err := r.db.ExecContext(ctx, query,
		mailbox.ID, mailbox.Email, mailbox.Password,
		nullString(mailbox.VerificationCode), mailbox.Status, mailbox.Used,
		mailbox.Created, mailbox.LastChecked)
	return err
}

func (r *PostgresMailboxRepository) FindByID(ctx context.Context, id string) (*model.Mailbox, error) {
	query := `SELECT id, email, password, verification_code, status, used, created, last_checked FROM mailboxes WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresMailboxRepository) FindByEmail(ctx context.Context, email string) (*model.Mailbox, error) {
	query := `SELECT id, email, password, verification_code, status, used, created, last_checked FROM mailboxes WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresMailboxRepository) FindAll(ctx context.Context) ([]*model.Mailbox, error) {
	query := `SELECT id, email, password, verification_code, status, used, created, last_checked FROM mailboxes ORDER BY created DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mailboxes []*model.Mailbox
	for rows.Next() {
		mailbox, err := scanMailbox(rows)
		if err != nil {
			return nil, err
		}
		mailboxes = append(mailboxes, mailbox)
	}
	return mailboxes, rows.Err()
}

func (r *PostgresMailboxRepository) MarkUsed(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE mailboxes SET used = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("mailbox not found")
	}
	return nil
}

func (r *PostgresMailboxRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM mailboxes WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresMailboxRepository) scanOne(row rowScanner) (*model.Mailbox, error) {
	mailbox, err := scanMailbox(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("mailbox not found")
		}
		return nil, err
	}
	return mailbox, nil
}

func scanMailbox(row rowScanner) (*model.Mailbox, error) {
	mailbox := &model.Mailbox{}
	var code sql.NullString
	err := row.Scan(
		&mailbox.ID, &mailbox.Email, &mailbox.Password, &code,
		&mailbox.Status, &mailbox.Used, &mailbox.Created, &mailbox.LastChecked)
	if err != nil {
		return nil, err
	}
	mailbox.VerificationCode = code.String
	return mailbox, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// InitializeDatabase creates the necessary tables
func InitializeDatabase(db *sql.DB) error {
	table := `CREATE TABLE IF NOT EXISTS mailboxes (
		id VARCHAR(255) PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		verification_code VARCHAR(10),
		status VARCHAR(50) DEFAULT 'waiting',
		used BOOLEAN DEFAULT FALSE,
		created TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_checked TIMESTAMP
	)`

	if _, err := db.Exec(table); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/notesai/notesai-cli/internal/client/migrations"
	"github.com/notesai/notesai-cli/internal/client/models"
	"github.com/notesai/notesai-cli/internal/dbx"
)

// Open opens (creating if needed) the draft database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open draft db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// SQLiteRepository implements Repository over the draft database. Single
// statements run on the connection directly; Discard opens a transaction.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, d *models.Draft) error {
	query := `INSERT INTO drafts (id, title, text, created_at, uploaded)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title,
				text = excluded.text,
				uploaded = excluded.uploaded
	`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Title, d.Text, d.CreatedAt, d.Uploaded)
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListPending(ctx context.Context) ([]models.Draft, error) {
	query := `SELECT id, title, text, created_at FROM drafts WHERE uploaded=0 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	var result []models.Draft
	for rows.Next() {
		var item models.Draft
		if err := rows.Scan(&item.ID, &item.Title, &item.Text, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MarkUploaded(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE drafts SET uploaded=1 WHERE id=? AND uploaded=0`, id)
	if err != nil {
		return fmt.Errorf("failed to mark draft uploaded: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

// Discard removes a pending draft. The uploaded check and the delete run in
// one transaction so a MarkUploaded racing in between cannot drop an upload
// record.
func (r *SQLiteRepository) Discard(ctx context.Context, id string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var uploaded bool
		err := tx.QueryRowContext(ctx, `SELECT uploaded FROM drafts WHERE id=?`, id).Scan(&uploaded)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("draft %s not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}
		if uploaded {
			return fmt.Errorf("draft %s is already uploaded", id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM drafts WHERE id=?`, id); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}
		return nil
	})
}

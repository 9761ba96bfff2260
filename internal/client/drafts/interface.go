// Package drafts keeps locally cached notes so text entered by the user
// survives a failed or interrupted upload. Storage is a small SQLite
// database on the client machine.
package drafts

import (
	"context"

	"github.com/notesai/notesai-cli/internal/client/models"
)

// Repository describes the draft cache operations.
type Repository interface {
	// Save inserts a new draft or updates an existing one by ID.
	Save(ctx context.Context, d *models.Draft) error

	// ListPending returns drafts not yet uploaded, oldest first.
	ListPending(ctx context.Context) ([]models.Draft, error)

	// MarkUploaded flags a draft as successfully persisted server-side.
	MarkUploaded(ctx context.Context, id string) error

	// Discard removes a draft that has not reached the cloud. Unknown and
	// already-uploaded drafts are an error.
	Discard(ctx context.Context, id string) error
}

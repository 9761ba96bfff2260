package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/notesai/notesai-cli/internal/client/api"
	"github.com/notesai/notesai-cli/internal/client/drafts"
	"github.com/notesai/notesai-cli/internal/client/models"
	"github.com/notesai/notesai-cli/internal/logging"
)

// ErrEmptyNote is the local precondition of a save: at least one of title
// and text must be non-empty.
var ErrEmptyNote = errors.New("enter a title or notes")

// NotesService persists notes and requests study guides. Every note is
// cached as a local draft before upload so text survives a failed save.
type NotesService interface {
	Save(ctx context.Context, title, text string) error
	GenerateStudyGuide(ctx context.Context, text string) (string, error)
	PendingDrafts(ctx context.Context) ([]models.Draft, error)
	DiscardDraft(ctx context.Context, id string) error
}

type notesService struct {
	api    api.API
	drafts drafts.Repository
	log    logging.Logger
}

func NewNotesService(client api.API, repo drafts.Repository, log logging.Logger) NotesService {
	return &notesService{api: client, drafts: repo, log: log}
}

// Save records the note as a local draft, uploads it, and marks the draft
// uploaded on success. On upload failure the draft stays pending and the
// error is returned for the surface to show. A draft-cache failure is logged
// but never blocks the upload.
func (s *notesService) Save(ctx context.Context, title, text string) error {
	if title == "" && text == "" {
		return ErrEmptyNote
	}

	draft := &models.Draft{
		ID:        uuid.NewString(),
		Title:     title,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	cached := true
	if err := s.drafts.Save(ctx, draft); err != nil {
		cached = false
		s.log.Warn(ctx, "draft cache write failed", "err", err)
	}

	if err := s.api.SaveNote(ctx, title, text); err != nil {
		s.log.Error(ctx, "save note failed", "title", title, "err", err)
		return err
	}

	if cached {
		if err := s.drafts.MarkUploaded(ctx, draft.ID); err != nil {
			s.log.Warn(ctx, "mark draft uploaded failed", "id", draft.ID, "err", err)
		}
	}

	s.log.Info(ctx, "note saved", "title", title)
	return nil
}

// GenerateStudyGuide submits the note text and returns the generated guide
// payload as-is.
func (s *notesService) GenerateStudyGuide(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyNote
	}

	guide, err := s.api.GenerateStudyGuide(ctx, text)
	if err != nil {
		s.log.Error(ctx, "study guide generation failed", "err", err)
		return "", err
	}
	return guide, nil
}

// PendingDrafts lists notes cached locally but not yet uploaded.
func (s *notesService) PendingDrafts(ctx context.Context) ([]models.Draft, error) {
	return s.drafts.ListPending(ctx)
}

// DiscardDraft drops a pending draft from the local cache. Uploaded drafts
// are upload records and stay.
func (s *notesService) DiscardDraft(ctx context.Context, id string) error {
	if err := s.drafts.Discard(ctx, id); err != nil {
		s.log.Warn(ctx, "discard draft failed", "id", id, "err", err)
		return err
	}
	s.log.Info(ctx, "draft discarded", "id", id)
	return nil
}

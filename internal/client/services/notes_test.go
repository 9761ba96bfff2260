package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesai/notesai-cli/internal/client/api"
)

func TestSaveNote_BothEmptyBlocked(t *testing.T) {
	f := &fakeAPI{}
	repo := &fakeDrafts{}
	s := NewNotesService(f, repo, testLogger())

	err := s.Save(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrEmptyNote)
	assert.Zero(t, f.saveCalls)
	assert.Empty(t, repo.saved)
}

func TestSaveNote_TitleOnlyIsEnough(t *testing.T) {
	f := &fakeAPI{}
	s := NewNotesService(f, &fakeDrafts{}, testLogger())

	require.NoError(t, s.Save(context.Background(), "biology", ""))
	assert.Equal(t, "biology", f.saveTitle)
	assert.Empty(t, f.saveNotes)
}

func TestSaveNote_SuccessMarksDraftUploaded(t *testing.T) {
	f := &fakeAPI{}
	repo := &fakeDrafts{}
	s := NewNotesService(f, repo, testLogger())

	require.NoError(t, s.Save(context.Background(), "biology", "mitochondria"))

	require.Len(t, repo.saved, 1)
	assert.Equal(t, []string{repo.saved[0].ID}, repo.uploaded)

	pending, err := s.PendingDrafts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSaveNote_UploadFailureKeepsDraftPending(t *testing.T) {
	f := &fakeAPI{saveErr: &api.RejectedError{StatusCode: 500, Status: "500 Internal Server Error"}}
	repo := &fakeDrafts{}
	s := NewNotesService(f, repo, testLogger())

	err := s.Save(context.Background(), "biology", "mitochondria")
	require.Error(t, err)

	pending, listErr := s.PendingDrafts(context.Background())
	require.NoError(t, listErr)
	require.Len(t, pending, 1)
	assert.Equal(t, "mitochondria", pending[0].Text)
}

func TestSaveNote_DraftCacheFailureDoesNotBlockUpload(t *testing.T) {
	f := &fakeAPI{}
	repo := &fakeDrafts{saveErr: errors.New("disk full")}
	s := NewNotesService(f, repo, testLogger())

	require.NoError(t, s.Save(context.Background(), "biology", "mitochondria"))
	assert.Equal(t, 1, f.saveCalls)
	assert.Empty(t, repo.uploaded, "no draft was cached, so none is marked uploaded")
}

func TestGenerateStudyGuide(t *testing.T) {
	f := &fakeAPI{guide: `{"guide":"review mitochondria"}`}
	s := NewNotesService(f, &fakeDrafts{}, testLogger())

	guide, err := s.GenerateStudyGuide(context.Background(), "mitochondria is the powerhouse")

	require.NoError(t, err)
	assert.Equal(t, `{"guide":"review mitochondria"}`, guide)
	assert.Equal(t, "mitochondria is the powerhouse", f.guideNotes)
}

func TestGenerateStudyGuide_EmptyTextBlocked(t *testing.T) {
	f := &fakeAPI{}
	s := NewNotesService(f, &fakeDrafts{}, testLogger())

	_, err := s.GenerateStudyGuide(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyNote)
	assert.Zero(t, f.guideCalls)
}

func TestGenerateStudyGuide_CancellationSurfacesAsError(t *testing.T) {
	f := &fakeAPI{guideErr: context.Canceled}
	s := NewNotesService(f, &fakeDrafts{}, testLogger())

	_, err := s.GenerateStudyGuide(context.Background(), "notes")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscardDraft_RemovesPendingDraft(t *testing.T) {
	drafts := &fakeDrafts{}
	s := NewNotesService(&fakeAPI{saveErr: errors.New("offline")}, drafts, testLogger())

	_ = s.Save(context.Background(), "biology", "mitochondria")
	pending, err := s.PendingDrafts(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, s.DiscardDraft(context.Background(), pending[0].ID))

	pending, err = s.PendingDrafts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDiscardDraft_FailureSurfaces(t *testing.T) {
	s := NewNotesService(&fakeAPI{}, &fakeDrafts{}, testLogger())

	err := s.DiscardDraft(context.Background(), "no-such-id")

	assert.Error(t, err)
}

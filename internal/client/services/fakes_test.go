package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notesai/notesai-cli/internal/client/models"
	"github.com/notesai/notesai-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// fakeAPI records every gateway call so tests can assert which requests were
// (and were not) issued.
type fakeAPI struct {
	loginCalls int
	loginUser  string
	loginPass  string
	loginErr   error

	createCalls int
	createEmail string
	createUser  string
	createPass  string
	createErr   error

	resetCalls int
	resetEmail string
	resetErr   error

	detailsCalls int
	details      models.UserDetails
	detailsErr   error

	historyCalls int
	history      []models.SubscriptionRecord
	historyErr   error

	changeCalls int
	changeOld   string
	changeNew   string
	changeErr   error

	deleteCalls int
	deletePass  string
	deleteErr   error

	saveCalls int
	saveTitle string
	saveNotes string
	saveErr   error

	guideCalls int
	guideNotes string
	guide      string
	guideErr   error

	checkoutCalls int
	checkoutKey   string
	checkoutURL   string
	checkoutErr   error

	portalCalls int
	portalURL   string
	portalErr   error
}

func (f *fakeAPI) Login(_ context.Context, username, password string) error {
	f.loginCalls++
	f.loginUser, f.loginPass = username, password
	return f.loginErr
}

func (f *fakeAPI) CreateAccount(_ context.Context, email, username, password string) error {
	f.createCalls++
	f.createEmail, f.createUser, f.createPass = email, username, password
	return f.createErr
}

func (f *fakeAPI) RequestPasswordReset(_ context.Context, email string) error {
	f.resetCalls++
	f.resetEmail = email
	return f.resetErr
}

func (f *fakeAPI) UserDetails(context.Context) (models.UserDetails, error) {
	f.detailsCalls++
	return f.details, f.detailsErr
}

func (f *fakeAPI) PurchaseHistory(context.Context) ([]models.SubscriptionRecord, error) {
	f.historyCalls++
	return f.history, f.historyErr
}

func (f *fakeAPI) ChangePassword(_ context.Context, oldPassword, newPassword string) error {
	f.changeCalls++
	f.changeOld, f.changeNew = oldPassword, newPassword
	return f.changeErr
}

func (f *fakeAPI) DeleteAccount(_ context.Context, password string) error {
	f.deleteCalls++
	f.deletePass = password
	return f.deleteErr
}

func (f *fakeAPI) SaveNote(_ context.Context, title, notes string) error {
	f.saveCalls++
	f.saveTitle, f.saveNotes = title, notes
	return f.saveErr
}

func (f *fakeAPI) GenerateStudyGuide(_ context.Context, notes string) (string, error) {
	f.guideCalls++
	f.guideNotes = notes
	return f.guide, f.guideErr
}

func (f *fakeAPI) CreateCheckoutSession(_ context.Context, lookupKey string) (string, error) {
	f.checkoutCalls++
	f.checkoutKey = lookupKey
	return f.checkoutURL, f.checkoutErr
}

func (f *fakeAPI) CreatePortalSession(context.Context) (string, error) {
	f.portalCalls++
	return f.portalURL, f.portalErr
}

// fakeDrafts is an in-memory stand-in for the draft repository.
type fakeDrafts struct {
	saved    []models.Draft
	saveErr  error
	uploaded []string
	markErr  error
	listErr  error
}

func (f *fakeDrafts) Save(_ context.Context, d *models.Draft) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *d)
	return nil
}

func (f *fakeDrafts) ListPending(context.Context) ([]models.Draft, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Draft
	for _, d := range f.saved {
		if !f.isUploaded(d.ID) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDrafts) MarkUploaded(_ context.Context, id string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.uploaded = append(f.uploaded, id)
	return nil
}

func (f *fakeDrafts) Discard(_ context.Context, id string) error {
	for i, d := range f.saved {
		if d.ID == id {
			if f.isUploaded(id) {
				return errors.New("draft is already uploaded")
			}
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return errors.New("draft not found")
}

func (f *fakeDrafts) isUploaded(id string) bool {
	for _, u := range f.uploaded {
		if u == id {
			return true
		}
	}
	return false
}

// Package state implements the typed page-dependency contract: a surface
// that needs the user's profile and notes history receives either a hand-off
// snapshot from the surface that navigated to it, or fetches one itself.
// Absence of a hand-off is never treated as "the user has no data".
package state

import (
	"context"

	"github.com/notesai/notesai-cli/internal/client/models"
	"github.com/notesai/notesai-cli/internal/logging"
)

// Source is the fetch side of the contract, satisfied by the api client.
type Source interface {
	UserDetails(ctx context.Context) (models.UserDetails, error)
}

// Snapshot is the profile and notes history one surface hands to the next.
// Hand-offs are one-time copies: mutating the destination's snapshot must
// never be observable at the origin.
type Snapshot struct {
	Profile models.UserProfile
	Notes   []models.NoteRef
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Profile: s.Profile}
	if s.Notes != nil {
		out.Notes = make([]models.NoteRef, len(s.Notes))
		copy(out.Notes, s.Notes)
	}
	return out
}

// Resolve produces the snapshot a surface depends on. A present hand-off is
// reused (as a copy); otherwise the snapshot is fetched fresh. A failed fetch
// is logged and degraded to the empty-but-valid zero snapshot so the surface
// can still render.
func Resolve(ctx context.Context, log logging.Logger, src Source, handoff *Snapshot) Snapshot {
	if handoff != nil {
		return handoff.Clone()
	}

	details, err := src.UserDetails(ctx)
	if err != nil {
		log.Warn(ctx, "user details fetch failed, rendering empty state", "err", err)
		return Snapshot{}
	}

	return Snapshot{
		Profile: models.UserProfile{Username: details.Username, Email: details.Email},
		Notes:   details.Notes,
	}
}

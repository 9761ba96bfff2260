package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// SaveNote prompts for a title and body and uploads the note. The note is
// cached locally before the upload attempt, so a failed upload leaves a
// pending draft behind. A successfully saved note invalidates the carried
// snapshot; the next account view fetches a fresh one.
func (a *App) SaveNote(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Enter note text", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.notes.Save(ctx, title, text); err != nil {
		printErr(err)
		return err
	}

	a.carried = nil
	printlnFn("Note saved")
	return nil
}

// Guide prompts for raw notes and prints the generated study guide.
func (a *App) Guide(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter notes to summarize", os.Stdout)
	if err != nil {
		return err
	}

	guide, err := a.notes.GenerateStudyGuide(ctx, text)
	if err != nil {
		printErr(err)
		return err
	}

	printlnFn(guide)
	return nil
}

// Drafts lists locally cached notes that have not reached the cloud yet.
func (a *App) Drafts(ctx context.Context) error {
	pending, err := a.notes.PendingDrafts(ctx)
	if err != nil {
		printErr(err)
		return err
	}

	if len(pending) == 0 {
		printlnFn("No pending drafts")
		return nil
	}
	for _, d := range pending {
		printlnFn(fmt.Sprintf("  %s  %q (%s)", d.ID, d.Title, d.CreatedAt.Format(time.RFC3339)))
	}
	return nil
}

// DiscardDraft prompts for a draft id and drops it from the local cache.
// Only pending drafts can be discarded; ids are shown by 'drafts'.
func (a *App) DiscardDraft(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter draft id to discard", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.notes.DiscardDraft(ctx, id); err != nil {
		printErr(err)
		return err
	}

	printlnFn("Draft discarded")
	return nil
}

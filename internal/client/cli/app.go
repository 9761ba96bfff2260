package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/notesai/notesai-cli/internal/client/api"
	"github.com/notesai/notesai-cli/internal/client/config"
	"github.com/notesai/notesai-cli/internal/client/drafts"
	"github.com/notesai/notesai-cli/internal/client/services"
	"github.com/notesai/notesai-cli/internal/client/state"
	"github.com/notesai/notesai-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// gateway is the slice of the api client the shell needs directly: fetching
// the state snapshot and dropping the session cookie on logout.
type gateway interface {
	state.Source
	ResetSession() error
}

type App struct {
	config   *config.Config
	log      logging.Logger
	gateway  gateway
	auth     services.AuthService
	account  services.AccountService
	notes    services.NotesService
	billing  services.BillingService
	carried  *state.Snapshot
	userName string
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := drafts.Open(ctx, c.DraftsDBPath)
	if err != nil {
		log.Error(ctx, "error initializing draft cache", "err", err)
		return nil, err
	}
	repo := drafts.NewSQLiteRepository(db)

	apiClient, err := api.New(c.APIServerAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		log:     log,
		gateway: apiClient,
		auth:    services.NewAuthService(apiClient, log),
		account: services.NewAccountService(apiClient, log),
		notes:   services.NewNotesService(apiClient, repo, log),
		billing: services.NewBillingService(apiClient, log),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Notes-AI CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// resetLogin drops the session cookie and every piece of carried state.
// Used on logout and after operations that invalidate the session
// server-side (password change, account deletion).
func (a *App) resetLogin() error {
	err := a.gateway.ResetSession()
	a.userName = ""
	a.carried = nil
	return err
}

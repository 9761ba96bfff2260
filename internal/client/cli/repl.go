package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Reset(ctx context.Context) error
	SaveNote(ctx context.Context) error
	Guide(ctx context.Context) error
	Drafts(ctx context.Context) error
	DiscardDraft(ctx context.Context) error
	Account(ctx context.Context) error
	History(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Plans(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Portal(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Notes-AI CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - reset          — request a password reset email
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - note           — save a note to the cloud
//	  - guide          — generate a study guide from raw notes
//	  - drafts         — list locally cached drafts not yet uploaded
//	  - discard        — drop a pending draft from the local cache
//	  - account        — show profile and saved notes
//	  - history        — show purchase history
//	  - passwd         — change the account password
//	  - delete         — delete the account
//	  - plans          — show subscription plans
//	  - subscribe      — start checkout for a plan
//	  - portal         — open the billing portal
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Commands gated on login are rejected locally before any handler runs.
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("notes-ai %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: note, guide, drafts, discard, account, history, passwd, delete, plans, subscribe, portal, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, reset, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "note":
			if !requireLogin(a) {
				continue
			}
			_ = a.SaveNote(ctx)

		case "guide":
			if !requireLogin(a) {
				continue
			}
			_ = a.Guide(ctx)

		case "drafts":
			if !requireLogin(a) {
				continue
			}
			_ = a.Drafts(ctx)

		case "discard":
			if !requireLogin(a) {
				continue
			}
			_ = a.DiscardDraft(ctx)

		case "account":
			if !requireLogin(a) {
				continue
			}
			_ = a.Account(ctx)

		case "history":
			if !requireLogin(a) {
				continue
			}
			_ = a.History(ctx)

		case "passwd":
			if !requireLogin(a) {
				continue
			}
			_ = a.ChangePassword(ctx)

		case "delete":
			if !requireLogin(a) {
				continue
			}
			_ = a.DeleteAccount(ctx)

		case "plans":
			_ = a.Plans(ctx)

		case "subscribe":
			if !requireLogin(a) {
				continue
			}
			_ = a.Subscribe(ctx)

		case "portal":
			if !requireLogin(a) {
				continue
			}
			_ = a.Portal(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please log in first")
	return false
}

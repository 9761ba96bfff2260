// Package cli provides the interactive Notes-AI command-line client.
//
// It wires configuration, the session gateway, the local draft cache, and an
// interactive REPL. Typical flow: log in (the backend sets a session cookie),
// then save notes, generate study guides, and manage the account and
// subscription.
//
// Key features:
//   - Login / Signup / password reset
//   - Save notes to the cloud, with a local draft cache
//   - Generate study guides from raw notes
//   - Account overview, purchase history, password change, account deletion
//   - Subscription checkout and billing portal hand-off (opens the browser)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

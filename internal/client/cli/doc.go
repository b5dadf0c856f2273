// Package cli provides the interactive InfoWise command-line client.
//
// It wires configuration, local storage, both API clients, the session
// store and the feed assembler behind a small REPL. On start the previous
// session is restored from disk; every sign-in or sign-out reloads the feed
// in the background, and a watcher probes the news backend to show whether
// the client is online.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli

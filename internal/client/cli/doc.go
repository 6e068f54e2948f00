// Package cli provides the interactive netops command-line client.
//
// It is the presentation layer around the state container: each REPL command
// becomes one event (field change or button click), and a render goroutine
// observes the container and prints the status line and the profile text as
// they change. Network work happens in the container, so commands return
// immediately and results show up asynchronously.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and render for details.
package cli

// Package cli is the command-line front end: it validates flags and turns
// them into an app.Config, reporting usage problems as an ExitError with
// exit code 2.
package cli

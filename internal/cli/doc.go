// Package cli turns guessgame's command line into an app.Config.
//
// The game takes no positional arguments; the only flags are ambient ones
// for the configuration path and logging. Errors carry the process exit
// status in an ExitError: 1 when a session fails (closed or broken input,
// no entropy) and 2 for usage or configuration mistakes. A won game and
// -h exit with 0.
package cli

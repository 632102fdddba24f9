// Package app wires a game session together. It builds the session's
// logger, loads configuration, draws the secret, and runs the game loop,
// decoupled from the CLI entrypoint so tests can drive it with in-memory
// streams.
package app

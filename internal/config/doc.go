// Package config defines the format-agnostic configuration model for a game
// session, along with the Loader interface implemented by concrete formats.
//
// The Model carries the operator-facing message templates and the input
// policy. Defaults are built in, so a session runs without any configuration
// file; concrete loaders such as the HCL one in hcl_adapter start from
// Default and override what the files set.
package config

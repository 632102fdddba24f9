// Package hcl_adapter provides the HCL implementation of config.Loader.
// It parses configuration files, decodes the `messages` and `input` blocks,
// and merges them over the built-in defaults.
package hcl_adapter

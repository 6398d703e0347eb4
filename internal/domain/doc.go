// Package domain contains the core model for romconv.
//
// The domain does not touch the filesystem, YAML, or the terminal: it knows
// how a single sample is encoded and what a conversion job looks like.
// Infra adapters do the reading and writing around it.
package domain

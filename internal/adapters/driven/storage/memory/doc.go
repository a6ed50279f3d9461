// Package memory provides in-memory implementations of driven ports for
// tests and for one-shot commands that must not touch the user's config.
package memory

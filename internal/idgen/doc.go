// Package idgen wraps the UUID generator so that temporary file names can be
// stubbed in tests. Callers treat identifiers as opaque strings.
package idgen

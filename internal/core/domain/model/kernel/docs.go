// Package kernel contains shared value objects used across all domain models:
// the UUID identity type and small helpers that keep aggregates from depending
// on infrastructure types directly.
//
// Everything in this package is immutable after construction and safe for
// concurrent use.
package kernel

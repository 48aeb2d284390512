// Package services contains stateless domain services that coordinate rules
// across aggregates. AccessPolicy is the authorization gate: every
// {profile, action, resource} decision in the system goes through it, so the
// role rules live in exactly one place.
package services

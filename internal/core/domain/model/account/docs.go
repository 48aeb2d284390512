// Package account contains the Profile aggregate: the domain-level user
// record, distinct from the raw identity held by the external identity
// provider. A profile carries the role that drives every authorization
// decision and, for restaurant staff, the restaurant affiliation.
//
// Exactly one profile exists per email; emails are compared and stored
// case-insensitively.
package account

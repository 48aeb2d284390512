package order

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a strictly
// forward-only state machine driven by an explicit transition table:
//
//	Sent ──> Received ──> Shipping ──> Delivered
//
// There are no skips and no backward moves. Advancing to the current status is
// an idempotent no-op rather than an error, so a retried request cannot fail
// or fire a duplicate notification. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Sent is the initial status: the order has been placed and forwarded
	// to the restaurant.
	Sent

	// Received means the restaurant has acknowledged the order and is
	// preparing it.
	Received

	// Shipping means the order has left the restaurant and is on its way.
	Shipping

	// Delivered means the order reached the customer. Terminal.
	Delivered
)

// getStatusStrings maps every Status to its wire representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Sent:      "SENT",
		Received:  "RECEIVED",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
	}
}

// getValidStatusStrings maps only valid Status values, for validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Sent:      "SENT",
		Received:  "RECEIVED",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
	}
}

// getTransitionTable maps each status to its single legal successor.
// Delivered has no entry: it is terminal.
func getTransitionTable() map[Status]Status {
	return map[Status]Status{
		Sent:     Received,
		Received: Shipping,
		Shipping: Delivered,
	}
}

// StatusFromString parses a wire value ("SENT", "RECEIVED", "SHIPPING",
// "DELIVERED") into a Status. Any other input is a validation error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether the Status is one of the four valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further status transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo reports whether target is a legal move from s without
// performing it. The current status is always allowed (idempotent no-op).
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if target == s {
		return nil
	}
	if next, ok := getTransitionTable()[s]; ok && next == target {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("cannot transition from %s to %s", s, target))
}

// TransitionTo applies the transition table and returns the resulting status
// together with whether anything actually changed. target == s returns
// (s, false, nil); an illegal move returns an error and leaves s meaningless
// to the caller.
func (s Status) TransitionTo(target Status) (Status, bool, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, false, err
	}
	if target == s {
		return s, false, nil
	}
	return target, true, nil
}

// Next returns the single legal successor of s. Used by the fulfillment
// simulation to advance batches one step at a time.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	next, ok := getTransitionTable()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is terminal", s))
	}
	return next, nil
}

package order

import (
	"fmt"

	"kakanin/internal/pkg/errs"
)

// Status represents the fulfilment state of an order.
// It implements a small state machine so that an order cannot be reopened once
// it has been handed over or removed.
//
// State transitions:
//
//	Pending ──> In Progress ──> Completed
//	   │             │
//	   ├─────────────┼──────────> Completed
//	   │             │
//	   └─────────────┴──────────> Removed
//
// Completed and Removed are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of every newly recorded order.
	Pending

	// InProgress indicates the delicacies are being prepared.
	InProgress

	// Completed indicates the buyer collected the order.
	Completed

	// Removed indicates the order was cancelled and is kept only for history.
	Removed
)

// statuses maps statuses to their codes and display names. "Canceled" is accepted
// as an alias of Removed when parsing.
var statuses = []enumEntry[Status]{
	{Pending, "PENDING", "Pending"},
	{InProgress, "IN_PROGRESS", "In Progress"},
	{Completed, "COMPLETED", "Completed"},
	{Removed, "REMOVED", "Removed"},
	{Removed, "CANCELED", "Canceled"},
}

// ParseStatus accepts a code ("IN_PROGRESS") or a display name ("In Progress").
func ParseStatus(raw string) (Status, error) {
	return parseEnum("status", raw, statuses)
}

// Statuses lists Pending, InProgress, Completed and Removed in lifecycle order.
func Statuses() []Status {
	return enumValues(statuses)
}

// Validate checks if the Status value is one of Pending, InProgress, Completed
// or Removed. It is used on values coming back from storage.
func (s Status) Validate() error {
	if _, ok := lookupEntry(s, statuses); !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Code returns the storage and API form of the status.
func (s Status) Code() string {
	if e, ok := lookupEntry(s, statuses); ok {
		return e.code
	}
	return "UNKNOWN"
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if e, ok := lookupEntry(s, statuses); ok {
		return e.name
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Removed
}

// IsOpen reports whether the order still awaits pickup.
func (s Status) IsOpen() bool {
	return s == Pending || s == InProgress
}

// Start transitions Pending to InProgress.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions Pending or InProgress to Completed. An order may be
// handed over without ever being marked as in progress.
func (s Status) Complete() (Status, error) {
	if !s.IsOpen() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Remove transitions Pending or InProgress to Removed.
func (s Status) Remove() (Status, error) {
	if !s.IsOpen() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to remove", s.String()),
		)
	}

	return Removed, nil
}

// TransitionTo dispatches to Start, Complete or Remove according to target.
//
// Example:
//
//	target, err := order.ParseStatus("In Progress")
//	if err != nil {
//	    return err
//	}
//	next, err := current.TransitionTo(target)
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case InProgress:
		return s.Start()
	case Completed:
		return s.Complete()
	case Removed:
		return s.Remove()
	case Unknown, Pending:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move an order back to %s", target.String()),
		)
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%d is not a valid status", target),
	)
}

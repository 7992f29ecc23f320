// Package kernel provides the value objects shared by every aggregate of the
// order tracking domain.
//
// The package includes:
//   - UUID: identifier of orders, buyers and the admin user
//   - PickupDate: the calendar date a buyer collects an order, and its numeric sort key
//
// Both are immutable and reject their zero value through Validate, so that a value
// read from a request or a database row is always checked before it reaches an
// aggregate.
package kernel

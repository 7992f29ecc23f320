// Package order provides the Order aggregate of the kakanin order tracking
// system together with the closed enumerations it is described by.
//
// The package includes:
//   - Order: the aggregate root holding what a buyer asked for and when it is picked up
//   - Status: the fulfilment state machine (Pending, In Progress, Completed, Removed)
//   - Delicacy and ContainerSize: the product menu and its packaging
//
// Enumerations are only built from text through ParseDelicacy, ParseContainerSize
// and ParseStatus, which use explicit mapping tables and reject anything they do
// not know.
//
// Key business rules:
//   - Quantity is between 1 and 10 per order
//   - Every order starts Pending
//   - Completed and Removed orders cannot change status again
package order

// Package services provides domain services of the order tracking system that do
// not belong to a single aggregate.
//
// The package includes:
//   - SortByPickupDate: a stable radix sort of any record type by pickup date
//   - OrderHistorySorter: the same sort applied to Order aggregates
//
// Sorting is pure: no I/O, no shared state. Callers fetch records first and pass
// a materialised slice.
package services

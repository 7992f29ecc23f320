// Package errs provides the error types shared by the order tracking service.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule (bad enum text, bad contact number)
//   - ValueIsOutOfRangeError: a value is outside of its allowed range (quantity, dates)
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Every type follows the same pattern: a sentinel error, a struct carrying the
// details, constructors with and without a cause, Error() and Unwrap(). The
// HTTP layer maps the sentinels to status codes with errors.Is.
package errs

package services

import (
	"errors"
	"fmt"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/pkg/errs"
)

const (
	// PickupDateKeyWidth is the number of decimal digits of a pickup date key
	// (YYYYMMDD) and therefore the number of radix passes.
	PickupDateKeyWidth = 8

	radix = 10
	// 0001-01-01 and 9999-12-31
	minDateKey = 10101
	maxDateKey = 99991231
)

// ErrMalformedDateKey is returned when a record's pickup date cannot be encoded
// into a PickupDateKeyWidth-digit key, for instance a PickupDate zero value.
var ErrMalformedDateKey = errors.New("malformed pickup date key")

// SortByPickupDate returns records ordered by ascending pickup date, oldest first.
//
// It is a least-significant-digit radix sort over the key year*10000+month*100+day:
// one pass per decimal digit distributes records into ten buckets in input order
// and concatenates buckets 0 through 9. The sort is stable, so records sharing a
// pickup date keep their relative input order.
//
// The input slice is not modified; the result is a new slice referencing the
// same records. Every key is checked before any pass runs, so an invalid date
// yields an error wrapping ErrMalformedDateKey and no partial result.
//
// Example:
//
//	sorted, err := services.SortByPickupDate(rows, func(r Row) kernel.PickupDate {
//	    return r.PickupDate
//	})
func SortByPickupDate[T any](records []T, pickupDate func(T) kernel.PickupDate) ([]T, error) {
	sorted := make([]T, len(records))
	if len(records) == 0 {
		return sorted, nil
	}

	keys := make([]int, len(records))
	for i, r := range records {
		key, err := dateKey(pickupDate(r))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedDateKey, i, err)
		}
		keys[i] = key
	}

	if len(records) == 1 {
		sorted[0] = records[0]
		return sorted, nil
	}

	positions := make([]int, len(records))
	for i := range positions {
		positions[i] = i
	}
	scratch := make([]int, len(records))

	divisor := 1
	for range PickupDateKeyWidth {
		var next [radix]int
		for _, p := range positions {
			next[digit(keys[p], divisor)]++
		}
		offset := 0
		for d, n := range next {
			next[d] = offset
			offset += n
		}
		for _, p := range positions {
			d := digit(keys[p], divisor)
			scratch[next[d]] = p
			next[d]++
		}
		positions, scratch = scratch, positions
		divisor *= radix
	}

	for i, p := range positions {
		sorted[i] = records[p]
	}
	return sorted, nil
}

// digit extracts the decimal digit of key selected by divisor (1, 10, 100, ...).
// A key shorter than the current position yields 0.
func digit(key, divisor int) int {
	return (key / divisor) % radix
}

func dateKey(d kernel.PickupDate) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	key := d.Key()
	if key < minDateKey || key > maxDateKey {
		return 0, errs.NewValueIsOutOfRangeError("pickup date key", key, minDateKey, maxDateKey)
	}
	return key, nil
}

// OrderHistorySorter orders Order aggregates for the order history view.
type OrderHistorySorter struct{}

func NewOrderHistorySorter() OrderHistorySorter {
	return OrderHistorySorter{}
}

// Sort orders by pickup date, see SortByPickupDate. A nil or unconstructed
// order is reported as a malformed key.
func (OrderHistorySorter) Sort(orders []*order.Order) ([]*order.Order, error) {
	return SortByPickupDate(orders, func(o *order.Order) kernel.PickupDate {
		if o.Validate() != nil {
			return kernel.PickupDate{}
		}
		return o.PickupDate()
	})
}

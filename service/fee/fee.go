// Package fee holds the rental fee arithmetic. Everything here is pure:
// timestamps in, money out, no storage access.
package fee

import (
	"math"
	"time"
)

// spanDays is the span between two timestamps counted in started 24-hour
// units. Spans that end before they start count as zero days instead of
// going negative.
func spanDays(from, to time.Time) float64 {
	d := math.Ceil(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Fine is the accrued late fee: days late past end, times the per-day rate.
// Returning on or before the end time accrues nothing.
func Fine(end, returned time.Time, perDay float64) float64 {
	late := spanDays(end, returned)
	if late <= 0 {
		return 0
	}
	return late * perDay
}

// Payment is the total owed: rented days times the daily price, plus the
// accrued fine.
func Payment(start, returned time.Time, dailyPrice, totalFine float64) float64 {
	return spanDays(start, returned)*dailyPrice + totalFine
}

package domain

import "time"

// Observation is a single (date, value) measurement. Date is normalized
// to midnight UTC; any time component from the input is discarded.
type Observation struct {
	Date  time.Time
	Value float64
}

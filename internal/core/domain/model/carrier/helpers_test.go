package carrier_test

import "time"

func day(n int) time.Time {
	return time.Date(2025, 1, n, 12, 0, 0, 0, time.UTC)
}

package service

import (
	"fmt"
	"time"
)

// monthPeriod is the sequence period for month-scoped document numbers.
func monthPeriod(t time.Time) string { return t.Format("2006-01") }

// docNumber renders a PREFIX-YYYY-MM-NNNN document number.
func docNumber(prefix string, t time.Time, n int64) string {
	return fmt.Sprintf("%s-%04d-%02d-%04d", prefix, t.Year(), int(t.Month()), n)
}

// ppoNumber renders a PPO-YYYY-NNNN number, year-scoped.
func ppoNumber(t time.Time, n int64) string {
	return fmt.Sprintf("PPO-%04d-%04d", t.Year(), n)
}

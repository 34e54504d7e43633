package utils

import "time"

// Use when s is the correct RFC3339 time (e.g. in tests, error results in panic)
func ParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

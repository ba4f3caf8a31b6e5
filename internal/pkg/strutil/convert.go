package strutil

import "strconv"

// ConvertToInt converts s to int, returning 0 for invalid input
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToInt64 converts s to int64, returning 0 for invalid input
func ConvertToInt64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToBool converts s to bool, returning false for invalid input
func ConvertToBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

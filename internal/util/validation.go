package util

import "strings"

// NormalizeEnum lower-cases value and returns it if it is one of validValues,
// otherwise fallback.
func NormalizeEnum(value string, validValues []string, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if IsValidEnum(value, validValues) && value != "" {
		return value
	}
	return fallback
}

func IsValidEnum(value string, validValues []string) bool {
	if value == "" {
		return true
	}
	for _, v := range validValues {
		if value == v {
			return true
		}
	}
	return false
}

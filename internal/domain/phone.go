package domain

import "strings"

// NormalizePhone reduces a Turkish mobile number to its 10-digit local form
//
// "0532 123 45 67", "+90 532 123 45 67" and "5321234567" all become "5321234567".
// Numbers that match none of the known shapes are returned as bare digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "90"):
		return digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return digits[1:]
	default:
		return digits
	}
}

// IsCanonicalPhone reports whether a normalized phone has the canonical 10-digit form
func IsCanonicalPhone(normalized string) bool {
	if len(normalized) != CanonicalPhoneLength {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

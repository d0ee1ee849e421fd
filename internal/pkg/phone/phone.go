package phone

import "strings"

// Egyptian mobile numbers as the backend expects them: 11 digits, a leading
// "+" stripped rather than converted.
const DigitCount = 11

func Normalize(value string) string {
	value = strings.TrimPrefix(strings.TrimSpace(value), "+")
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func Clamp(value string) string {
	normalized := Normalize(value)
	if len(normalized) > DigitCount {
		return normalized[:DigitCount]
	}
	return normalized
}

func IsValid(value string) bool {
	return len(Normalize(value)) == DigitCount
}

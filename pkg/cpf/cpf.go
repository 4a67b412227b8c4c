// Package cpf validates and formats Brazilian CPF numbers
// (11-digit individual taxpayer identifiers with two check digits).
package cpf

import "strings"

// Valid reports whether raw is a well-formed CPF. Formatting characters
// are stripped before checking. A CPF is rejected when it is not exactly
// 11 digits, when all digits are identical, or when either check digit
// does not match the weighted-sum-mod-11 algorithm.
func Valid(raw string) bool {
	digits := Unformat(raw)

	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// first check digit: weights 10..2 over digits[0..8]
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if checkDigit(sum) != int(digits[9]-'0') {
		return false
	}

	// second check digit: weights 11..2 over digits[0..9]
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}

	return checkDigit(sum) == int(digits[10]-'0')
}

func checkDigit(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// Format returns raw in the canonical 000.000.000-00 form.
// Returns an empty string when the stripped input is not 11 digits.
func Format(raw string) string {
	digits := Unformat(raw)
	if len(digits) != 11 {
		return ""
	}

	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// Unformat strips every non-digit character from raw.
func Unformat(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

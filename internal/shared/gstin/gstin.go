// Package gstin validates Indian GST identification numbers.
//
// A GSTIN is 15 characters: a two-digit state code, the ten-character PAN of
// the registrant, an entity number, the literal 'Z', and a base-36 check
// digit computed over the first fourteen characters.
package gstin

import (
	"regexp"
	"strconv"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var pattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Valid reports whether s is a well-formed GSTIN with a correct check digit.
func Valid(s string) bool {
	if !pattern.MatchString(s) {
		return false
	}

	state, err := strconv.Atoi(s[:2])
	if err != nil || state < 1 || state > 38 {
		return false
	}

	return checkDigit(s[:14]) == s[14]
}

// checkDigit implements the GSTN variant of the Luhn mod-36 checksum: factors
// alternate 1 and 2, and each product contributes quotient plus remainder.
func checkDigit(s string) byte {
	sum := 0
	factor := 1
	for i := 0; i < len(s); i++ {
		v := charValue(s[i])
		product := v * factor
		sum += product/36 + product%36
		if factor == 1 {
			factor = 2
		} else {
			factor = 1
		}
	}
	return alphabet[(36-sum%36)%36]
}

func charValue(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return int(c-'A') + 10
}

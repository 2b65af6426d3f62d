package phonetype

import (
	"github.com/gophone/phonetype/countrycode"
)

// ParsedNumber is the structured form of an E.164 phone number. It is
// immutable once constructed. Country points into the shared calling-
// code table, which outlives every ParsedNumber; the entry is never
// copied.
type ParsedNumber struct {
	// CountryCode is the matched calling-code prefix, or "" when no
	// assigned code matched.
	CountryCode string

	// NationalNumber is the digits remaining after the calling code.
	// It may be empty when the input carried nothing beyond the code,
	// and holds the entire digit body when no code matched.
	NationalNumber string

	// Country is the table entry for CountryCode, nil when unresolved.
	Country *countrycode.Country
}

// ParseE164 parses a strictly formatted E.164 string: a single leading
// '+' followed by one or more ASCII digits. No spaces, dashes, or
// parentheses are permitted.
//
// An unassigned calling-code prefix is not a failure. The assigned-code
// list can lag newly issued codes, so parsing succeeds with an empty
// CountryCode and the full digit body as the NationalNumber. The only
// failures are the leading '+' missing, a non-digit in the body, and a
// bare "+" with no digits.
func ParseE164(input string) (*ParsedNumber, error) {
	if len(input) == 0 || input[0] != '+' {
		return nil, &ParseError{Kind: KindMissingPlusPrefix, Input: input}
	}
	digits := input[1:]
	if len(digits) == 0 {
		return nil, &ParseError{Kind: KindEmptyNumber, Input: input}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, &ParseError{Kind: KindInvalidCharacter, Input: input, Position: i + 1}
		}
	}

	pn := &ParsedNumber{NationalNumber: digits}
	if code, country, ok := countrycode.LookupLongestPrefix(digits); ok {
		pn.CountryCode = code
		pn.NationalNumber = digits[len(code):]
		pn.Country = country
	}
	return pn, nil
}

// isStrictE164 reports whether s has the strict E.164 shape ('+' then
// one or more ASCII digits). Used to pick the construction path when
// deserializing.
func isStrictE164(s string) bool {
	if len(s) < 2 || s[0] != '+' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

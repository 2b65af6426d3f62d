package phonetype

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultChecker returns the phonenumbers-backed loose-format checker
// for a fallback region. The verdict is a possibility check, not a
// full validity check: loose mode only asks whether the input is
// plausible as a phone string, grouping and separators included.
func defaultChecker(region string) Checker {
	region = strings.ToUpper(strings.TrimSpace(region))
	return func(input string) bool {
		num, err := phonenumbers.Parse(input, region)
		if err != nil {
			return false
		}
		return phonenumbers.IsPossibleNumber(num)
	}
}

package countrycode

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/buger/jsonparser"
)

// Embedded dataset of (name, dial_code, code) triples, one entry per
// assigned calling code. Shared codes are resolved in the data itself
// (the NANP code "1" belongs to Canada, "7" to Russia with Kazakhstan
// under "77").
//
//go:embed data/country_codes.json
var datasetJSON []byte

// maxCodeLen is the longest assigned calling code in digits.
const maxCodeLen = 4

// Country holds the metadata associated with a calling code.
type Country struct {
	// Name is the display name of the country or territory.
	Name string `json:"name"`

	// ISOCode is the two-letter uppercase ISO 3166-1 alpha-2 code.
	ISOCode string `json:"isoCode"`
}

// Table is an immutable calling-code lookup table. Construct it with
// NewTable, or use the package-level functions which operate on the
// table built from the embedded dataset. A Table is safe for concurrent
// use once constructed.
type Table struct {
	entries map[string]*Country
}

// NewTable builds a table from a JSON dataset of
// {"name", "dial_code", "code"} objects. The dial code may carry a
// leading "+" and internal spaces; both are stripped. NewTable returns
// an error if the dataset is malformed, if any code is not 1-4 ASCII
// digits, or if two entries carry the same code. Duplicates are never
// silently dropped: a duplicate means the dataset is corrupt.
func NewTable(data []byte) (*Table, error) {
	t := &Table{entries: make(map[string]*Country, 256)}

	var buildErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		if buildErr != nil {
			return
		}
		name, err := jsonparser.GetString(value, "name")
		if err != nil {
			buildErr = fmt.Errorf("countrycode: entry missing name: %w", err)
			return
		}
		dial, err := jsonparser.GetString(value, "dial_code")
		if err != nil {
			buildErr = fmt.Errorf("countrycode: entry %q missing dial_code: %w", name, err)
			return
		}
		iso, err := jsonparser.GetString(value, "code")
		if err != nil {
			buildErr = fmt.Errorf("countrycode: entry %q missing code: %w", name, err)
			return
		}

		code := normalizeDialCode(dial)
		if !validCode(code) {
			buildErr = fmt.Errorf("countrycode: entry %q has invalid dial code %q", name, dial)
			return
		}
		if prev, ok := t.entries[code]; ok {
			buildErr = fmt.Errorf("countrycode: duplicate calling code %q (%s vs %s)", code, prev.Name, name)
			return
		}
		t.entries[code] = &Country{Name: name, ISOCode: iso}
	})
	if err != nil {
		return nil, fmt.Errorf("countrycode: invalid dataset: %w", err)
	}
	if buildErr != nil {
		return nil, buildErr
	}
	if len(t.entries) == 0 {
		return nil, fmt.Errorf("countrycode: empty dataset")
	}
	return t, nil
}

// normalizeDialCode strips the leading "+" and any spaces from a
// dataset dial code.
func normalizeDialCode(dial string) string {
	dial = strings.TrimPrefix(dial, "+")
	return strings.ReplaceAll(dial, " ", "")
}

// validCode reports whether code is 1-4 ASCII decimal digits.
func validCode(code string) bool {
	if len(code) == 0 || len(code) > maxCodeLen {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// LookupLongestPrefix resolves the calling code at the start of digits.
// It probes prefixes of length 4, 3, 2, 1 in that order and returns the
// first match, so a number starting with an assigned long code ("1242")
// is never misclassified under a shorter code that happens to be its
// prefix ("1").
//
// digits must contain only ASCII decimal digits. The boolean result is
// false when no prefix of digits is an assigned code.
func (t *Table) LookupLongestPrefix(digits string) (string, *Country, bool) {
	for l := maxCodeLen; l >= 1; l-- {
		if l > len(digits) {
			continue
		}
		code := digits[:l]
		if c, ok := t.entries[code]; ok {
			return code, c, true
		}
	}
	return "", nil, false
}

// Find returns the entry for an exact calling code.
func (t *Table) Find(code string) (*Country, bool) {
	c, ok := t.entries[code]
	return c, ok
}

// Count returns the number of calling codes in the table.
func (t *Table) Count() int {
	return len(t.entries)
}

var (
	defaultTable *Table
	defaultErr   error
	defaultOnce  sync.Once
)

// Default returns the table built from the embedded dataset. The table
// is built on first use and shared thereafter. A corrupt embedded
// dataset is a programmer error, not a runtime condition, so Default
// panics rather than limping on with partial data.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = NewTable(datasetJSON)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultTable
}

// LookupLongestPrefix resolves digits against the default table.
func LookupLongestPrefix(digits string) (string, *Country, bool) {
	return Default().LookupLongestPrefix(digits)
}

// Find returns the default-table entry for an exact calling code.
func Find(code string) (*Country, bool) {
	return Default().Find(code)
}

// Count returns the number of calling codes in the default table.
func Count() int {
	return Default().Count()
}

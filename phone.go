package phonetype

import (
	"github.com/gophone/phonetype/countrycode"
)

// Phone is an immutable validated phone number.
//
// A Phone is built one of two ways: New accepts loosely formatted
// input and keeps it opaque, FromE164 parses strict international
// input into structured parts. Both modes store the caller's string
// byte-for-byte as the canonical form, so grouping and whitespace the
// caller used are never silently altered, and the two modes are
// indistinguishable to external observers when they denote the same
// string.
//
// The zero Phone is empty and not useful; always construct through
// New or FromE164.
type Phone struct {
	raw    string
	parsed *ParsedNumber
}

// New builds a Phone from loosely formatted input. Validity is
// delegated entirely to the configured format checker; on accept the
// original string is stored verbatim with no normalization. Rejected
// input yields a *ParseError of KindInvalidFormat.
func New(input string, opts ...Option) (Phone, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if !o.checker()(input) {
		return Phone{}, &ParseError{Kind: KindInvalidFormat, Input: input}
	}
	return Phone{raw: input}, nil
}

// FromE164 builds a Phone from a strict E.164 string. See ParseE164
// for the accepted shape and failure kinds.
func FromE164(input string) (Phone, error) {
	pn, err := ParseE164(input)
	if err != nil {
		return Phone{}, err
	}
	return Phone{raw: input, parsed: pn}, nil
}

// CountryCode returns the resolved calling code. The boolean is false
// for loosely built phones and for E.164 numbers whose prefix matched
// no assigned code.
func (p Phone) CountryCode() (string, bool) {
	if p.parsed == nil || p.parsed.CountryCode == "" {
		return "", false
	}
	return p.parsed.CountryCode, true
}

// Number returns the national number for an E.164-built Phone, or the
// full stored string for a loosely built one.
func (p Phone) Number() string {
	if p.parsed == nil {
		return p.raw
	}
	return p.parsed.NationalNumber
}

// CountryInfo returns the country metadata for the resolved calling
// code, or nil when none was resolved. The returned entry is shared
// with the calling-code table and must not be mutated.
func (p Phone) CountryInfo() *countrycode.Country {
	if p.parsed == nil {
		return nil
	}
	return p.parsed.Country
}

// String returns the canonical form: the originally stored string,
// byte-for-byte.
func (p Phone) String() string {
	return p.raw
}

// Equal reports whether two Phones denote the same canonical string.
// A loosely built Phone and an E.164-built Phone with the same stored
// string compare equal.
func (p Phone) Equal(other Phone) bool {
	return p.raw == other.raw
}

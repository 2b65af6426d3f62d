// Package phonetype provides a validated, immutable phone-number value
// type.
//
// A Phone is built in one of two modes. Loose mode accepts free-form
// input ("111-111-1111") and delegates the validity verdict to an
// external format checker; the string stays opaque. E.164 mode parses
// strict international input ("+12345551234") into a calling code,
// national number, and country metadata resolved against an embedded
// calling-code table. Both modes preserve the caller's string
// byte-for-byte as the canonical form.
//
// # Quick Start
//
//	import "github.com/gophone/phonetype"
//
//	p, err := phonetype.FromE164("+1234567890")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, _ := p.CountryCode()           // "1"
//	fmt.Println(p.Number())              // "234567890"
//	fmt.Println(p.CountryInfo().ISOCode) // "CA"
//	fmt.Println(p.NumberWithSeparator('-')) // "234-567-890"
//
//	loose, err := phonetype.New("111-111-1111")
//	fmt.Println(loose) // "111-111-1111", stored verbatim
//
// # Error Handling
//
// Malformed input is never fatal. Every constructor returns a
// *ParseError whose Kind distinguishes the four failure cases:
//
//	phonetype.KindInvalidFormat     // loose input rejected by the checker
//	phonetype.KindMissingPlusPrefix // E.164 input without a leading '+'
//	phonetype.KindInvalidCharacter  // non-digit in the E.164 body
//	phonetype.KindEmptyNumber       // bare "+"
//
// An E.164 number whose prefix matches no assigned calling code still
// parses successfully; it simply carries no country code or metadata.
// See ParseE164 for the rationale.
//
// # Serialization
//
// Phone implements json.Marshaler and json.Unmarshaler over the
// canonical string. Unmarshaling re-runs the construction path, so
// serialized data gets the same validation and the same error kinds as
// direct construction.
//
// # Concurrency
//
// Phone and ParsedNumber are immutable value types and the calling-code
// table is immutable after construction, so everything in this package
// is safe for concurrent use without locking.
package phonetype

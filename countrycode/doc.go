// Package countrycode provides the ITU-T calling-code lookup table.
//
// The table maps calling-code prefixes (1-4 ASCII digits) to country
// metadata and is built once from an embedded dataset, so lookups never
// touch the network or the filesystem. Codes may be proper prefixes of
// one another ("1" vs "1242"), so resolution always tries the longest
// candidate prefix first.
//
// Usage:
//
//	code, country, ok := countrycode.LookupLongestPrefix("12425551234")
//	if ok {
//	    fmt.Println(code, country.Name, country.ISOCode) // 1242 Bahamas BS
//	}
//
// The default table is safe for concurrent use: it is immutable after
// construction and shared by reference.
package countrycode

package countrycode

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	t.Run("builds from triples", func(t *testing.T) {
		data := []byte(`[
			{"name": "Canada", "dial_code": "+1", "code": "CA"},
			{"name": "Bahamas", "dial_code": "+1242", "code": "BS"},
			{"name": "Germany", "dial_code": "+49", "code": "DE"}
		]`)
		tbl, err := NewTable(data)
		if err != nil {
			t.Fatalf("NewTable() error = %v", err)
		}
		if got := tbl.Count(); got != 3 {
			t.Errorf("Count() = %d; want 3", got)
		}
		c, ok := tbl.Find("49")
		if !ok {
			t.Fatal("Find(49) not found")
		}
		if c.Name != "Germany" || c.ISOCode != "DE" {
			t.Errorf("Find(49) = %+v; want Germany/DE", c)
		}
	})

	t.Run("strips plus and spaces from dial codes", func(t *testing.T) {
		data := []byte(`[{"name": "Bahamas", "dial_code": "+1 242", "code": "BS"}]`)
		tbl, err := NewTable(data)
		if err != nil {
			t.Fatalf("NewTable() error = %v", err)
		}
		if _, ok := tbl.Find("1242"); !ok {
			t.Error("Find(1242) not found after normalization")
		}
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		data := []byte(`[
			{"name": "Canada", "dial_code": "+1", "code": "CA"},
			{"name": "United States", "dial_code": "+1", "code": "US"}
		]`)
		_, err := NewTable(data)
		if err == nil {
			t.Fatal("NewTable() accepted duplicate code 1")
		}
		if !strings.Contains(err.Error(), "duplicate") {
			t.Errorf("error = %v; want mention of duplicate", err)
		}
	})

	t.Run("rejects non-digit codes", func(t *testing.T) {
		data := []byte(`[{"name": "Nowhere", "dial_code": "+1a", "code": "XX"}]`)
		if _, err := NewTable(data); err == nil {
			t.Fatal("NewTable() accepted non-digit dial code")
		}
	})

	t.Run("rejects codes longer than four digits", func(t *testing.T) {
		data := []byte(`[{"name": "Nowhere", "dial_code": "+12345", "code": "XX"}]`)
		if _, err := NewTable(data); err == nil {
			t.Fatal("NewTable() accepted five-digit dial code")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		data := []byte(`[{"name": "Nowhere", "dial_code": "+99"}]`)
		if _, err := NewTable(data); err == nil {
			t.Fatal("NewTable() accepted entry without iso code")
		}
	})

	t.Run("rejects empty dataset", func(t *testing.T) {
		if _, err := NewTable([]byte(`[]`)); err == nil {
			t.Fatal("NewTable() accepted empty dataset")
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		if _, err := NewTable([]byte(`{"not": "an array"}`)); err == nil {
			t.Fatal("NewTable() accepted non-array dataset")
		}
	})
}

func TestLookupLongestPrefix(t *testing.T) {
	data := []byte(`[
		{"name": "Canada", "dial_code": "+1", "code": "CA"},
		{"name": "Bahamas", "dial_code": "+1242", "code": "BS"},
		{"name": "Russia", "dial_code": "+7", "code": "RU"},
		{"name": "Kazakhstan", "dial_code": "+77", "code": "KZ"}
	]`)
	tbl, err := NewTable(data)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	tests := []struct {
		name    string
		digits  string
		want    string
		wantISO string
		wantOK  bool
	}{
		{"longest wins over shorter prefix", "12425551234", "1242", "BS", true},
		{"falls back to one-digit code", "12345551234", "1", "CA", true},
		{"two-digit beats one-digit", "77012345678", "77", "KZ", true},
		{"one-digit when longer probe misses", "79261234567", "7", "RU", true},
		{"exact code with nothing after it", "1242", "1242", "BS", true},
		{"short input still resolves", "1", "1", "CA", true},
		{"unassigned prefix", "0000000", "", "", false},
		{"empty input", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, c, ok := tbl.LookupLongestPrefix(tt.digits)
			if ok != tt.wantOK {
				t.Fatalf("LookupLongestPrefix(%q) ok = %v; want %v", tt.digits, ok, tt.wantOK)
			}
			if code != tt.want {
				t.Errorf("code = %q; want %q", code, tt.want)
			}
			if tt.wantOK && c.ISOCode != tt.wantISO {
				t.Errorf("ISOCode = %q; want %q", c.ISOCode, tt.wantISO)
			}
		})
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	if got := tbl.Count(); got < 200 {
		t.Errorf("Count() = %d; want at least 200 assigned codes", got)
	}

	// Same pointer on every call: built once, shared thereafter.
	if Default() != tbl {
		t.Error("Default() returned a different table on second call")
	}

	tests := []struct {
		code    string
		wantISO string
	}{
		{"1", "CA"},
		{"1242", "BS"},
		{"44", "GB"},
		{"49", "DE"},
		{"81", "JP"},
		{"7", "RU"},
		{"998", "UZ"},
	}
	for _, tt := range tests {
		c, ok := tbl.Find(tt.code)
		if !ok {
			t.Errorf("Find(%q) not found", tt.code)
			continue
		}
		if c.ISOCode != tt.wantISO {
			t.Errorf("Find(%q).ISOCode = %q; want %q", tt.code, c.ISOCode, tt.wantISO)
		}
	}
}

func TestPackageLevelLookups(t *testing.T) {
	code, c, ok := LookupLongestPrefix("4915123456789")
	if !ok {
		t.Fatal("LookupLongestPrefix(4915123456789) not found")
	}
	if code != "49" || c.ISOCode != "DE" {
		t.Errorf("got %q/%q; want 49/DE", code, c.ISOCode)
	}

	if _, ok := Find("44"); !ok {
		t.Error("Find(44) not found")
	}
	if Count() == 0 {
		t.Error("Count() = 0")
	}
}

package phonetype

import "encoding/json"

// MarshalJSON encodes the Phone as its canonical string. Construction
// mode is not observable in the serialized form.
func (p Phone) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

// UnmarshalJSON decodes a JSON string and re-runs the construction
// path: strict E.164-shaped strings go through FromE164, everything
// else through New with default options. Serialized data is never
// trusted without re-validation, and invalid input fails with the same
// *ParseError kinds as direct construction.
func (p *Phone) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	var (
		ph  Phone
		err error
	)
	if isStrictE164(s) {
		ph, err = FromE164(s)
	} else {
		ph, err = New(s)
	}
	if err != nil {
		return err
	}
	*p = ph
	return nil
}

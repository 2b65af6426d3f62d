package phonetype

import "strings"

// groupWidth is the fixed digit-run length used by NumberWithSeparator.
const groupWidth = 3

// NumberWithSeparator returns the national number grouped from the
// left in runs of three digits joined by sep. The trailing group may
// be shorter. An empty national number yields "". The separator is
// taken verbatim; callers are responsible for producing a sensible
// display string.
func (p Phone) NumberWithSeparator(sep rune) string {
	num := p.Number()
	if len(num) <= groupWidth {
		return num
	}

	var b strings.Builder
	b.Grow(len(num) + len(num)/groupWidth*4)
	for i := 0; i < len(num); i += groupWidth {
		if i > 0 {
			b.WriteRune(sep)
		}
		end := i + groupWidth
		if end > len(num) {
			end = len(num)
		}
		b.WriteString(num[i:end])
	}
	return b.String()
}

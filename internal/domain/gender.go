package domain

import "strings"

// Gender is the subject's gender as collected by the input form.
type Gender int

// Other is the zero value so that unknown input never selects a specific gender.
const (
	GenderOther Gender = iota
	GenderMale
	GenderFemale
)

var genderInfo = map[Gender]struct{ code, label string }{
	GenderMale:   {"male", "Male"},
	GenderFemale: {"female", "Female"},
	GenderOther:  {"other", "Other"},
}

// ParseGender maps "male" and "female" (any case) to their variants and
// everything else, including the empty string, to GenderOther.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderOther
	}
}

// Label returns the display label, e.g. "Female".
func (g Gender) Label() string {
	if info, ok := genderInfo[g]; ok {
		return info.label
	}
	return genderInfo[GenderOther].label
}

// Code returns the lowercase wire form, e.g. "female".
func (g Gender) Code() string {
	if info, ok := genderInfo[g]; ok {
		return info.code
	}
	return genderInfo[GenderOther].code
}

func (g Gender) String() string { return g.Label() }

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (g *Gender) UnmarshalText(b []byte) error {
	*g = ParseGender(string(b))
	return nil
}

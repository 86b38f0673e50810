package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/domain"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Gender
	}{
		{"male", domain.GenderMale},
		{"Male", domain.GenderMale},
		{"FEMALE", domain.GenderFemale},
		{" female ", domain.GenderFemale},
		{"xyz", domain.GenderOther},
		{"", domain.GenderOther},
		{"Select Gender", domain.GenderOther},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.ParseGender(tc.in), "ParseGender(%q)", tc.in)
	}
}

func TestGender_Labels(t *testing.T) {
	assert.Equal(t, "Male", domain.GenderMale.Label())
	assert.Equal(t, "female", domain.GenderFemale.Code())
	assert.Equal(t, "Other", domain.Gender(42).Label())
}

func TestGender_JSON(t *testing.T) {
	var p domain.Profile
	require.NoError(t, json.Unmarshal([]byte(`{"weight":70,"height":175,"age":30,"gender":"Female"}`), &p))
	assert.Equal(t, domain.GenderFemale, p.Gender)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weight":70,"height":175,"age":30,"gender":"female"}`, string(b))
}

func TestProfile_Valid(t *testing.T) {
	tests := []struct {
		name string
		p    domain.Profile
		want bool
	}{
		{"valid", domain.NewProfile(70, 175, 30, domain.GenderMale), true},
		{"zero weight", domain.NewProfile(0, 175, 30, domain.GenderMale), false},
		{"negative height", domain.NewProfile(70, -1, 30, domain.GenderMale), false},
		{"zero age", domain.NewProfile(70, 175, 0, domain.GenderMale), false},
		{"implausible but positive", domain.NewProfile(1000, 1, 500, domain.GenderOther), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Valid())
		})
	}
}

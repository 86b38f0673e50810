package domain

import (
	"fmt"
	"math"
	"strings"
)

// Category is a WHO-style BMI classification.
type Category int

// Categories ordered by threshold. The zero value is not a category.
const (
	CategoryUnderweight Category = iota + 1
	CategoryNormal
	CategoryOverweight
	CategoryObese
)

// Severity is how urgently a category should be flagged to the user.
type Severity string

const (
	SeverityHealthy Severity = "healthy"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// CategoryInfo is one row of the classification table. Upper is exclusive.
type CategoryInfo struct {
	Category       Category `json:"category"`
	Label          string   `json:"label"`
	Range          string   `json:"range"`
	Upper          float64  `json:"-"`
	Healthy        bool     `json:"healthy"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
}

var categoryTable = []CategoryInfo{
	{
		Category:       CategoryUnderweight,
		Label:          "Underweight",
		Range:          "BMI < 18.5",
		Upper:          18.5,
		Severity:       SeverityWarning,
		Recommendation: "You may need to gain weight. Consult a healthcare professional for advice.",
	},
	{
		Category:       CategoryNormal,
		Label:          "Normal Weight",
		Range:          "BMI 18.5 - 24.9",
		Upper:          25.0,
		Healthy:        true,
		Severity:       SeverityHealthy,
		Recommendation: "Great! You have a healthy weight. Keep maintaining your lifestyle.",
	},
	{
		Category:       CategoryOverweight,
		Label:          "Overweight",
		Range:          "BMI 25 - 29.9",
		Upper:          30.0,
		Severity:       SeverityWarning,
		Recommendation: "You may need to lose some weight. Consider a balanced diet and regular exercise.",
	},
	{
		Category:       CategoryObese,
		Label:          "Obese",
		Range:          "BMI ≥ 30",
		Upper:          math.Inf(1),
		Severity:       SeverityDanger,
		Recommendation: "You should consult a healthcare professional for a personalized health plan.",
	},
}

var categoryCodes = map[Category]string{
	CategoryUnderweight: "underweight",
	CategoryNormal:      "normal",
	CategoryOverweight:  "overweight",
	CategoryObese:       "obese",
}

// Classify returns the first category whose exclusive upper bound lies above
// bmi, so 18.5 is Normal, 25.0 Overweight and 30.0 Obese.
func Classify(bmi float64) Category {
	for _, row := range categoryTable {
		if bmi < row.Upper {
			return row.Category
		}
	}
	return CategoryObese
}

// Categories returns a copy of the classification table in threshold order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// ParseCategory accepts the lowercase code produced by Code.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, code := range categoryCodes {
		if code == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown bmi category %q", s)
}

// Info returns the table row for c. Unknown values yield a zero row.
func (c Category) Info() CategoryInfo {
	if c < CategoryUnderweight || c > CategoryObese {
		return CategoryInfo{}
	}
	return categoryTable[c-1]
}

// Label returns the display name, e.g. "Normal Weight".
func (c Category) Label() string { return c.Info().Label }

// Recommendation returns the fixed advice text for the category.
func (c Category) Recommendation() string { return c.Info().Recommendation }

// Healthy is true only for CategoryNormal.
func (c Category) Healthy() bool { return c.Info().Healthy }

// Severity mirrors the result screen's colour coding.
func (c Category) Severity() Severity { return c.Info().Severity }

// Code returns the lowercase wire form, e.g. "overweight".
func (c Category) Code() string { return categoryCodes[c] }

func (c Category) String() string { return c.Label() }

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	code, ok := categoryCodes[c]
	if !ok {
		return nil, fmt.Errorf("invalid bmi category %d", int(c))
	}
	return []byte(code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidProfile indicates a profile with a non-positive weight, height or age.
	ErrInvalidProfile = errors.New("weight, height and age must be positive")
	// ErrComputation indicates that BMI is undefined for the given profile.
	ErrComputation = errors.New("bmi is undefined")
)

// Ideal weight is the weight range that maps to BMI 18.5 - 24.9.
const (
	idealMinBMI = 18.5
	idealMaxBMI = 24.9
)

// WeightRange is a closed weight interval in kilograms.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Assessment is the BMI computed for a single profile. BMI and category are
// derived once in NewAssessment and never change, so an Assessment may be
// read from several goroutines.
type Assessment struct {
	profile  Profile
	bmi      float64
	category Category
}

// NewAssessment computes BMI and its category for p. It fails with
// ErrComputation when the height is not positive or the result would not be
// a finite number; it does not otherwise validate p.
func NewAssessment(p Profile) (*Assessment, error) {
	if !(p.Height > 0) || math.IsInf(p.Height, 0) {
		return nil, fmt.Errorf("%w: height %v cm", ErrComputation, p.Height)
	}
	if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
		return nil, fmt.Errorf("%w: weight %v kg", ErrComputation, p.Weight)
	}

	m := p.Height / 100
	raw := p.Weight / (m * m)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil, fmt.Errorf("%w: %v kg at %v cm", ErrComputation, p.Weight, p.Height)
	}

	bmi := Round(raw, 2)
	return &Assessment{profile: p, bmi: bmi, category: Classify(bmi)}, nil
}

// Profile returns the profile the assessment was computed from.
func (a *Assessment) Profile() Profile { return a.profile }

// BMI returns weight / height² rounded to two decimals.
func (a *Assessment) BMI() float64 { return a.bmi }

// Category returns the classification of the rounded BMI.
func (a *Assessment) Category() Category { return a.category }

// Healthy reports whether the category is Normal.
func (a *Assessment) Healthy() bool { return a.category == CategoryNormal }

// Status is the human-readable form of Healthy.
func (a *Assessment) Status() string {
	if a.Healthy() {
		return "Healthy"
	}
	return "Needs Attention"
}

// IdealWeightRange returns the weights that give BMI 18.5 - 24.9 at the
// profile's height, each bound rounded to one decimal.
func (a *Assessment) IdealWeightRange() WeightRange {
	m := a.profile.Height / 100
	sq := m * m
	return WeightRange{
		Min: Round(idealMinBMI*sq, 1),
		Max: Round(idealMaxBMI*sq, 1),
	}
}

// Summary renders the multi-line report shown on the result view.
func (a *Assessment) Summary() string {
	r := a.IdealWeightRange()

	var sb strings.Builder
	fmt.Fprintf(&sb, "BMI: %.2f\n", a.bmi)
	fmt.Fprintf(&sb, "Category: %s\n", a.category.Label())
	fmt.Fprintf(&sb, "Status: %s\n", a.Status())
	fmt.Fprintf(&sb, "Ideal Weight Range: %.1f - %.1f kg\n", r.Min, r.Max)
	sb.WriteString("\nRecommendation:\n")
	sb.WriteString(a.category.Recommendation())
	return sb.String()
}

// Round rounds v to the given number of decimal places, half away from zero.
// Ties are decided on the shortest decimal representation of v, so 1.005
// becomes 1.01 even though its binary value sits just below the midpoint.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

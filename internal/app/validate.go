package app

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"bmicalc/internal/domain"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid input")

// Plausible measurement ranges accepted from the input form. The
// validation tags on measurements carry the same bounds.
const (
	MinWeightKg = 10.0
	MaxWeightKg = 300.0
	MinHeightCm = 50.0
	MaxHeightCm = 250.0
	MinAge      = 1
	MaxAge      = 120
)

const genderPlaceholder = "select gender"

// Input is the raw form submission. Units default to kg and cm.
type Input struct {
	Weight     float64 `json:"weight"`
	Height     float64 `json:"height"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	WeightUnit string  `json:"weightUnit,omitempty"`
	HeightUnit string  `json:"heightUnit,omitempty"`
}

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// measurements is Input after unit conversion, in the shape the
// validation tags describe.
type measurements struct {
	Weight     float64 `json:"weight" validate:"gte=10,lte=300"`
	Height     float64 `json:"height" validate:"gte=50,lte=250"`
	Age        int     `json:"age" validate:"gte=1,lte=120"`
	Gender     string  `json:"gender" validate:"required,gender_selected"`
	WeightUnit string  `json:"weightUnit" validate:"oneof=kg lb"`
	HeightUnit string  `json:"heightUnit" validate:"oneof=cm in"`
}

var fieldMessages = map[string]string{
	"weight":     fmt.Sprintf("must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg),
	"height":     fmt.Sprintf("must be between %.0f and %.0f cm", MinHeightCm, MaxHeightCm),
	"age":        fmt.Sprintf("must be between %d and %d years", MinAge, MaxAge),
	"gender":     "please select a gender",
	"weightUnit": `must be "kg" or "lb"`,
	"heightUnit": `must be "cm" or "in"`,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("gender_selected", func(fl validator.FieldLevel) bool {
		return !strings.EqualFold(fl.Field().String(), genderPlaceholder)
	})
	return v
}

// Normalize checks in and returns a profile in kg and cm. Every failing
// field is reported, not just the first.
func (in Input) Normalize() (domain.Profile, error) {
	m := measurements{
		Age:        in.Age,
		Gender:     strings.TrimSpace(in.Gender),
		WeightUnit: normalizeUnit(in.WeightUnit, "kg"),
		HeightUnit: normalizeUnit(in.HeightUnit, "cm"),
	}
	m.Weight = domain.ConvertWeight(in.Weight, m.WeightUnit, "kg")
	m.Height = domain.ConvertHeight(in.Height, m.HeightUnit, "cm")

	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Profile{}, err
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessages[fe.Field()]
		}
		// A value in an unknown unit has no meaningful range.
		if _, ok := fields["weightUnit"]; ok {
			delete(fields, "weight")
		}
		if _, ok := fields["heightUnit"]; ok {
			delete(fields, "height")
		}
		return domain.Profile{}, &ValidationError{Fields: fields}
	}
	return domain.NewProfile(m.Weight, m.Height, m.Age, domain.ParseGender(m.Gender)), nil
}

func normalizeUnit(u, fallback string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	if u == "" {
		return fallback
	}
	return u
}

// Package domain contains the core business entities and interfaces.
package domain

import "fmt"

// Profile is the immutable set of physical attributes a BMI assessment is
// computed from. Weight is in kilograms, height in centimetres.
type Profile struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Age    int     `json:"age"`
	Gender Gender  `json:"gender"`
}

// NewProfile stores the given values verbatim. It performs no validation;
// callers decide what to do with an invalid profile via Valid.
func NewProfile(weight, height float64, age int, gender Gender) Profile {
	return Profile{Weight: weight, Height: height, Age: age, Gender: gender}
}

// Valid reports whether weight, height and age are all positive.
func (p Profile) Valid() bool {
	return p.Weight > 0 && p.Height > 0 && p.Age > 0
}

func (p Profile) String() string {
	return fmt.Sprintf("Profile(weight=%v kg, height=%v cm, age=%d, gender=%s)",
		p.Weight, p.Height, p.Age, p.Gender.Label())
}

package domain

import (
	"context"
	"time"
)

// AssessmentRecord is a stored assessment. Category is always derived from
// BMI, never stored separately.
type AssessmentRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	Age       int       `json:"age"`
	Gender    Gender    `json:"gender"`
	BMI       float64   `json:"bmi"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAssessmentRecord captures a computed assessment for persistence.
func NewAssessmentRecord(a *Assessment, createdAt time.Time) AssessmentRecord {
	p := a.Profile()
	return AssessmentRecord{
		Weight:    p.Weight,
		Height:    p.Height,
		Age:       p.Age,
		Gender:    p.Gender,
		BMI:       a.BMI(),
		Category:  a.Category(),
		CreatedAt: createdAt,
	}
}

// Profile rebuilds the profile the record was computed from.
func (r AssessmentRecord) Profile() Profile {
	return NewProfile(r.Weight, r.Height, r.Age, r.Gender)
}

// AssessmentRepository is the port for assessment persistence.
type AssessmentRepository interface {
	AddAssessment(ctx context.Context, userID int64, rec AssessmentRecord) (int64, error)
	DeleteLatestAssessment(ctx context.Context, userID int64) (bool, error)
	LatestAssessmentForLocalDay(ctx context.Context, userID int64, localDay string) (*AssessmentRecord, error)
	ListRecentAssessments(ctx context.Context, userID int64, limit int) ([]AssessmentRecord, error)
}

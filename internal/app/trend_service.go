package app

import (
	"context"
	"fmt"
	"time"

	"bmicalc/internal/domain"
)

const maxTrendDays = 366

// TrendService builds per-day BMI series for charts.
type TrendService struct {
	repo domain.AssessmentRepository
}

// NewTrendService creates a TrendService backed by the given repository.
func NewTrendService(repo domain.AssessmentRepository) *TrendService {
	return &TrendService{repo: repo}
}

// DayPoint is a single day in the trend. BMI and Weight are nil on days
// without an assessment.
type DayPoint struct {
	Day      string           `json:"day"`
	BMI      *float64         `json:"bmi"`
	Category *domain.Category `json:"category"`
	Weight   *WeightPoint     `json:"weight"`
}

// WeightPoint is the optional weight value within a DayPoint.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns one point per local day for the last days days, oldest
// first, with weights converted to unit.
func (s *TrendService) GetDaily(ctx context.Context, userID int64, days int, unit string) ([]DayPoint, error) {
	if unit != "kg" && unit != "lb" {
		return nil, fmt.Errorf("%w: unit must be \"kg\" or \"lb\"", ErrValidation)
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	if days < 1 {
		days = 1
	}

	today := time.Now().In(time.Local)
	points := make([]DayPoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")

		rec, err := s.repo.LatestAssessmentForLocalDay(ctx, userID, day)
		if err != nil {
			return nil, err
		}

		p := DayPoint{Day: day}
		if rec != nil {
			bmi, cat := rec.BMI, rec.Category
			p.BMI = &bmi
			p.Category = &cat
			p.Weight = &WeightPoint{Value: domain.ConvertWeight(rec.Weight, "kg", unit), Unit: unit}
		}
		points = append(points, p)
	}
	return points, nil
}

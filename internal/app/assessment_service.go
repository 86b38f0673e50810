package app

import (
	"context"
	"fmt"
	"time"

	"bmicalc/internal/domain"
)

// DefaultRecentLimit is the history length used when none is requested.
const DefaultRecentLimit = 14

// AssessmentService encapsulates BMI assessment use cases.
type AssessmentService struct {
	repo domain.AssessmentRepository
}

// NewAssessmentService creates an AssessmentService backed by the given
// repository. repo may be nil for callers that only use Assess.
func NewAssessmentService(repo domain.AssessmentRepository) *AssessmentService {
	return &AssessmentService{repo: repo}
}

// Assess validates in and computes its assessment without storing it.
func (s *AssessmentService) Assess(in Input) (*domain.Assessment, error) {
	p, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	if !p.Valid() {
		return nil, domain.ErrInvalidProfile
	}
	return domain.NewAssessment(p)
}

// Record assesses in and stores the result for userID. It returns the
// stored record together with the assessment it was built from.
func (s *AssessmentService) Record(ctx context.Context, userID int64, in Input) (*domain.AssessmentRecord, *domain.Assessment, error) {
	a, err := s.Assess(in)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	rec := domain.NewAssessmentRecord(a, now)
	id, err := s.repo.AddAssessment(ctx, userID, rec)
	if err != nil {
		return nil, nil, fmt.Errorf("store assessment: %w", err)
	}
	rec.ID = id
	rec.UserID = userID
	rec.Day = localDay(now)
	return &rec, a, nil
}

// Latest returns the most recent assessment for the given local day, or nil.
func (s *AssessmentService) Latest(ctx context.Context, userID int64, day string) (*domain.AssessmentRecord, error) {
	return s.repo.LatestAssessmentForLocalDay(ctx, userID, day)
}

// ListRecent returns the most recent assessments up to limit. A limit
// below one falls back to DefaultRecentLimit.
func (s *AssessmentService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.AssessmentRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.ListRecentAssessments(ctx, userID, limit)
}

// UndoLast deletes the most recent assessment and returns the new latest
// entry for today.
func (s *AssessmentService) UndoLast(ctx context.Context, userID int64) (bool, *domain.AssessmentRecord, string, error) {
	today := localDay(time.Now())
	deleted, err := s.repo.DeleteLatestAssessment(ctx, userID)
	if err != nil {
		return false, nil, today, err
	}
	entry, err := s.repo.LatestAssessmentForLocalDay(ctx, userID, today)
	if err != nil {
		return deleted, nil, today, err
	}
	return deleted, entry, today, nil
}

func localDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/app"
	"bmicalc/internal/domain"
)

func TestAssess(t *testing.T) {
	svc := app.NewAssessmentService(nil)
	a, err := svc.Assess(app.Input{Weight: 70, Height: 175, Age: 30, Gender: "male"})
	require.NoError(t, err)
	assert.Equal(t, 22.86, a.BMI())
	assert.Equal(t, domain.CategoryNormal, a.Category())
	assert.True(t, a.Healthy())
}

func TestAssess_ValidationError(t *testing.T) {
	svc := app.NewAssessmentService(nil)
	_, err := svc.Assess(app.Input{Weight: 80, Height: 0, Age: 30, Gender: "male"})
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestRecord_Success(t *testing.T) {
	var stored domain.AssessmentRecord
	repo := &mockAssessmentRepo{
		addFn: func(_ context.Context, userID int64, rec domain.AssessmentRecord) (int64, error) {
			assert.Equal(t, int64(3), userID)
			stored = rec
			return 11, nil
		},
	}
	svc := app.NewAssessmentService(repo)

	rec, a, err := svc.Record(context.Background(), 3, app.Input{Weight: 95, Height: 170, Age: 40, Gender: "female"})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, rec.BMI, a.BMI())
	assert.Equal(t, rec.Profile(), a.Profile())
	assert.Equal(t, int64(11), rec.ID)
	assert.Equal(t, int64(3), rec.UserID)
	assert.Equal(t, time.Now().Format("2006-01-02"), rec.Day)
	assert.Equal(t, 32.87, rec.BMI)
	assert.Equal(t, domain.CategoryObese, rec.Category)
	assert.Equal(t, domain.GenderFemale, stored.Gender)
	assert.Equal(t, 95.0, stored.Weight)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestRecord_RepoError(t *testing.T) {
	repo := &mockAssessmentRepo{
		addFn: func(_ context.Context, _ int64, _ domain.AssessmentRecord) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	svc := app.NewAssessmentService(repo)
	_, _, err := svc.Record(context.Background(), 1, app.Input{Weight: 70, Height: 175, Age: 30, Gender: "male"})
	assert.ErrorContains(t, err, "db down")
}

func TestRecord_ValidationSkipsRepo(t *testing.T) {
	repo := &mockAssessmentRepo{
		addFn: func(_ context.Context, _ int64, _ domain.AssessmentRecord) (int64, error) {
			t.Fatal("repository must not be called")
			return 0, nil
		},
	}
	svc := app.NewAssessmentService(repo)
	_, _, err := svc.Record(context.Background(), 1, app.Input{Weight: 70, Height: 175, Age: 0, Gender: "male"})
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestLatest(t *testing.T) {
	entry := &domain.AssessmentRecord{ID: 5, BMI: 24.1, Category: domain.CategoryNormal}
	repo := &mockAssessmentRepo{
		latestFn: func(_ context.Context, _ int64, day string) (*domain.AssessmentRecord, error) {
			assert.Equal(t, "2026-01-15", day)
			return entry, nil
		},
	}
	svc := app.NewAssessmentService(repo)
	got, err := svc.Latest(context.Background(), 1, "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestUndoLast(t *testing.T) {
	repo := &mockAssessmentRepo{
		deleteFn: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}
	svc := app.NewAssessmentService(repo)
	deleted, entry, today, err := svc.UndoLast(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Nil(t, entry)
	assert.NotEmpty(t, today)
}

func TestUndoLast_Error(t *testing.T) {
	repo := &mockAssessmentRepo{
		deleteFn: func(_ context.Context, _ int64) (bool, error) { return false, errors.New("db down") },
	}
	svc := app.NewAssessmentService(repo)
	_, _, _, err := svc.UndoLast(context.Background(), 1)
	assert.Error(t, err)
}

func TestListRecent_Error(t *testing.T) {
	repo := &mockAssessmentRepo{
		listFn: func(_ context.Context, _ int64, _ int) ([]domain.AssessmentRecord, error) {
			return nil, errors.New("db down")
		},
	}
	svc := app.NewAssessmentService(repo)
	_, err := svc.ListRecent(context.Background(), 1, 10)
	assert.Error(t, err)
}

func TestListRecent_NonPositiveLimit(t *testing.T) {
	for _, limit := range []int{-1, 0} {
		var got int
		repo := &mockAssessmentRepo{
			listFn: func(_ context.Context, _ int64, l int) ([]domain.AssessmentRecord, error) {
				got = l
				return nil, nil
			},
		}
		_, err := app.NewAssessmentService(repo).ListRecent(context.Background(), 1, limit)
		require.NoError(t, err)
		assert.Equal(t, app.DefaultRecentLimit, got, "limit %d", limit)
	}
}

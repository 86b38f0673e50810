package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bmicalc/internal/domain"
)

var _ domain.AssessmentRepository = (*DB)(nil)

const assessmentColumns = "id, user_id, weight_kg, height_cm, age, gender, bmi, created_at"

// AddAssessment inserts a new assessment.
func (d *DB) AddAssessment(ctx context.Context, userID int64, rec domain.AssessmentRecord) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO assessments(user_id, weight_kg, height_cm, age, gender, bmi, created_at) VALUES(?, ?, ?, ?, ?, ?, ?);",
		userID, rec.Weight, rec.Height, rec.Age, rec.Gender.Code(), rec.BMI, toMillis(rec.CreatedAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteLatestAssessment removes the user's most recent assessment.
func (d *DB) DeleteLatestAssessment(ctx context.Context, userID int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"DELETE FROM assessments WHERE id = (SELECT id FROM assessments WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT 1);",
		userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// LatestAssessmentForLocalDay returns the user's most recent assessment on a local calendar day.
func (d *DB) LatestAssessmentForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.AssessmentRecord, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	row := d.sql.QueryRowContext(ctx,
		"SELECT "+assessmentColumns+" FROM assessments WHERE user_id=? AND created_at >= ? AND created_at < ? ORDER BY created_at DESC, id DESC LIMIT 1;",
		userID, toMillis(dayStart), toMillis(dayEnd),
	)
	rec, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Day = localDay
	return &rec, nil
}

// ListRecentAssessments returns the user's most recent assessments up to limit.
func (d *DB) ListRecentAssessments(ctx context.Context, userID int64, limit int) ([]domain.AssessmentRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+assessmentColumns+" FROM assessments WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT ?;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AssessmentRecord, 0, limit)
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		rec.Day = rec.CreatedAt.In(time.Local).Format("2006-01-02")
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(s scanner) (domain.AssessmentRecord, error) {
	var (
		rec     domain.AssessmentRecord
		gender  string
		created int64
	)
	if err := s.Scan(&rec.ID, &rec.UserID, &rec.Weight, &rec.Height, &rec.Age, &gender, &rec.BMI, &created); err != nil {
		return rec, err
	}
	rec.Gender = domain.ParseGender(gender)
	rec.Category = domain.Classify(rec.BMI)
	rec.CreatedAt = fromMillis(created)
	return rec, nil
}

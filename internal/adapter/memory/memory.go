// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"bmicalc/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	assessments []domain.AssessmentRecord
	users       []*domain.User
	sessions    map[string]*domain.Session

	assessmentIDCounter int64
	userIDCounter       int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var (
	_ domain.AssessmentRepository = (*DB)(nil)
	_ domain.UserRepository       = (*DB)(nil)
	_ domain.SessionRepository    = (*SessionRepo)(nil)
)

// --- AssessmentRepository ---

// AddAssessment stores rec for userID and returns its new ID.
func (db *DB) AddAssessment(ctx context.Context, userID int64, rec domain.AssessmentRecord) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.assessmentIDCounter++
	rec.ID = db.assessmentIDCounter
	rec.UserID = userID
	rec.Day = ""
	rec.CreatedAt = rec.CreatedAt.UTC()
	db.assessments = append(db.assessments, rec)
	return rec.ID, nil
}

// DeleteLatestAssessment deletes the user's most recent assessment.
func (db *DB) DeleteLatestAssessment(ctx context.Context, userID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, a := range db.assessments {
		if a.UserID != userID {
			continue
		}
		if lastIdx == -1 || !a.CreatedAt.Before(db.assessments[lastIdx].CreatedAt) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return false, nil
	}
	db.assessments = append(db.assessments[:lastIdx], db.assessments[lastIdx+1:]...)
	return true, nil
}

// LatestAssessmentForLocalDay returns the user's latest assessment on localDay.
func (db *DB) LatestAssessmentForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.AssessmentRecord, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	db.mu.Lock()
	defer db.mu.Unlock()

	var latest *domain.AssessmentRecord
	for i := range db.assessments {
		a := &db.assessments[i]
		if a.UserID != userID || a.CreatedAt.Before(dayStart) || !a.CreatedAt.Before(dayEnd) {
			continue
		}
		if latest == nil || !a.CreatedAt.Before(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}

	ret := *latest
	ret.Day = localDay
	return &ret, nil
}

// ListRecentAssessments lists the user's most recent assessments, newest first.
func (db *DB) ListRecentAssessments(ctx context.Context, userID int64, limit int) ([]domain.AssessmentRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.AssessmentRecord, 0, len(db.assessments))
	for _, a := range db.assessments {
		if a.UserID == userID {
			result = append(result, a)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	for i := range result {
		result[i].Day = result[i].CreatedAt.In(time.Local).Format("2006-01-02")
	}
	return result, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a session repository sharing db's lock.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}

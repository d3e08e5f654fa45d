package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const sessionColumns = `id, tutor_id, student_id, skill_id, starts_at, duration_minutes,
       location_kind, location_address, is_group, offer_id, slot_id, status, created_at, updated_at`

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, tutor_id, student_id, skill_id, starts_at, duration_minutes,
                                    location_kind, location_address, is_group, offer_id, slot_id,
                                    status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.TutorID, s.StudentID, s.SkillID, s.StartsAt, s.DurationMinutes,
		s.Location.Kind, s.Location.Address, s.IsGroup, s.OfferID, s.SlotID,
		s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = scanSession(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE tutor_id = $1 OR student_id = $1
			  ORDER BY starts_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err = scanSession(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) Finish(ctx context.Context, id string, status domain.SessionStatus) error {
	query := `UPDATE sessions SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, domain.SessionStatusScheduled)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("session rows affected: %w", err)
	}
	if affected == 0 {
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrSessionFinished
	}

	return nil
}

func (r *SessionRepository) CompleteElapsed(ctx context.Context) ([]*domain.Session, error) {
	query := `UPDATE sessions
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND starts_at + make_interval(mins => COALESCE(duration_minutes, 60)) < now()
			  RETURNING ` + sessionColumns
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.SessionStatusScheduled, domain.SessionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err = scanSession(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func scanSession(scan func(...any) error, s *domain.Session) error {
	return scan(
		&s.ID, &s.TutorID, &s.StudentID, &s.SkillID, &s.StartsAt, &s.DurationMinutes,
		&s.Location.Kind, &s.Location.Address, &s.IsGroup, &s.OfferID, &s.SlotID,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}

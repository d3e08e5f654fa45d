package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OfferRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfferRepo(db *dbpg.DB) *OfferRepository {
	return &OfferRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	offerQuery := `INSERT INTO offers (id, tutor_id, skill_id, title, notes, location_kind, location_address,
                                       is_group, capacity, status, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, offerQuery,
		o.ID, o.TutorID, o.SkillID, o.Title, o.Notes,
		o.Location.Kind, o.Location.Address,
		o.IsGroup, o.Capacity, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}

	slotQuery := `INSERT INTO slots (id, offer_id, starts_at, duration_minutes, created_at)
				  VALUES ($1, $2, $3, $4, $5)`
	for i := range o.Slots {
		s := &o.Slots[i]
		if _, err = tx.ExecContext(
			ctx, slotQuery,
			s.ID, s.OfferID, s.StartsAt, s.DurationMinutes, s.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	query := `SELECT id, tutor_id, skill_id, title, notes, location_kind, location_address,
       			     is_group, capacity, status, created_at, updated_at
			  FROM offers
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	var o domain.Offer
	if err = row.Scan(
		&o.ID, &o.TutorID, &o.SkillID, &o.Title, &o.Notes,
		&o.Location.Kind, &o.Location.Address,
		&o.IsGroup, &o.Capacity, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	if err = r.attachSlots(ctx, []*domain.Offer{&o}); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *OfferRepository) ListOpen(ctx context.Context, filter domain.OfferFilter) ([]*domain.Offer, error) {
	query := `SELECT id, tutor_id, skill_id, title, notes, location_kind, location_address,
       				 is_group, capacity, status, created_at, updated_at
			  FROM offers
			  WHERE status = $1
			    AND ($2 = '' OR tutor_id = $2)
			    AND ($3 = '' OR skill_id = $3)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.OfferStatusOpen, filter.TutorID, filter.SkillID)
	if err != nil {
		return nil, fmt.Errorf("list open offers: %w", err)
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *OfferRepository) ListByTutor(ctx context.Context, tutorID string, status domain.OfferStatus) ([]*domain.Offer, error) {
	query := `SELECT id, tutor_id, skill_id, title, notes, location_kind, location_address,
       				 is_group, capacity, status, created_at, updated_at
			  FROM offers
			  WHERE tutor_id = $1
			    AND ($2 = '' OR status = $2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tutorID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list offers by tutor: %w", err)
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *OfferRepository) Close(ctx context.Context, id string) (bool, error) {
	query := `UPDATE offers
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.OfferStatusClosed, domain.OfferStatusOpen)
	if err != nil {
		return false, fmt.Errorf("close offer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("close offer rows affected: %w", err)
	}
	if affected > 0 {
		return true, nil
	}

	// Nothing updated: either the offer is already closed or it never existed.
	var exists bool
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT EXISTS(SELECT 1 FROM offers WHERE id=$1)`, id)
	if err != nil {
		return false, fmt.Errorf("check offer: %w", err)
	}
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan offer check: %w", err)
	}
	if !exists {
		return false, domain.ErrOfferNotFound
	}

	return false, nil
}

func (r *OfferRepository) collect(ctx context.Context, rows *sql.Rows) ([]*domain.Offer, error) {
	var res []*domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(
			&o.ID, &o.TutorID, &o.SkillID, &o.Title, &o.Notes,
			&o.Location.Kind, &o.Location.Address,
			&o.IsGroup, &o.Capacity, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		res = append(res, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSlots(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *OfferRepository) attachSlots(ctx context.Context, offers []*domain.Offer) error {
	if len(offers) == 0 {
		return nil
	}

	ids := make([]string, 0, len(offers))
	byID := make(map[string]*domain.Offer, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	query := `SELECT id, offer_id, starts_at, duration_minutes, created_at
			  FROM slots
			  WHERE offer_id = ANY($1)
			  ORDER BY starts_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Slot
		if err = rows.Scan(&s.ID, &s.OfferID, &s.StartsAt, &s.DurationMinutes, &s.CreatedAt); err != nil {
			return fmt.Errorf("scan slot: %w", err)
		}
		if o, ok := byID[s.OfferID]; ok {
			o.Slots = append(o.Slots, s)
		}
	}

	return rows.Err()
}

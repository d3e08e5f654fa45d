package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const requestColumns = `id, offer_id, slot_id, tutor_id, student_id, status, created_at, updated_at`

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request, proposed *domain.CreateSlotInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Lock the offer row: serializes ad-hoc slot creation per offer so two
	// students proposing the same time end up on one slot.
	var status domain.OfferStatus
	offerQuery := `SELECT status FROM offers WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, offerQuery, req.OfferID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrOfferNotFound
		}
		return fmt.Errorf("lock offer: %w", err)
	}
	if status != domain.OfferStatusOpen {
		return domain.ErrOfferClosed
	}

	// The offer row is locked above, so this check cannot race with another
	// create on the same offer. The partial unique index stays as a backstop.
	var dup bool
	dupQuery := `SELECT EXISTS(
					SELECT 1 FROM requests
					WHERE offer_id = $1 AND student_id = $2 AND status = ANY($3))`
	if err = tx.QueryRowContext(ctx, dupQuery, req.OfferID, req.StudentID, pq.Array(domain.ActiveRequestStatuses)).Scan(&dup); err != nil {
		return fmt.Errorf("check duplicate request: %w", err)
	}
	if dup {
		return domain.ErrDuplicateRequest
	}

	if req.SlotID == "" {
		slotID, err := r.resolveSlot(ctx, tx, req.OfferID, proposed)
		if err != nil {
			return err
		}
		req.SlotID = slotID
	} else {
		var belongs bool
		slotQuery := `SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1 AND offer_id = $2)`
		if err = tx.QueryRowContext(ctx, slotQuery, req.SlotID, req.OfferID).Scan(&belongs); err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if !belongs {
			return domain.ErrSlotNotFound
		}
	}

	insertQuery := `INSERT INTO requests (id, offer_id, slot_id, tutor_id, student_id, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		req.ID, req.OfferID, req.SlotID, req.TutorID, req.StudentID,
		req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return tx.Commit()
}

func (r *RequestRepository) resolveSlot(ctx context.Context, tx *sql.Tx, offerID string, proposed *domain.CreateSlotInput) (string, error) {
	findQuery := `SELECT id FROM slots
				  WHERE offer_id = $1
				    AND starts_at = $2
				    AND duration_minutes IS NOT DISTINCT FROM $3`
	var slotID string
	err := tx.QueryRowContext(ctx, findQuery, offerID, proposed.StartsAt, proposed.DurationMinutes).Scan(&slotID)
	if err == nil {
		return slotID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("find slot: %w", err)
	}

	slotID = newID()
	insertQuery := `INSERT INTO slots (id, offer_id, starts_at, duration_minutes, created_at)
					VALUES ($1, $2, $3, $4, now())`
	if _, err = tx.ExecContext(ctx, insertQuery, slotID, offerID, proposed.StartsAt, proposed.DurationMinutes); err != nil {
		return "", fmt.Errorf("insert proposed slot: %w", err)
	}

	return slotID, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.Request
	if err = scanRequest(row.Scan, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

// TryAccept is the capacity check-and-commit. The request row and the slot
// row are locked in one transaction, so two concurrent accepts against the
// same slot serialize and at most capacity of them can see a free seat.
func (r *RequestRepository) TryAccept(ctx context.Context, id string) (*domain.Request, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var req domain.Request
	reqQuery := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1 FOR UPDATE`
	if err = scanRequest(tx.QueryRowContext(ctx, reqQuery, id).Scan, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("lock request: %w", err)
	}
	if req.Status != domain.RequestStatusPending {
		return nil, domain.ErrRequestNotPending
	}

	// The slot row is the serialization point for the (offer, slot) seat
	// count: no second accept can pass this lock until we commit.
	var isGroup bool
	var capacity int
	slotQuery := `SELECT o.is_group, o.capacity
				  FROM slots s
				  JOIN offers o ON o.id = s.offer_id
				  WHERE s.id = $1
				  FOR UPDATE OF s`
	if err = tx.QueryRowContext(ctx, slotQuery, req.SlotID).Scan(&isGroup, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	effective := 1
	if isGroup {
		effective = capacity
		if effective < 2 {
			effective = 2
		}
	}

	var accepted int
	countQuery := `SELECT COUNT(*) FROM requests WHERE slot_id = $1 AND status = $2`
	if err = tx.QueryRowContext(ctx, countQuery, req.SlotID, domain.RequestStatusAccepted).Scan(&accepted); err != nil {
		return nil, fmt.Errorf("count accepted: %w", err)
	}
	if accepted >= effective {
		return nil, domain.ErrSlotFull
	}

	updateQuery := `UPDATE requests SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, domain.RequestStatusAccepted); err != nil {
		return nil, fmt.Errorf("accept request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}

	req.Status = domain.RequestStatusAccepted
	req.UpdatedAt = time.Now().UTC()
	return &req, nil
}

func (r *RequestRepository) Decline(ctx context.Context, id string) error {
	return r.transition(ctx, id, domain.RequestStatusPending, domain.RequestStatusDeclined)
}

func (r *RequestRepository) ResetToPending(ctx context.Context, id string) error {
	return r.transition(ctx, id, domain.RequestStatusAccepted, domain.RequestStatusPending)
}

func (r *RequestRepository) transition(ctx context.Context, id string, from, to domain.RequestStatus) error {
	query := `UPDATE requests SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if affected == 0 {
		// Determine why: missing request or one already in another status.
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrRequestNotPending
	}

	return nil
}

func (r *RequestRepository) DeclineOtherPending(ctx context.Context, offerID, exceptID string) ([]*domain.Request, error) {
	query := `UPDATE requests SET status = $3, updated_at = now()
			  WHERE offer_id = $1 AND id <> $2 AND status = $4
			  RETURNING ` + requestColumns
	return r.updateReturning(ctx, query, offerID, exceptID, domain.RequestStatusDeclined, domain.RequestStatusPending)
}

func (r *RequestRepository) DeclinePendingOnSlot(ctx context.Context, slotID, exceptID string) ([]*domain.Request, error) {
	query := `UPDATE requests SET status = $3, updated_at = now()
			  WHERE slot_id = $1 AND id <> $2 AND status = $4
			  RETURNING ` + requestColumns
	return r.updateReturning(ctx, query, slotID, exceptID, domain.RequestStatusDeclined, domain.RequestStatusPending)
}

func (r *RequestRepository) CancelPendingByOffer(ctx context.Context, offerID string) ([]*domain.Request, error) {
	query := `UPDATE requests SET status = $2, updated_at = now()
			  WHERE offer_id = $1 AND status = $3
			  RETURNING ` + requestColumns
	return r.updateReturning(ctx, query, offerID, domain.RequestStatusCancelled, domain.RequestStatusPending)
}

func (r *RequestRepository) updateReturning(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Request
	for rows.Next() {
		var req domain.Request
		if err = scanRequest(rows.Scan, &req); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}

func (r *RequestRepository) CountAcceptedBySlot(ctx context.Context, offerID string) (map[string]int, error) {
	query := `SELECT s.id, COUNT(r.id)
			  FROM slots s
			  LEFT JOIN requests r ON r.slot_id = s.id AND r.status = $2
			  WHERE s.offer_id = $1
			  GROUP BY s.id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, offerID, domain.RequestStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("count accepted by slot: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var slotID string
		var count int
		if err = rows.Scan(&slotID, &count); err != nil {
			return nil, fmt.Errorf("scan slot count: %w", err)
		}
		res[slotID] = count
	}

	return res, rows.Err()
}

const listRequestsLimit = 200

func (r *RequestRepository) ListViews(ctx context.Context, role domain.RequestRole, actorID string, status domain.RequestStatus) ([]*domain.RequestView, error) {
	actorColumn := "r.student_id"
	if role == domain.RequestRoleTutor {
		actorColumn = "r.tutor_id"
	}

	query := `SELECT r.id, r.offer_id, r.slot_id, r.tutor_id, r.student_id, r.status, r.created_at, r.updated_at,
					 o.title, s.starts_at, tu.username, su.username
			  FROM requests r
			  JOIN offers o ON o.id = r.offer_id
			  JOIN slots s ON s.id = r.slot_id
			  JOIN users tu ON tu.id = r.tutor_id
			  JOIN users su ON su.id = r.student_id
			  WHERE ` + actorColumn + ` = $1
			    AND ($2 = '' OR r.status = $2)
			  ORDER BY r.created_at DESC
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, actorID, string(status), listRequestsLimit)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.RequestView
	for rows.Next() {
		var v domain.RequestView
		if err = rows.Scan(
			&v.ID, &v.OfferID, &v.SlotID, &v.TutorID, &v.StudentID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
			&v.OfferTitle, &v.SlotStartsAt, &v.TutorUsername, &v.StudentUsername,
		); err != nil {
			return nil, fmt.Errorf("scan request view: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func newID() string {
	return uuid.New().String()
}

func scanRequest(scan func(...any) error, req *domain.Request) error {
	return scan(
		&req.ID, &req.OfferID, &req.SlotID, &req.TutorID, &req.StudentID,
		&req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
}

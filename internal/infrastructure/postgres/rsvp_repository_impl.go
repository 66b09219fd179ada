package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/domain/repository"
)

const rsvpColumns = `id, user_id, event_id, status, notes, created_at, updated_at`

type RSVPRepository struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{pool: pool}
}

func scanRSVP(row pgx.Row) (*entity.RSVP, error) {
	r := &entity.RSVP{}
	err := row.Scan(&r.ID, &r.UserID, &r.EventID, &r.Status, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RSVPRepository) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.RSVP, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+rsvpColumns+` FROM rsvps
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	rec, err := scanRSVP(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (r *RSVPRepository) ListByEvent(ctx context.Context, eventID string) ([]*entity.RSVP, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+rsvpColumns+` FROM rsvps
		WHERE event_id = $1
		ORDER BY created_at
	`, eventID)
	if err != nil {
		return nil, err
	}
	return collectRSVPs(rows)
}

func (r *RSVPRepository) ListByUser(ctx context.Context, userID string) ([]*entity.RSVP, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+rsvpColumns+` FROM rsvps
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	return collectRSVPs(rows)
}

func collectRSVPs(rows pgx.Rows) ([]*entity.RSVP, error) {
	defer rows.Close()
	var out []*entity.RSVP
	for rows.Next() {
		rec, err := scanRSVP(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert is a single atomic statement keyed on the (user_id, event_id)
// unique constraint, so concurrent submits from the same user cannot
// produce duplicates. xmax = 0 identifies a freshly inserted row.
func (r *RSVPRepository) Upsert(ctx context.Context, rec *entity.RSVP) (bool, error) {
	var inserted bool
	row := r.pool.QueryRow(ctx, `
		INSERT INTO rsvps (user_id, event_id, status, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, event_id) DO UPDATE
		SET status = EXCLUDED.status, notes = EXCLUDED.notes, updated_at = now()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`, rec.UserID, rec.EventID, rec.Status, rec.Notes)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt, &inserted); err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *RSVPRepository) Delete(ctx context.Context, userID, eventID string) (string, error) {
	var id string
	row := r.pool.QueryRow(ctx, `
		DELETE FROM rsvps WHERE user_id = $1 AND event_id = $2 RETURNING id
	`, userID, eventID)
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}

var _ repository.RSVPRepository = (*RSVPRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/domain/repository"
)

const eventColumns = `id, title, description, date, location, category, image_url, organizer_id, max_attendees, is_public, created_at, updated_at`

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	e := &entity.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Category,
		&e.ImageURL, &e.OrganizerID, &e.MaxAttendees, &e.IsPublic, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectEvents(rows pgx.Rows) ([]*entity.Event, error) {
	defer rows.Close()
	var out []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *EventRepository) ListPublic(ctx context.Context) ([]*entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE is_public = true
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepository) ListPublicByCategory(ctx context.Context, category string) ([]*entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE is_public = true AND category = $1
		ORDER BY date DESC
	`, category)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

// ListPublicByIDs keeps the order of ids (search relevance) and drops
// ids that are missing or private.
func (r *EventRepository) ListPublicByIDs(ctx context.Context, ids []string) ([]*entity.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE is_public = true AND id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	events, err := collectEvents(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	out := make([]*entity.Event, 0, len(events))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE organizer_id = $1
		ORDER BY date DESC
	`, organizerID)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, date, location, category, image_url, organizer_id, max_attendees, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, e.Title, e.Description, e.Date, e.Location, e.Category, e.ImageURL, e.OrganizerID, e.MaxAttendees, e.IsPublic)
	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Patch updates only the provided fields and returns the stored row.
func (r *EventRepository) Patch(ctx context.Context, id string, patch entity.EventPatch) (*entity.Event, error) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.MaxAttendees != nil {
		add("max_attendees", *patch.MaxAttendees)
	}
	if patch.IsPublic != nil {
		add("is_public", *patch.IsPublic)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE events SET %s WHERE id = $%d RETURNING `+eventColumns,
		strings.Join(sets, ", "), len(args))
	e, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errNotFound
	}
	return e, err
}

// DeleteCascade removes the event's RSVPs and then the event itself in a
// single transaction, so a failure leaves no dangling state either way.
func (r *EventRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM rsvps WHERE event_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.EventRepository = (*EventRepository)(nil)

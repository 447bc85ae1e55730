package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/events"
)

const eventColumns = `
	id, dog_id,
	event_type, title, description,
	privacy_level,
	created_by, created_at
`

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.DogID,
		string(e.Type),
		e.Title,
		e.Description,
		string(e.Privacy),
		e.CreatedBy,
		e.CreatedAt,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return events.Event{}, events.ErrNotFound
	}

	e, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

func (r *EventsRepo) ListByDog(ctx context.Context, dogID string, filter events.ListFilter) ([]events.Event, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return []events.Event{}, nil
	}

	query, args := listEventsQuery(dogID, filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// listEventsQuery aplica PrivacyLevels como predicado SQL: las filas no
// permitidas nunca salen de la base. seq desempata created_at en orden de llegada.
func listEventsQuery(dogID string, filter events.ListFilter) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + eventColumns + ` FROM events WHERE dog_id = $1`)
	args := []any{dogID}
	argN := 2

	levels := make([]string, 0, len(filter.PrivacyLevels))
	for _, l := range filter.PrivacyLevels {
		levels = append(levels, string(l))
	}
	args, argN = inClause(&sb, "privacy_level", levels, args, argN)

	types := make([]string, 0, len(filter.Types))
	for _, t := range filter.Types {
		types = append(types, string(t))
	}
	args, _ = inClause(&sb, "event_type", types, args, argN)

	sb.WriteString(" ORDER BY created_at DESC, seq ASC")
	return sb.String(), args
}

func scanEvent(row rowScanner) (events.Event, error) {
	var e events.Event
	var typ, privacy string
	if err := row.Scan(
		&e.ID,
		&e.DogID,
		&typ,
		&e.Title,
		&e.Description,
		&privacy,
		&e.CreatedBy,
		&e.CreatedAt,
	); err != nil {
		return events.Event{}, err
	}
	e.Type = events.EventType(typ)
	e.Privacy = access.PrivacyLevel(privacy)
	return e, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/dogs"

	"github.com/jackc/pgx/v5/pgtype"
)

const dogColumns = `
	id, name,
	status, gender, sterilized,
	location_id,
	rescuer_id, foster_id, vet_id, adopter_id,
	tags, notes,
	created_by, created_at, updated_at
`

type DogsRepo struct {
	db *sql.DB
	tm *pgtype.Map
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db, tm: pgtype.NewMap()}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (`+dogColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		d.ID,
		d.Name,
		string(d.Status),
		string(d.Gender),
		d.Sterilized,
		d.LocationID,
		nullString(d.RescuerID),
		nullString(d.FosterID),
		nullString(d.VetID),
		nullString(d.AdopterID),
		tagsOrEmpty(d.Tags),
		d.Notes,
		d.CreatedBy,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return dogs.ErrInvalidInput
	}
	return err
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	if !validID(d.ID) {
		return dogs.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			status = $3,
			gender = $4,
			sterilized = $5,
			rescuer_id = $6,
			foster_id = $7,
			vet_id = $8,
			adopter_id = $9,
			tags = $10,
			notes = $11,
			updated_at = $12
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		string(d.Status),
		string(d.Gender),
		d.Sterilized,
		nullString(d.RescuerID),
		nullString(d.FosterID),
		nullString(d.VetID),
		nullString(d.AdopterID),
		tagsOrEmpty(d.Tags),
		d.Notes,
		d.UpdatedAt,
	)
	if err != nil {
		// rescuer/foster/vet/adopter apuntando a un user inexistente
		if isForeignKeyViolation(err) {
			return dogs.ErrInvalidInput
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id = $1`, id)
	d, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) ListByLocation(ctx context.Context, locationID string, filter dogs.ListFilter) ([]dogs.Dog, error) {
	locationID = strings.TrimSpace(locationID)
	if locationID == "" {
		return []dogs.Dog{}, nil
	}

	query, args := listDogsQuery(locationID, filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func listDogsQuery(locationID string, filter dogs.ListFilter) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + dogColumns + ` FROM dogs WHERE location_id = $1`)
	args := []any{locationID}

	statuses := make([]string, 0, len(filter.Statuses))
	for _, st := range filter.Statuses {
		statuses = append(statuses, string(st))
	}
	args, _ = inClause(&sb, "status", statuses, args, 2)

	sb.WriteString(" ORDER BY created_at DESC")
	return sb.String(), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *DogsRepo) scan(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	var status, gender string
	var rescuer, foster, vet, adopter sql.NullString
	var tags []string

	if err := row.Scan(
		&d.ID,
		&d.Name,
		&status,
		&gender,
		&d.Sterilized,
		&d.LocationID,
		&rescuer,
		&foster,
		&vet,
		&adopter,
		r.tm.SQLScanner(&tags),
		&d.Notes,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return dogs.Dog{}, err
	}

	d.Status = access.DogStatus(status)
	d.Gender = dogs.Gender(gender)
	d.RescuerID = rescuer.String
	d.FosterID = foster.String
	d.VetID = vet.String
	d.AdopterID = adopter.String
	d.Tags = tags
	return d, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

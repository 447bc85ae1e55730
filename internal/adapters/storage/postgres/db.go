package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

//go:embed schema.sql
var schemaSQL string

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate aplica schema.sql. Es idempotente (CREATE ... IF NOT EXISTS).
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// Las PK son uuid: un id mal formado no existe, no se manda a la base.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// inClause agrega " AND <column> IN ($n,...)" y sus args; devuelve el próximo $n.
func inClause(sb *strings.Builder, column string, values []string, args []any, argN int) ([]any, int) {
	if len(values) == 0 {
		return args, argN
	}
	placeholders := make([]string, 0, len(values))
	for _, v := range values {
		placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
		args = append(args, v)
		argN++
	}
	sb.WriteString(" AND " + column + " IN (" + strings.Join(placeholders, ",") + ")")
	return args, argN
}

// IDs de relación opcionales: "" se guarda como NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

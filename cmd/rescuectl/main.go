// rescuectl: tareas de operación fuera de la API.
//
//	rescuectl migrate                       aplica el schema
//	rescuectl promote --user-id ID --role R cambia el rol (bootstrap del primer admin)
//	rescuectl zones                         lista las rescue zones
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	pg "stray-rescue/internal/adapters/storage/postgres"
	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/locations"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage: rescuectl <migrate|promote|zones> [flags]")

func main() {
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "zones":
		return listZones(out)
	case "migrate":
		return migrate(ctx, args[1:], out)
	case "promote":
		return promote(ctx, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func listZones(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCOUNTRY")
	for _, z := range locations.Zones() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", z.Code, z.Name, z.Country)
	}
	return tw.Flush()
}

func migrate(ctx context.Context, args []string, out io.Writer) error {
	var dsn string

	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&dsn, "dsn", os.Getenv("DB_DSN"), "Postgres DSN (default: $DB_DSN)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if dsn == "" {
		return errors.New("--dsn or DB_DSN is required")
	}

	db, err := pg.Open(dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := pg.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(out, "schema applied")
	return nil
}

func promote(ctx context.Context, args []string, out io.Writer) error {
	var dsn, userID, roleFlag string

	fs := pflag.NewFlagSet("promote", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&dsn, "dsn", os.Getenv("DB_DSN"), "Postgres DSN (default: $DB_DSN)")
	fs.StringVar(&userID, "user-id", "", "ID del perfil a modificar")
	fs.StringVar(&roleFlag, "role", string(access.RoleAdmin), "nuevo rol: admin, volunteer, vet, viewer")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role := access.ParseRole(roleFlag)
	if role == access.RoleUnknown {
		return fmt.Errorf("invalid role %q", roleFlag)
	}
	if userID == "" {
		return errors.New("--user-id is required")
	}
	if dsn == "" {
		return errors.New("--dsn or DB_DSN is required")
	}

	db, err := pg.Open(dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	if err := pg.NewUsersRepo(db).UpdateRole(ctx, userID, role, time.Now()); err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	fmt.Fprintf(out, "user %s is now %s\n", userID, role)
	return nil
}

package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"

	"github.com/medivista-dev/hospital-portal/backend/internal/config"
	migrate "github.com/rubenv/sql-migrate"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "roll back the most recent migration instead of applying pending ones")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: "migrations",
	}

	direction := migrate.Up
	limit := 0
	if down {
		direction = migrate.Down
		limit = 1
	}

	n, err := migrate.ExecMax(db, "postgres", migrations, direction, limit)
	if err != nil {
		logger.Error("unable to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.Int("count", n))
}

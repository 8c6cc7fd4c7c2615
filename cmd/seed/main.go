package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/config"
	"github.com/medivista-dev/hospital-portal/backend/internal/repository"
	"github.com/medivista-dev/hospital-portal/backend/internal/seed"
	"github.com/medivista-dev/hospital-portal/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const emailDomain = "medivista.example"

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: seed base data, 2: insert random users, 3: insert random patients, 4: insert random rooms, 5: insert random doctors)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, it only builds the pool, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		seed.SeedBaseData(repo)
	case 2:
		if n <= 0 {
			slog.Error("record count must be positive")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.UserPassword, emailDomain)
			if err != nil {
				slog.Error("unable to generate random user", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("unable to insert user", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("users inserted", slog.Int("count", n-cnt))
	case 3:
		if n <= 0 {
			slog.Error("record count must be positive")
			return
		}

		today := time.Now().Format("2006-01-02")

		cnt := n
		for i := 0; i < n; i++ {
			patient := utils.GenerateRandomPatient(today, emailDomain)
			if err := repo.CreatePatient(patient); err != nil {
				slog.Error("unable to insert patient", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("patients inserted", slog.Int("count", n-cnt))
	case 4:
		if n <= 0 {
			slog.Error("record count must be positive")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			room := utils.GenerateRandomRoom(i + 1)
			if err := repo.CreateRoom(room); err != nil {
				slog.Error("unable to insert room", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("rooms inserted", slog.Int("count", n-cnt))
	case 5:
		if n <= 0 {
			slog.Error("record count must be positive")
			return
		}

		specialties, err := repo.GetAllSpecialties()
		if err != nil {
			slog.Error("unable to load specialties", slog.String("error", err.Error()))
			return
		}
		if len(specialties) == 0 {
			slog.Error("no specialties found, run the base data operation first")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			doctor := utils.GenerateRandomDoctor(specialties[i%len(specialties)].ID, emailDomain)
			if err := repo.CreateDoctor(doctor); err != nil {
				slog.Error("unable to insert doctor", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("doctors inserted", slog.Int("count", n-cnt))
	default:
		slog.Error("unknown operation")
	}
}

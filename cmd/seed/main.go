package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/config"
	"github.com/outpost-ops/taskboard/backend/internal/repository"
	"github.com/outpost-ops/taskboard/backend/internal/seed"
	"github.com/outpost-ops/taskboard/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var siteID int64

	flag.IntVar(&op, "op", 0, "operation (1: insert random people into a site, 2: seed a full demo site)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&siteID, "site-id", 0, "site to insert people into")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("could not create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("could not reach database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if siteID <= 0 {
			slog.Error("need a valid -site-id")
			return
		}
		if n <= 0 {
			slog.Error("need a positive -n")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			person, err := utils.GenerateRandomPerson(siteID, cfg.Seed.User.Password, "outpost-ops.example")
			if err != nil {
				slog.Error("could not generate person", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreatePerson(person); err != nil {
				slog.Error("could not insert person", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("people inserted", slog.Int("count", n-cnt))
	case 2:
		seed.SeedDemoSite(cfg, repo)
	default:
		slog.Error("unknown operation")
	}
}

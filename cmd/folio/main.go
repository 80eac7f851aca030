package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexanderramin/folio/internal/cli"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire storage. Session writes go through the transactor so the user
	// and token keys land together.
	store := repository.NewSQLiteKVStore(database)
	tx := repository.NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Courses: service.NewCourseService(store, logger, observers...),
		Accounts: service.NewAccountService(store, tx, service.AccountConfig{
			AdminUsername: cfg.Auth.AdminUsername,
			AdminPassword: cfg.Auth.AdminPassword,
			Delay:         cfg.Auth.Delay,
		}, logger, observers...),
		Preferences: service.NewPreferenceService(store, observers...),
		Profile:     cfg.Profile,
		HistoryPath: cli.DefaultHistoryPath(),
		Logger:      logger,
	}

	// Detect interactive terminal for the shell entrypoint and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

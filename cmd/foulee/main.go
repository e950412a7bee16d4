package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/npellerin/foulee/internal/catalogue"
	"github.com/npellerin/foulee/internal/cli"
	"github.com/npellerin/foulee/internal/db"
	"github.com/npellerin/foulee/internal/repository"
	"github.com/npellerin/foulee/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load a local .env when present; missing files are fine.
	_ = godotenv.Load()

	// DB path: env var or default ~/.foulee/foulee.db
	dbPath := os.Getenv("FOULEE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".foulee", "foulee.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Session catalogue: a directory of YAML files, or the embedded
	// defaults when none is configured.
	var cat *catalogue.Catalogue
	if dir := os.Getenv("FOULEE_CATALOGUE"); dir != "" {
		cat, err = catalogue.LoadDir(dir)
	} else {
		cat, err = catalogue.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("loading session catalogue: %w", err)
	}

	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("FOULEE_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Profiles:  service.NewProfileService(profileRepo),
		Plans:     service.NewPlanService(profileRepo, planRepo, feedbackRepo, cat, uow, observer),
		Feedback:  service.NewFeedbackService(feedbackRepo),
		Status:    service.NewStatusService(planRepo),
		Catalogue: cat,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/forgeos/forgeplan/internal/cli"
	"github.com/forgeos/forgeplan/internal/config"
	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/forgeos/forgeplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	dealRepo := repository.NewSQLiteDealRepo(database)
	eventRepo := repository.NewSQLiteFixedEventRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	blockRepo := repository.NewSQLiteCalendarBlockRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	settingsSvc := service.NewSettingsService(settingsRepo)
	daySvc := service.NewDayPlanService(taskRepo, settingsSvc, observers...)
	weekSvc := service.NewWeekPlanService(taskRepo, eventRepo, blockRepo, settingsSvc, uow, observers...)

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo, dealRepo),
		Deals:    service.NewDealService(dealRepo),
		Events:   service.NewEventService(eventRepo),
		Settings: settingsSvc,
		DayPlan:  daySvc,
		WeekPlan: weekSvc,
		Replan:   service.NewReplanService(daySvc, weekSvc, observers...),
	}

	// Form prompts and the cal TUI need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

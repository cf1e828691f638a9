package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/forgeos/forgeplan/internal/service"
	"github.com/forgeos/forgeplan/internal/testutil"
)

// testMonday anchors plan-related tests to a fixed week.
var testMonday = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// newTestApp wires a full App over an in-memory database.
func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()

	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	taskRepo := repository.NewSQLiteTaskRepo(database)
	dealRepo := repository.NewSQLiteDealRepo(database)
	eventRepo := repository.NewSQLiteFixedEventRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	blockRepo := repository.NewSQLiteCalendarBlockRepo(database)

	settingsSvc := service.NewSettingsService(settingsRepo)
	daySvc := service.NewDayPlanService(taskRepo, settingsSvc)
	weekSvc := service.NewWeekPlanService(taskRepo, eventRepo, blockRepo, settingsSvc, uow)

	app := &App{
		Tasks:         service.NewTaskService(taskRepo, dealRepo),
		Deals:         service.NewDealService(dealRepo),
		Events:        service.NewEventService(eventRepo),
		Settings:      settingsSvc,
		DayPlan:       daySvc,
		WeekPlan:      weekSvc,
		Replan:        service.NewReplanService(daySvc, weekSvc),
		IsInteractive: func() bool { return false },
	}
	return app, database
}

package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/forgeos/forgeplan/internal/testutil"
)

// testEnv wires the full service stack over one in-memory database.
type testEnv struct {
	db *sql.DB

	tasks  repository.TaskRepo
	deals  repository.DealRepo
	events repository.FixedEventRepo
	blocks repository.CalendarBlockRepo

	taskSvc     TaskService
	dealSvc     DealService
	eventSvc    EventService
	settingsSvc SettingsService
	daySvc      DayPlanService
	weekSvc     WeekPlanService
	replanSvc   ReplanService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	env := &testEnv{
		db:     database,
		tasks:  repository.NewSQLiteTaskRepo(database),
		deals:  repository.NewSQLiteDealRepo(database),
		events: repository.NewSQLiteFixedEventRepo(database),
		blocks: repository.NewSQLiteCalendarBlockRepo(database),
	}
	env.taskSvc = NewTaskService(env.tasks, env.deals)
	env.dealSvc = NewDealService(env.deals)
	env.eventSvc = NewEventService(env.events)
	env.settingsSvc = NewSettingsService(repository.NewSQLiteSettingsRepo(database))
	env.daySvc = NewDayPlanService(env.tasks, env.settingsSvc)
	env.weekSvc = NewWeekPlanService(env.tasks, env.events, env.blocks, env.settingsSvc, uow)
	env.replanSvc = NewReplanService(env.daySvc, env.weekSvc)
	return env
}

// planMonday is a fixed Monday-morning reference used across service tests.
var planMonday = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

package service

import (
	"database/sql"
	"testing"

	"github.com/npellerin/foulee/internal/catalogue"
	"github.com/npellerin/foulee/internal/repository"
	"github.com/npellerin/foulee/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	profiles *repository.SQLiteProfileRepo
	plans    *repository.SQLitePlanRepo
	feedback *repository.SQLiteFeedbackRepo
	cat      *catalogue.Catalogue

	profileSvc  ProfileService
	planSvc     PlanService
	feedbackSvc FeedbackService
	statusSvc   StatusService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	cat, err := catalogue.LoadDefault()
	require.NoError(t, err)

	env := &testEnv{
		db:       database,
		profiles: repository.NewSQLiteProfileRepo(database),
		plans:    repository.NewSQLitePlanRepo(database),
		feedback: repository.NewSQLiteFeedbackRepo(database),
		cat:      cat,
	}
	env.profileSvc = NewProfileService(env.profiles)
	env.planSvc = NewPlanService(env.profiles, env.plans, env.feedback, cat, testutil.NewTestUoW(database))
	env.feedbackSvc = NewFeedbackService(env.feedback)
	env.statusSvc = NewStatusService(env.plans)
	return env
}

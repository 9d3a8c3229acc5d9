package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/ent/task"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

// seedSchedule creates a schedule row. nextRunAt nil leaves the stamp unset,
// which is how freshly created schedules arrive.
func seedSchedule(ctx context.Context, t *testing.T, client *ent.Client, studyID, cronExpr string, nextRunAt *time.Time) *ent.Schedule {
	t.Helper()
	create := client.Schedule.Create().
		SetID(uuid.New().String()).
		SetStudyID(studyID).
		SetCronExpr(cronExpr)
	if nextRunAt != nil {
		create.SetNextRunAt(*nextRunAt)
	}
	sched, err := create.Save(ctx)
	require.NoError(t, err)
	return sched
}

func TestSchedulerFiresDueSchedule(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	template := testutil.SeedStudy(t, client, "https://recurring.example.com")
	testutil.SeedPersona(t, client, template.ID, "Maya")
	testutil.SeedPersona(t, client, template.ID, "Ben")
	testutil.SeedTask(t, client, template.ID, "Find the pricing page", 0)

	due := time.Now().Add(-time.Minute)
	sched := seedSchedule(ctx, t, client, template.ID, "0 * * * *", &due)

	s := NewScheduler(client, intTestQueueConfig())
	require.NoError(t, s.runDueSchedules(ctx))

	// The fire is stamped on the schedule
	fired, err := client.Schedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fired.RunCount)
	require.NotNil(t, fired.LastRunAt)
	require.NotNil(t, fired.NextRunAt)
	assert.True(t, fired.NextRunAt.After(time.Now()), "next run is rescheduled into the future")

	// Exactly one job was enqueued, for a fresh copy of the template
	jobs, err := client.StudyJob.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, studyjob.StatusPending, jobs[0].Status)
	assert.NotEqual(t, template.ID, jobs[0].StudyID, "each fire runs against its own study copy")

	clone, err := client.Study.Get(ctx, jobs[0].StudyID)
	require.NoError(t, err)
	assert.Equal(t, template.URL, clone.URL)
	assert.Equal(t, template.StartingPath, clone.StartingPath)
	assert.Equal(t, study.StatusSetup, clone.Status)

	clonedPersonas, err := client.Persona.Query().
		Where(persona.StudyID(clone.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, clonedPersonas, 2)
	var names []any
	for _, p := range clonedPersonas {
		names = append(names, p.Profile["name"])
	}
	assert.ElementsMatch(t, []any{"Maya", "Ben"}, names)

	clonedTasks, err := client.Task.Query().
		Where(task.StudyID(clone.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, clonedTasks, 1)
	assert.Equal(t, "Find the pricing page", clonedTasks[0].Description)
	assert.Equal(t, 0, clonedTasks[0].OrderIndex)

	// The schedule is no longer due, so another tick fires nothing
	require.NoError(t, s.runDueSchedules(ctx))
	count, err := client.StudyJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSchedulerQuarantinesInvalidCron(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	template := testutil.SeedStudy(t, client, "https://badcron.example.com")
	due := time.Now().Add(-time.Minute)
	sched := seedSchedule(ctx, t, client, template.ID, "every hour", &due)

	s := NewScheduler(client, intTestQueueConfig())
	require.NoError(t, s.runDueSchedules(ctx))

	paused, err := client.Schedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusPaused, paused.Status, "unparseable expressions are quarantined")
	assert.Zero(t, paused.RunCount)

	count, err := client.StudyJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// A paused schedule stays paused on later ticks
	require.NoError(t, s.runDueSchedules(ctx))
	still, err := client.Schedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusPaused, still.Status)
}

func TestSchedulerSkipsFutureSchedules(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	template := testutil.SeedStudy(t, client, "https://future.example.com")
	future := time.Now().Add(time.Hour)
	sched := seedSchedule(ctx, t, client, template.ID, "0 * * * *", &future)

	s := NewScheduler(client, intTestQueueConfig())
	require.NoError(t, s.runDueSchedules(ctx))

	unfired, err := client.Schedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.Zero(t, unfired.RunCount)
	assert.Nil(t, unfired.LastRunAt)

	count, err := client.StudyJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSchedulerInitializesMissingNextRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	template := testutil.SeedStudy(t, client, "https://fresh.example.com")
	sched := seedSchedule(ctx, t, client, template.ID, "0 * * * *", nil)

	s := NewScheduler(client, intTestQueueConfig())
	require.NoError(t, s.runDueSchedules(ctx))

	// The first tick only stamps next_run_at; the fire happens once it is due
	initialized, err := client.Schedule.Get(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, initialized.NextRunAt)
	assert.True(t, initialized.NextRunAt.After(time.Now()))
	assert.Zero(t, initialized.RunCount)

	count, err := client.StudyJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSchedulerFiresOncePerDueTime(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	template := testutil.SeedStudy(t, client, "https://idempotent.example.com")
	testutil.SeedPersona(t, client, template.ID, "Maya")
	testutil.SeedTask(t, client, template.ID, "Check the docs", 0)
	due := time.Now().Add(-time.Minute)
	seedSchedule(ctx, t, client, template.ID, "0 * * * *", &due)

	// Two ticks over the same due stamp: the conditional update lets only
	// one of them claim the fire.
	s := NewScheduler(client, intTestQueueConfig())
	require.NoError(t, s.runDueSchedules(ctx))
	require.NoError(t, s.runDueSchedules(ctx))

	count, err := client.StudyJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSchedulerSkipsPausedSchedules(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	template := testutil.SeedStudy(t, client, "https://paused.example.com")
	due := time.Now().Add(-time.Minute)
	sched := seedSchedule(ctx, t, client, template.ID, "0 * * * *", &due)
	require.NoError(t, client.Schedule.UpdateOneID(sched.ID).
		SetStatus(schedule.StatusPaused).
		Exec(ctx))

	s := NewScheduler(client, intTestQueueConfig())
	require.NoError(t, s.runDueSchedules(ctx))

	count, err := client.StudyJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/schema"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescRank is the schema descriptor for rank field.
	insightDescRank := insightFields[10].Descriptor()
	// insight.DefaultRank holds the default value on creation for the rank field.
	insight.DefaultRank = insightDescRank.Default.(int)
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[11].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	issueFields := schema.Issue{}.Fields()
	_ = issueFields
	// issueDescTimesSeen is the schema descriptor for times_seen field.
	issueDescTimesSeen := issueFields[12].Descriptor()
	// issue.DefaultTimesSeen holds the default value on creation for the times_seen field.
	issue.DefaultTimesSeen = issueDescTimesSeen.Default.(int)
	// issue.TimesSeenValidator is a validator for the "times_seen" field. It is called by the builders before save.
	issue.TimesSeenValidator = issueDescTimesSeen.Validators[0].(func(int) error)
	// issueDescIsRegression is the schema descriptor for is_regression field.
	issueDescIsRegression := issueFields[13].Descriptor()
	// issue.DefaultIsRegression holds the default value on creation for the is_regression field.
	issue.DefaultIsRegression = issueDescIsRegression.Default.(bool)
	// issueDescPriorityScore is the schema descriptor for priority_score field.
	issueDescPriorityScore := issueFields[14].Descriptor()
	// issue.DefaultPriorityScore holds the default value on creation for the priority_score field.
	issue.DefaultPriorityScore = issueDescPriorityScore.Default.(float64)
	// issue.PriorityScoreValidator is a validator for the "priority_score" field. It is called by the builders before save.
	issue.PriorityScoreValidator = issueDescPriorityScore.Validators[0].(func(float64) error)
	// issueDescCreatedAt is the schema descriptor for created_at field.
	issueDescCreatedAt := issueFields[15].Descriptor()
	// issue.DefaultCreatedAt holds the default value on creation for the created_at field.
	issue.DefaultCreatedAt = issueDescCreatedAt.Default.(func() time.Time)
	personaFields := schema.Persona{}.Fields()
	_ = personaFields
	// personaDescCreatedAt is the schema descriptor for created_at field.
	personaDescCreatedAt := personaFields[5].Descriptor()
	// persona.DefaultCreatedAt holds the default value on creation for the created_at field.
	persona.DefaultCreatedAt = personaDescCreatedAt.Default.(func() time.Time)
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescRunCount is the schema descriptor for run_count field.
	scheduleDescRunCount := scheduleFields[6].Descriptor()
	// schedule.DefaultRunCount holds the default value on creation for the run_count field.
	schedule.DefaultRunCount = scheduleDescRunCount.Default.(int)
	// scheduleDescCreatedAt is the schema descriptor for created_at field.
	scheduleDescCreatedAt := scheduleFields[7].Descriptor()
	// schedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedule.DefaultCreatedAt = scheduleDescCreatedAt.Default.(func() time.Time)
	// scheduleDescUpdatedAt is the schema descriptor for updated_at field.
	scheduleDescUpdatedAt := scheduleFields[8].Descriptor()
	// schedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedule.DefaultUpdatedAt = scheduleDescUpdatedAt.Default.(func() time.Time)
	// schedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedule.UpdateDefaultUpdatedAt = scheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescTotalSteps is the schema descriptor for total_steps field.
	sessionDescTotalSteps := sessionFields[5].Descriptor()
	// session.DefaultTotalSteps holds the default value on creation for the total_steps field.
	session.DefaultTotalSteps = sessionDescTotalSteps.Default.(int)
	// sessionDescTaskCompleted is the schema descriptor for task_completed field.
	sessionDescTaskCompleted := sessionFields[6].Descriptor()
	// session.DefaultTaskCompleted holds the default value on creation for the task_completed field.
	session.DefaultTaskCompleted = sessionDescTaskCompleted.Default.(bool)
	// sessionDescUxScore is the schema descriptor for ux_score field.
	sessionDescUxScore := sessionFields[9].Descriptor()
	// session.UxScoreValidator is a validator for the "ux_score" field. It is called by the builders before save.
	session.UxScoreValidator = sessionDescUxScore.Validators[0].(func(int) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[13].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescStepNumber is the schema descriptor for step_number field.
	stepDescStepNumber := stepFields[2].Descriptor()
	// step.StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	step.StepNumberValidator = stepDescStepNumber.Validators[0].(func(int) error)
	// stepDescConfidence is the schema descriptor for confidence field.
	stepDescConfidence := stepFields[8].Descriptor()
	// step.DefaultConfidence holds the default value on creation for the confidence field.
	step.DefaultConfidence = stepDescConfidence.Default.(float64)
	// stepDescTaskProgress is the schema descriptor for task_progress field.
	stepDescTaskProgress := stepFields[9].Descriptor()
	// step.DefaultTaskProgress holds the default value on creation for the task_progress field.
	step.DefaultTaskProgress = stepDescTaskProgress.Default.(int)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[19].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	studyFields := schema.Study{}.Fields()
	_ = studyFields
	// studyDescStartingPath is the schema descriptor for starting_path field.
	studyDescStartingPath := studyFields[2].Descriptor()
	// study.DefaultStartingPath holds the default value on creation for the starting_path field.
	study.DefaultStartingPath = studyDescStartingPath.Default.(string)
	// studyDescOverallScore is the schema descriptor for overall_score field.
	studyDescOverallScore := studyFields[7].Descriptor()
	// study.OverallScoreValidator is a validator for the "overall_score" field. It is called by the builders before save.
	study.OverallScoreValidator = studyDescOverallScore.Validators[0].(func(int) error)
	// studyDescCreatedAt is the schema descriptor for created_at field.
	studyDescCreatedAt := studyFields[11].Descriptor()
	// study.DefaultCreatedAt holds the default value on creation for the created_at field.
	study.DefaultCreatedAt = studyDescCreatedAt.Default.(func() time.Time)
	// studyDescUpdatedAt is the schema descriptor for updated_at field.
	studyDescUpdatedAt := studyFields[12].Descriptor()
	// study.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	study.DefaultUpdatedAt = studyDescUpdatedAt.Default.(func() time.Time)
	// study.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	study.UpdateDefaultUpdatedAt = studyDescUpdatedAt.UpdateDefault.(func() time.Time)
	studyjobFields := schema.StudyJob{}.Fields()
	_ = studyjobFields
	// studyjobDescAttempts is the schema descriptor for attempts field.
	studyjobDescAttempts := studyjobFields[4].Descriptor()
	// studyjob.DefaultAttempts holds the default value on creation for the attempts field.
	studyjob.DefaultAttempts = studyjobDescAttempts.Default.(int)
	// studyjobDescMaxAttempts is the schema descriptor for max_attempts field.
	studyjobDescMaxAttempts := studyjobFields[5].Descriptor()
	// studyjob.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	studyjob.DefaultMaxAttempts = studyjobDescMaxAttempts.Default.(int)
	// studyjobDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	studyjobDescTimeoutSeconds := studyjobFields[6].Descriptor()
	// studyjob.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	studyjob.DefaultTimeoutSeconds = studyjobDescTimeoutSeconds.Default.(int)
	// studyjobDescCreatedAt is the schema descriptor for created_at field.
	studyjobDescCreatedAt := studyjobFields[11].Descriptor()
	// studyjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyjob.DefaultCreatedAt = studyjobDescCreatedAt.Default.(func() time.Time)
	// studyjobDescUpdatedAt is the schema descriptor for updated_at field.
	studyjobDescUpdatedAt := studyjobFields[12].Descriptor()
	// studyjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studyjob.DefaultUpdatedAt = studyjobDescUpdatedAt.Default.(func() time.Time)
	// studyjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studyjob.UpdateDefaultUpdatedAt = studyjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[4].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package study

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the study type in the database.
	Label = "study"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "study_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldStartingPath holds the string denoting the starting_path field in the database.
	FieldStartingPath = "starting_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBrowserMode holds the string denoting the browser_mode field in the database.
	FieldBrowserMode = "browser_mode"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldExecutiveSummary holds the string denoting the executive_summary field in the database.
	FieldExecutiveSummary = "executive_summary"
	// FieldCostBreakdown holds the string denoting the cost_breakdown field in the database.
	FieldCostBreakdown = "cost_breakdown"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgePersonas holds the string denoting the personas edge name in mutations.
	EdgePersonas = "personas"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeIssues holds the string denoting the issues edge name in mutations.
	EdgeIssues = "issues"
	// EdgeInsights holds the string denoting the insights edge name in mutations.
	EdgeInsights = "insights"
	// EdgeSchedules holds the string denoting the schedules edge name in mutations.
	EdgeSchedules = "schedules"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// PersonaFieldID holds the string denoting the ID field of the Persona.
	PersonaFieldID = "persona_id"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// IssueFieldID holds the string denoting the ID field of the Issue.
	IssueFieldID = "issue_id"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "insight_id"
	// ScheduleFieldID holds the string denoting the ID field of the Schedule.
	ScheduleFieldID = "schedule_id"
	// StudyJobFieldID holds the string denoting the ID field of the StudyJob.
	StudyJobFieldID = "job_id"
	// Table holds the table name of the study in the database.
	Table = "studies"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "study_id"
	// PersonasTable is the table that holds the personas relation/edge.
	PersonasTable = "personas"
	// PersonasInverseTable is the table name for the Persona entity.
	// It exists in this package in order to avoid circular dependency with the "persona" package.
	PersonasInverseTable = "personas"
	// PersonasColumn is the table column denoting the personas relation/edge.
	PersonasColumn = "study_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "sessions"
	// SessionsInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionsInverseTable = "sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "study_id"
	// IssuesTable is the table that holds the issues relation/edge.
	IssuesTable = "issues"
	// IssuesInverseTable is the table name for the Issue entity.
	// It exists in this package in order to avoid circular dependency with the "issue" package.
	IssuesInverseTable = "issues"
	// IssuesColumn is the table column denoting the issues relation/edge.
	IssuesColumn = "study_id"
	// InsightsTable is the table that holds the insights relation/edge.
	InsightsTable = "insights"
	// InsightsInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightsInverseTable = "insights"
	// InsightsColumn is the table column denoting the insights relation/edge.
	InsightsColumn = "study_id"
	// SchedulesTable is the table that holds the schedules relation/edge.
	SchedulesTable = "schedules"
	// SchedulesInverseTable is the table name for the Schedule entity.
	// It exists in this package in order to avoid circular dependency with the "schedule" package.
	SchedulesInverseTable = "schedules"
	// SchedulesColumn is the table column denoting the schedules relation/edge.
	SchedulesColumn = "study_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "study_jobs"
	// JobsInverseTable is the table name for the StudyJob entity.
	// It exists in this package in order to avoid circular dependency with the "studyjob" package.
	JobsInverseTable = "study_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "study_id"
)

// Columns holds all SQL columns for study fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldStartingPath,
	FieldStatus,
	FieldBrowserMode,
	FieldStartedAt,
	FieldDurationSeconds,
	FieldOverallScore,
	FieldExecutiveSummary,
	FieldCostBreakdown,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartingPath holds the default value on creation for the "starting_path" field.
	DefaultStartingPath string
	// OverallScoreValidator is a validator for the "overall_score" field. It is called by the builders before save.
	OverallScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusSetup is the default value of the Status enum.
const DefaultStatus = StatusSetup

// Status values.
const (
	StatusSetup     Status = "setup"
	StatusRunning   Status = "running"
	StatusAnalyzing Status = "analyzing"
	StatusComplete  Status = "complete"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSetup, StatusRunning, StatusAnalyzing, StatusComplete, StatusFailed:
		return nil
	default:
		return fmt.Errorf("study: invalid enum value for status field: %q", s)
	}
}

// BrowserMode defines the type for the "browser_mode" enum field.
type BrowserMode string

// BrowserMode values.
const (
	BrowserModeLocal BrowserMode = "local"
	BrowserModeCloud BrowserMode = "cloud"
)

func (bm BrowserMode) String() string {
	return string(bm)
}

// BrowserModeValidator is a validator for the "browser_mode" field enum values. It is called by the builders before save.
func BrowserModeValidator(bm BrowserMode) error {
	switch bm {
	case BrowserModeLocal, BrowserModeCloud:
		return nil
	default:
		return fmt.Errorf("study: invalid enum value for browser_mode field: %q", bm)
	}
}

// OrderOption defines the ordering options for the Study queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByStartingPath orders the results by the starting_path field.
func ByStartingPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartingPath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBrowserMode orders the results by the browser_mode field.
func ByBrowserMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrowserMode, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByExecutiveSummary orders the results by the executive_summary field.
func ByExecutiveSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutiveSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPersonasCount orders the results by personas count.
func ByPersonasCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPersonasStep(), opts...)
	}
}

// ByPersonas orders the results by personas terms.
func ByPersonas(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPersonasStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIssuesCount orders the results by issues count.
func ByIssuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIssuesStep(), opts...)
	}
}

// ByIssues orders the results by issues terms.
func ByIssues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIssuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInsightsCount orders the results by insights count.
func ByInsightsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInsightsStep(), opts...)
	}
}

// ByInsights orders the results by insights terms.
func ByInsights(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySchedulesCount orders the results by schedules count.
func BySchedulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSchedulesStep(), opts...)
	}
}

// BySchedules orders the results by schedules terms.
func BySchedules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSchedulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newPersonasStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PersonasInverseTable, PersonaFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PersonasTable, PersonasColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newIssuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssuesInverseTable, IssueFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
	)
}
func newInsightsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightsInverseTable, InsightFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
	)
}
func newSchedulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SchedulesInverseTable, ScheduleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SchedulesTable, SchedulesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, StudyJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}

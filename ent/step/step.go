// Code generated by ent, DO NOT EDIT.

package step

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the step type in the database.
	Label = "step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStepNumber holds the string denoting the step_number field in the database.
	FieldStepNumber = "step_number"
	// FieldPageURL holds the string denoting the page_url field in the database.
	FieldPageURL = "page_url"
	// FieldPageTitle holds the string denoting the page_title field in the database.
	FieldPageTitle = "page_title"
	// FieldScreenshotRef holds the string denoting the screenshot_ref field in the database.
	FieldScreenshotRef = "screenshot_ref"
	// FieldThinkAloud holds the string denoting the think_aloud field in the database.
	FieldThinkAloud = "think_aloud"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTaskProgress holds the string denoting the task_progress field in the database.
	FieldTaskProgress = "task_progress"
	// FieldEmotionalState holds the string denoting the emotional_state field in the database.
	FieldEmotionalState = "emotional_state"
	// FieldClickX holds the string denoting the click_x field in the database.
	FieldClickX = "click_x"
	// FieldClickY holds the string denoting the click_y field in the database.
	FieldClickY = "click_y"
	// FieldViewportW holds the string denoting the viewport_w field in the database.
	FieldViewportW = "viewport_w"
	// FieldViewportH holds the string denoting the viewport_h field in the database.
	FieldViewportH = "viewport_h"
	// FieldScrollY holds the string denoting the scroll_y field in the database.
	FieldScrollY = "scroll_y"
	// FieldMaxScrollY holds the string denoting the max_scroll_y field in the database.
	FieldMaxScrollY = "max_scroll_y"
	// FieldLoadTimeMs holds the string denoting the load_time_ms field in the database.
	FieldLoadTimeMs = "load_time_ms"
	// FieldFirstPaintMs holds the string denoting the first_paint_ms field in the database.
	FieldFirstPaintMs = "first_paint_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeIssues holds the string denoting the issues edge name in mutations.
	EdgeIssues = "issues"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// IssueFieldID holds the string denoting the ID field of the Issue.
	IssueFieldID = "issue_id"
	// Table holds the table name of the step in the database.
	Table = "steps"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "steps"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// IssuesTable is the table that holds the issues relation/edge.
	IssuesTable = "issues"
	// IssuesInverseTable is the table name for the Issue entity.
	// It exists in this package in order to avoid circular dependency with the "issue" package.
	IssuesInverseTable = "issues"
	// IssuesColumn is the table column denoting the issues relation/edge.
	IssuesColumn = "step_id"
)

// Columns holds all SQL columns for step fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldStepNumber,
	FieldPageURL,
	FieldPageTitle,
	FieldScreenshotRef,
	FieldThinkAloud,
	FieldAction,
	FieldConfidence,
	FieldTaskProgress,
	FieldEmotionalState,
	FieldClickX,
	FieldClickY,
	FieldViewportW,
	FieldViewportH,
	FieldScrollY,
	FieldMaxScrollY,
	FieldLoadTimeMs,
	FieldFirstPaintMs,
	FieldCreatedAt,
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
	// StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	StepNumberValidator func(int) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultTaskProgress holds the default value on creation for the "task_progress" field.
	DefaultTaskProgress int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EmotionalState defines the type for the "emotional_state" enum field.
type EmotionalState string

// EmotionalStateNeutral is the default value of the EmotionalState enum.
const DefaultEmotionalState = EmotionalStateNeutral

// EmotionalState values.
const (
	EmotionalStateCurious    EmotionalState = "curious"
	EmotionalStateConfident  EmotionalState = "confident"
	EmotionalStateConfused   EmotionalState = "confused"
	EmotionalStateFrustrated EmotionalState = "frustrated"
	EmotionalStateAnxious    EmotionalState = "anxious"
	EmotionalStateSatisfied  EmotionalState = "satisfied"
	EmotionalStateNeutral    EmotionalState = "neutral"
)

func (es EmotionalState) String() string {
	return string(es)
}

// EmotionalStateValidator is a validator for the "emotional_state" field enum values. It is called by the builders before save.
func EmotionalStateValidator(es EmotionalState) error {
	switch es {
	case EmotionalStateCurious, EmotionalStateConfident, EmotionalStateConfused, EmotionalStateFrustrated, EmotionalStateAnxious, EmotionalStateSatisfied, EmotionalStateNeutral:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for emotional_state field: %q", es)
	}
}

// OrderOption defines the ordering options for the Step queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStepNumber orders the results by the step_number field.
func ByStepNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepNumber, opts...).ToFunc()
}

// ByPageURL orders the results by the page_url field.
func ByPageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageURL, opts...).ToFunc()
}

// ByPageTitle orders the results by the page_title field.
func ByPageTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageTitle, opts...).ToFunc()
}

// ByScreenshotRef orders the results by the screenshot_ref field.
func ByScreenshotRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreenshotRef, opts...).ToFunc()
}

// ByThinkAloud orders the results by the think_aloud field.
func ByThinkAloud(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThinkAloud, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTaskProgress orders the results by the task_progress field.
func ByTaskProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskProgress, opts...).ToFunc()
}

// ByEmotionalState orders the results by the emotional_state field.
func ByEmotionalState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotionalState, opts...).ToFunc()
}

// ByClickX orders the results by the click_x field.
func ByClickX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickX, opts...).ToFunc()
}

// ByClickY orders the results by the click_y field.
func ByClickY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickY, opts...).ToFunc()
}

// ByViewportW orders the results by the viewport_w field.
func ByViewportW(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewportW, opts...).ToFunc()
}

// ByViewportH orders the results by the viewport_h field.
func ByViewportH(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewportH, opts...).ToFunc()
}

// ByScrollY orders the results by the scroll_y field.
func ByScrollY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrollY, opts...).ToFunc()
}

// ByMaxScrollY orders the results by the max_scroll_y field.
func ByMaxScrollY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScrollY, opts...).ToFunc()
}

// ByLoadTimeMs orders the results by the load_time_ms field.
func ByLoadTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadTimeMs, opts...).ToFunc()
}

// ByFirstPaintMs orders the results by the first_paint_ms field.
func ByFirstPaintMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstPaintMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
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
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newIssuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssuesInverseTable, IssueFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
	)
}

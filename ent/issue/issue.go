// Code generated by ent, DO NOT EDIT.

package issue

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the issue type in the database.
	Label = "issue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "issue_id"
	// FieldStudyID holds the string denoting the study_id field in the database.
	FieldStudyID = "study_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldElement holds the string denoting the element field in the database.
	FieldElement = "element"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldIssueType holds the string denoting the issue_type field in the database.
	FieldIssueType = "issue_type"
	// FieldHeuristic holds the string denoting the heuristic field in the database.
	FieldHeuristic = "heuristic"
	// FieldWcagCriterion holds the string denoting the wcag_criterion field in the database.
	FieldWcagCriterion = "wcag_criterion"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldPageURL holds the string denoting the page_url field in the database.
	FieldPageURL = "page_url"
	// FieldTimesSeen holds the string denoting the times_seen field in the database.
	FieldTimesSeen = "times_seen"
	// FieldIsRegression holds the string denoting the is_regression field in the database.
	FieldIsRegression = "is_regression"
	// FieldPriorityScore holds the string denoting the priority_score field in the database.
	FieldPriorityScore = "priority_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeStudy holds the string denoting the study edge name in mutations.
	EdgeStudy = "study"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeStep holds the string denoting the step edge name in mutations.
	EdgeStep = "step"
	// StudyFieldID holds the string denoting the ID field of the Study.
	StudyFieldID = "study_id"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// Table holds the table name of the issue in the database.
	Table = "issues"
	// StudyTable is the table that holds the study relation/edge.
	StudyTable = "issues"
	// StudyInverseTable is the table name for the Study entity.
	// It exists in this package in order to avoid circular dependency with the "study" package.
	StudyInverseTable = "studies"
	// StudyColumn is the table column denoting the study relation/edge.
	StudyColumn = "study_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "issues"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// StepTable is the table that holds the step relation/edge.
	StepTable = "issues"
	// StepInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepInverseTable = "steps"
	// StepColumn is the table column denoting the step relation/edge.
	StepColumn = "step_id"
)

// Columns holds all SQL columns for issue fields.
var Columns = []string{
	FieldID,
	FieldStudyID,
	FieldSessionID,
	FieldStepID,
	FieldElement,
	FieldDescription,
	FieldSeverity,
	FieldIssueType,
	FieldHeuristic,
	FieldWcagCriterion,
	FieldRecommendation,
	FieldPageURL,
	FieldTimesSeen,
	FieldIsRegression,
	FieldPriorityScore,
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
	// DefaultTimesSeen holds the default value on creation for the "times_seen" field.
	DefaultTimesSeen int
	// TimesSeenValidator is a validator for the "times_seen" field. It is called by the builders before save.
	TimesSeenValidator func(int) error
	// DefaultIsRegression holds the default value on creation for the "is_regression" field.
	DefaultIsRegression bool
	// DefaultPriorityScore holds the default value on creation for the "priority_score" field.
	DefaultPriorityScore float64
	// PriorityScoreValidator is a validator for the "priority_score" field. It is called by the builders before save.
	PriorityScoreValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityMinor is the default value of the Severity enum.
const DefaultSeverity = SeverityMinor

// Severity values.
const (
	SeverityCritical    Severity = "critical"
	SeverityMajor       Severity = "major"
	SeverityMinor       Severity = "minor"
	SeverityEnhancement Severity = "enhancement"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor, SeverityEnhancement:
		return nil
	default:
		return fmt.Errorf("issue: invalid enum value for severity field: %q", s)
	}
}

// IssueType defines the type for the "issue_type" enum field.
type IssueType string

// IssueTypeUx is the default value of the IssueType enum.
const DefaultIssueType = IssueTypeUx

// IssueType values.
const (
	IssueTypeUx            IssueType = "ux"
	IssueTypeAccessibility IssueType = "accessibility"
	IssueTypeError         IssueType = "error"
	IssueTypePerformance   IssueType = "performance"
)

func (it IssueType) String() string {
	return string(it)
}

// IssueTypeValidator is a validator for the "issue_type" field enum values. It is called by the builders before save.
func IssueTypeValidator(it IssueType) error {
	switch it {
	case IssueTypeUx, IssueTypeAccessibility, IssueTypeError, IssueTypePerformance:
		return nil
	default:
		return fmt.Errorf("issue: invalid enum value for issue_type field: %q", it)
	}
}

// OrderOption defines the ordering options for the Issue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudyID orders the results by the study_id field.
func ByStudyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByElement orders the results by the element field.
func ByElement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElement, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByIssueType orders the results by the issue_type field.
func ByIssueType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueType, opts...).ToFunc()
}

// ByHeuristic orders the results by the heuristic field.
func ByHeuristic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeuristic, opts...).ToFunc()
}

// ByWcagCriterion orders the results by the wcag_criterion field.
func ByWcagCriterion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWcagCriterion, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByPageURL orders the results by the page_url field.
func ByPageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageURL, opts...).ToFunc()
}

// ByTimesSeen orders the results by the times_seen field.
func ByTimesSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesSeen, opts...).ToFunc()
}

// ByIsRegression orders the results by the is_regression field.
func ByIsRegression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRegression, opts...).ToFunc()
}

// ByPriorityScore orders the results by the priority_score field.
func ByPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStudyField orders the results by study field.
func ByStudyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudyStep(), sql.OrderByField(field, opts...))
	}
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepField orders the results by step field.
func ByStepField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepStep(), sql.OrderByField(field, opts...))
	}
}
func newStudyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudyInverseTable, StudyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newStepStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
	)
}

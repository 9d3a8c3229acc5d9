// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the schedule type in the database.
	Label = "schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "schedule_id"
	// FieldStudyID holds the string denoting the study_id field in the database.
	FieldStudyID = "study_id"
	// FieldCronExpr holds the string denoting the cron_expr field in the database.
	FieldCronExpr = "cron_expr"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldRunCount holds the string denoting the run_count field in the database.
	FieldRunCount = "run_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStudy holds the string denoting the study edge name in mutations.
	EdgeStudy = "study"
	// StudyFieldID holds the string denoting the ID field of the Study.
	StudyFieldID = "study_id"
	// Table holds the table name of the schedule in the database.
	Table = "schedules"
	// StudyTable is the table that holds the study relation/edge.
	StudyTable = "schedules"
	// StudyInverseTable is the table name for the Study entity.
	// It exists in this package in order to avoid circular dependency with the "study" package.
	StudyInverseTable = "studies"
	// StudyColumn is the table column denoting the study relation/edge.
	StudyColumn = "study_id"
)

// Columns holds all SQL columns for schedule fields.
var Columns = []string{
	FieldID,
	FieldStudyID,
	FieldCronExpr,
	FieldStatus,
	FieldNextRunAt,
	FieldLastRunAt,
	FieldRunCount,
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
	// DefaultRunCount holds the default value on creation for the "run_count" field.
	DefaultRunCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused:
		return nil
	default:
		return fmt.Errorf("schedule: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Schedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudyID orders the results by the study_id field.
func ByStudyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyID, opts...).ToFunc()
}

// ByCronExpr orders the results by the cron_expr field.
func ByCronExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpr, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByRunCount orders the results by the run_count field.
func ByRunCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStudyField orders the results by study field.
func ByStudyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudyStep(), sql.OrderByField(field, opts...))
	}
}
func newStudyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudyInverseTable, StudyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
	)
}

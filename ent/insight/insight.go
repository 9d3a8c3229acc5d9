// Code generated by ent, DO NOT EDIT.

package insight

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the insight type in the database.
	Label = "insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "insight_id"
	// FieldStudyID holds the string denoting the study_id field in the database.
	FieldStudyID = "study_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldImpact holds the string denoting the impact field in the database.
	FieldImpact = "impact"
	// FieldEffort holds the string denoting the effort field in the database.
	FieldEffort = "effort"
	// FieldPersonasAffected holds the string denoting the personas_affected field in the database.
	FieldPersonasAffected = "personas_affected"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeStudy holds the string denoting the study edge name in mutations.
	EdgeStudy = "study"
	// StudyFieldID holds the string denoting the ID field of the Study.
	StudyFieldID = "study_id"
	// Table holds the table name of the insight in the database.
	Table = "insights"
	// StudyTable is the table that holds the study relation/edge.
	StudyTable = "insights"
	// StudyInverseTable is the table name for the Study entity.
	// It exists in this package in order to avoid circular dependency with the "study" package.
	StudyInverseTable = "studies"
	// StudyColumn is the table column denoting the study relation/edge.
	StudyColumn = "study_id"
)

// Columns holds all SQL columns for insight fields.
var Columns = []string{
	FieldID,
	FieldStudyID,
	FieldType,
	FieldTitle,
	FieldDescription,
	FieldSeverity,
	FieldImpact,
	FieldEffort,
	FieldPersonasAffected,
	FieldEvidence,
	FieldRank,
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
	// DefaultRank holds the default value on creation for the "rank" field.
	DefaultRank int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeUniversal       Type = "universal"
	TypePersonaSpecific Type = "persona_specific"
	TypeComparative     Type = "comparative"
	TypeRecommendation  Type = "recommendation"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeUniversal, TypePersonaSpecific, TypeComparative, TypeRecommendation:
		return nil
	default:
		return fmt.Errorf("insight: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Insight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudyID orders the results by the study_id field.
func ByStudyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByImpact orders the results by the impact field.
func ByImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpact, opts...).ToFunc()
}

// ByEffort orders the results by the effort field.
func ByEffort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffort, opts...).ToFunc()
}

// ByEvidence orders the results by the evidence field.
func ByEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidence, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
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
func newStudyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudyInverseTable, StudyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
	)
}

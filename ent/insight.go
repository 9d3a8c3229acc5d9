// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/study"
)

// Insight is the model entity for the Insight schema.
type Insight struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudyID holds the value of the "study_id" field.
	StudyID string `json:"study_id,omitempty"`
	// Type holds the value of the "type" field.
	Type insight.Type `json:"type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity *string `json:"severity,omitempty"`
	// Impact holds the value of the "impact" field.
	Impact *string `json:"impact,omitempty"`
	// Effort holds the value of the "effort" field.
	Effort *string `json:"effort,omitempty"`
	// PersonasAffected holds the value of the "personas_affected" field.
	PersonasAffected []string `json:"personas_affected,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence *string `json:"evidence,omitempty"`
	// Rank holds the value of the "rank" field.
	Rank int `json:"rank,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsightQuery when eager-loading is set.
	Edges        InsightEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsightEdges holds the relations/edges for other nodes in the graph.
type InsightEdges struct {
	// Study holds the value of the study edge.
	Study *Study `json:"study,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StudyOrErr returns the Study value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InsightEdges) StudyOrErr() (*Study, error) {
	if e.Study != nil {
		return e.Study, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: study.Label}
	}
	return nil, &NotLoadedError{edge: "study"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Insight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insight.FieldPersonasAffected:
			values[i] = new([]byte)
		case insight.FieldRank:
			values[i] = new(sql.NullInt64)
		case insight.FieldID, insight.FieldStudyID, insight.FieldType, insight.FieldTitle, insight.FieldDescription, insight.FieldSeverity, insight.FieldImpact, insight.FieldEffort, insight.FieldEvidence:
			values[i] = new(sql.NullString)
		case insight.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Insight fields.
func (_m *Insight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insight.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case insight.FieldStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_id", values[i])
			} else if value.Valid {
				_m.StudyID = value.String
			}
		case insight.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = insight.Type(value.String)
			}
		case insight.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case insight.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case insight.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = new(string)
				*_m.Severity = value.String
			}
		case insight.FieldImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field impact", values[i])
			} else if value.Valid {
				_m.Impact = new(string)
				*_m.Impact = value.String
			}
		case insight.FieldEffort:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field effort", values[i])
			} else if value.Valid {
				_m.Effort = new(string)
				*_m.Effort = value.String
			}
		case insight.FieldPersonasAffected:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field personas_affected", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PersonasAffected); err != nil {
					return fmt.Errorf("unmarshal field personas_affected: %w", err)
				}
			}
		case insight.FieldEvidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value.Valid {
				_m.Evidence = new(string)
				*_m.Evidence = value.String
			}
		case insight.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = int(value.Int64)
			}
		case insight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Insight.
// This includes values selected through modifiers, order, etc.
func (_m *Insight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudy queries the "study" edge of the Insight entity.
func (_m *Insight) QueryStudy() *StudyQuery {
	return NewInsightClient(_m.config).QueryStudy(_m)
}

// Update returns a builder for updating this Insight.
// Note that you need to call Insight.Unwrap() before calling this method if this Insight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Insight) Update() *InsightUpdateOne {
	return NewInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Insight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Insight) Unwrap() *Insight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Insight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Insight) String() string {
	var builder strings.Builder
	builder.WriteString("Insight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_id=")
	builder.WriteString(_m.StudyID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.Severity; v != nil {
		builder.WriteString("severity=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Impact; v != nil {
		builder.WriteString("impact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Effort; v != nil {
		builder.WriteString("effort=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("personas_affected=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonasAffected))
	builder.WriteString(", ")
	if v := _m.Evidence; v != nil {
		builder.WriteString("evidence=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Insights is a parsable slice of Insight.
type Insights []*Insight

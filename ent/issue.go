// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/study"
)

// Issue is the model entity for the Issue schema.
type Issue struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudyID holds the value of the "study_id" field.
	StudyID string `json:"study_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID *string `json:"step_id,omitempty"`
	// CSS selector or human description of the element
	Element string `json:"element,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity issue.Severity `json:"severity,omitempty"`
	// IssueType holds the value of the "issue_type" field.
	IssueType issue.IssueType `json:"issue_type,omitempty"`
	// Nielsen heuristic, when the model names one
	Heuristic *string `json:"heuristic,omitempty"`
	// WcagCriterion holds the value of the "wcag_criterion" field.
	WcagCriterion *string `json:"wcag_criterion,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation *string `json:"recommendation,omitempty"`
	// PageURL holds the value of the "page_url" field.
	PageURL string `json:"page_url,omitempty"`
	// TimesSeen holds the value of the "times_seen" field.
	TimesSeen int `json:"times_seen,omitempty"`
	// IsRegression holds the value of the "is_regression" field.
	IsRegression bool `json:"is_regression,omitempty"`
	// PriorityScore holds the value of the "priority_score" field.
	PriorityScore float64 `json:"priority_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IssueQuery when eager-loading is set.
	Edges        IssueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IssueEdges holds the relations/edges for other nodes in the graph.
type IssueEdges struct {
	// Study holds the value of the study edge.
	Study *Study `json:"study,omitempty"`
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Step holds the value of the step edge.
	Step *Step `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StudyOrErr returns the Study value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IssueEdges) StudyOrErr() (*Study, error) {
	if e.Study != nil {
		return e.Study, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: study.Label}
	}
	return nil, &NotLoadedError{edge: "study"}
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IssueEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IssueEdges) StepOrErr() (*Step, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: step.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Issue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case issue.FieldIsRegression:
			values[i] = new(sql.NullBool)
		case issue.FieldPriorityScore:
			values[i] = new(sql.NullFloat64)
		case issue.FieldTimesSeen:
			values[i] = new(sql.NullInt64)
		case issue.FieldID, issue.FieldStudyID, issue.FieldSessionID, issue.FieldStepID, issue.FieldElement, issue.FieldDescription, issue.FieldSeverity, issue.FieldIssueType, issue.FieldHeuristic, issue.FieldWcagCriterion, issue.FieldRecommendation, issue.FieldPageURL:
			values[i] = new(sql.NullString)
		case issue.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Issue fields.
func (_m *Issue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case issue.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case issue.FieldStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_id", values[i])
			} else if value.Valid {
				_m.StudyID = value.String
			}
		case issue.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case issue.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = new(string)
				*_m.StepID = value.String
			}
		case issue.FieldElement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element", values[i])
			} else if value.Valid {
				_m.Element = value.String
			}
		case issue.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case issue.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = issue.Severity(value.String)
			}
		case issue.FieldIssueType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_type", values[i])
			} else if value.Valid {
				_m.IssueType = issue.IssueType(value.String)
			}
		case issue.FieldHeuristic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field heuristic", values[i])
			} else if value.Valid {
				_m.Heuristic = new(string)
				*_m.Heuristic = value.String
			}
		case issue.FieldWcagCriterion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wcag_criterion", values[i])
			} else if value.Valid {
				_m.WcagCriterion = new(string)
				*_m.WcagCriterion = value.String
			}
		case issue.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = new(string)
				*_m.Recommendation = value.String
			}
		case issue.FieldPageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_url", values[i])
			} else if value.Valid {
				_m.PageURL = value.String
			}
		case issue.FieldTimesSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_seen", values[i])
			} else if value.Valid {
				_m.TimesSeen = int(value.Int64)
			}
		case issue.FieldIsRegression:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_regression", values[i])
			} else if value.Valid {
				_m.IsRegression = value.Bool
			}
		case issue.FieldPriorityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_score", values[i])
			} else if value.Valid {
				_m.PriorityScore = value.Float64
			}
		case issue.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Issue.
// This includes values selected through modifiers, order, etc.
func (_m *Issue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudy queries the "study" edge of the Issue entity.
func (_m *Issue) QueryStudy() *StudyQuery {
	return NewIssueClient(_m.config).QueryStudy(_m)
}

// QuerySession queries the "session" edge of the Issue entity.
func (_m *Issue) QuerySession() *SessionQuery {
	return NewIssueClient(_m.config).QuerySession(_m)
}

// QueryStep queries the "step" edge of the Issue entity.
func (_m *Issue) QueryStep() *StepQuery {
	return NewIssueClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this Issue.
// Note that you need to call Issue.Unwrap() before calling this method if this Issue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Issue) Update() *IssueUpdateOne {
	return NewIssueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Issue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Issue) Unwrap() *Issue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Issue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Issue) String() string {
	var builder strings.Builder
	builder.WriteString("Issue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_id=")
	builder.WriteString(_m.StudyID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.StepID; v != nil {
		builder.WriteString("step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("element=")
	builder.WriteString(_m.Element)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("issue_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssueType))
	builder.WriteString(", ")
	if v := _m.Heuristic; v != nil {
		builder.WriteString("heuristic=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WcagCriterion; v != nil {
		builder.WriteString("wcag_criterion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Recommendation; v != nil {
		builder.WriteString("recommendation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("page_url=")
	builder.WriteString(_m.PageURL)
	builder.WriteString(", ")
	builder.WriteString("times_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesSeen))
	builder.WriteString(", ")
	builder.WriteString("is_regression=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRegression))
	builder.WriteString(", ")
	builder.WriteString("priority_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Issues is a parsable slice of Issue.
type Issues []*Issue

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/task"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudyID holds the value of the "study_id" field.
	StudyID string `json:"study_id,omitempty"`
	// PersonaID holds the value of the "persona_id" field.
	PersonaID string `json:"persona_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// Equals the count of owned steps once terminal
	TotalSteps int `json:"total_steps,omitempty"`
	// TaskCompleted holds the value of the "task_completed" field.
	TaskCompleted bool `json:"task_completed,omitempty"`
	// For gave_up, carries the reason
	Summary *string `json:"summary,omitempty"`
	// Per-step emotional states in order
	EmotionalArc []string `json:"emotional_arc,omitempty"`
	// UxScore holds the value of the "ux_score" field.
	UxScore *int `json:"ux_score,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Study holds the value of the study edge.
	Study *Study `json:"study,omitempty"`
	// Persona holds the value of the persona edge.
	Persona *Persona `json:"persona,omitempty"`
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// Issues holds the value of the issues edge.
	Issues []*Issue `json:"issues,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// StudyOrErr returns the Study value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) StudyOrErr() (*Study, error) {
	if e.Study != nil {
		return e.Study, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: study.Label}
	}
	return nil, &NotLoadedError{edge: "study"}
}

// PersonaOrErr returns the Persona value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) PersonaOrErr() (*Persona, error) {
	if e.Persona != nil {
		return e.Persona, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: persona.Label}
	}
	return nil, &NotLoadedError{edge: "persona"}
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[3] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// IssuesOrErr returns the Issues value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) IssuesOrErr() ([]*Issue, error) {
	if e.loadedTypes[4] {
		return e.Issues, nil
	}
	return nil, &NotLoadedError{edge: "issues"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldEmotionalArc:
			values[i] = new([]byte)
		case session.FieldTaskCompleted:
			values[i] = new(sql.NullBool)
		case session.FieldTotalSteps, session.FieldUxScore:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldStudyID, session.FieldPersonaID, session.FieldTaskID, session.FieldStatus, session.FieldSummary, session.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case session.FieldStartedAt, session.FieldCompletedAt, session.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_id", values[i])
			} else if value.Valid {
				_m.StudyID = value.String
			}
		case session.FieldPersonaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_id", values[i])
			} else if value.Valid {
				_m.PersonaID = value.String
			}
		case session.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldTotalSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_steps", values[i])
			} else if value.Valid {
				_m.TotalSteps = int(value.Int64)
			}
		case session.FieldTaskCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field task_completed", values[i])
			} else if value.Valid {
				_m.TaskCompleted = value.Bool
			}
		case session.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case session.FieldEmotionalArc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field emotional_arc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EmotionalArc); err != nil {
					return fmt.Errorf("unmarshal field emotional_arc: %w", err)
				}
			}
		case session.FieldUxScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ux_score", values[i])
			} else if value.Valid {
				_m.UxScore = new(int)
				*_m.UxScore = int(value.Int64)
			}
		case session.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case session.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case session.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudy queries the "study" edge of the Session entity.
func (_m *Session) QueryStudy() *StudyQuery {
	return NewSessionClient(_m.config).QueryStudy(_m)
}

// QueryPersona queries the "persona" edge of the Session entity.
func (_m *Session) QueryPersona() *PersonaQuery {
	return NewSessionClient(_m.config).QueryPersona(_m)
}

// QueryTask queries the "task" edge of the Session entity.
func (_m *Session) QueryTask() *TaskQuery {
	return NewSessionClient(_m.config).QueryTask(_m)
}

// QuerySteps queries the "steps" edge of the Session entity.
func (_m *Session) QuerySteps() *StepQuery {
	return NewSessionClient(_m.config).QuerySteps(_m)
}

// QueryIssues queries the "issues" edge of the Session entity.
func (_m *Session) QueryIssues() *IssueQuery {
	return NewSessionClient(_m.config).QueryIssues(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_id=")
	builder.WriteString(_m.StudyID)
	builder.WriteString(", ")
	builder.WriteString("persona_id=")
	builder.WriteString(_m.PersonaID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSteps))
	builder.WriteString(", ")
	builder.WriteString("task_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskCompleted))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("emotional_arc=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmotionalArc))
	builder.WriteString(", ")
	if v := _m.UxScore; v != nil {
		builder.WriteString("ux_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session

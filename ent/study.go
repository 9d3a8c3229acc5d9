// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderlens/wanderlens/ent/study"
)

// Study is the model entity for the Study schema.
type Study struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Target site root, e.g. https://example.com
	URL string `json:"url,omitempty"`
	// StartingPath holds the value of the "starting_path" field.
	StartingPath string `json:"starting_path,omitempty"`
	// Monotone lifecycle; complete and failed are terminal
	Status study.Status `json:"status,omitempty"`
	// Owner preference; overridable per run
	BrowserMode *study.BrowserMode `json:"browser_mode,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *int `json:"duration_seconds,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore *int `json:"overall_score,omitempty"`
	// ExecutiveSummary holds the value of the "executive_summary" field.
	ExecutiveSummary *string `json:"executive_summary,omitempty"`
	// CostBreakdown holds the value of the "cost_breakdown" field.
	CostBreakdown map[string]interface{} `json:"cost_breakdown,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudyQuery when eager-loading is set.
	Edges        StudyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudyEdges holds the relations/edges for other nodes in the graph.
type StudyEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Personas holds the value of the personas edge.
	Personas []*Persona `json:"personas,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// Issues holds the value of the issues edge.
	Issues []*Issue `json:"issues,omitempty"`
	// Insights holds the value of the insights edge.
	Insights []*Insight `json:"insights,omitempty"`
	// Schedules holds the value of the schedules edge.
	Schedules []*Schedule `json:"schedules,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*StudyJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// PersonasOrErr returns the Personas value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) PersonasOrErr() ([]*Persona, error) {
	if e.loadedTypes[1] {
		return e.Personas, nil
	}
	return nil, &NotLoadedError{edge: "personas"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// IssuesOrErr returns the Issues value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) IssuesOrErr() ([]*Issue, error) {
	if e.loadedTypes[3] {
		return e.Issues, nil
	}
	return nil, &NotLoadedError{edge: "issues"}
}

// InsightsOrErr returns the Insights value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) InsightsOrErr() ([]*Insight, error) {
	if e.loadedTypes[4] {
		return e.Insights, nil
	}
	return nil, &NotLoadedError{edge: "insights"}
}

// SchedulesOrErr returns the Schedules value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) SchedulesOrErr() ([]*Schedule, error) {
	if e.loadedTypes[5] {
		return e.Schedules, nil
	}
	return nil, &NotLoadedError{edge: "schedules"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) JobsOrErr() ([]*StudyJob, error) {
	if e.loadedTypes[6] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Study) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case study.FieldCostBreakdown:
			values[i] = new([]byte)
		case study.FieldDurationSeconds, study.FieldOverallScore:
			values[i] = new(sql.NullInt64)
		case study.FieldID, study.FieldURL, study.FieldStartingPath, study.FieldStatus, study.FieldBrowserMode, study.FieldExecutiveSummary, study.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case study.FieldStartedAt, study.FieldCreatedAt, study.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Study fields.
func (_m *Study) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case study.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case study.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case study.FieldStartingPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field starting_path", values[i])
			} else if value.Valid {
				_m.StartingPath = value.String
			}
		case study.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = study.Status(value.String)
			}
		case study.FieldBrowserMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field browser_mode", values[i])
			} else if value.Valid {
				_m.BrowserMode = new(study.BrowserMode)
				*_m.BrowserMode = study.BrowserMode(value.String)
			}
		case study.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case study.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(int)
				*_m.DurationSeconds = int(value.Int64)
			}
		case study.FieldOverallScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = new(int)
				*_m.OverallScore = int(value.Int64)
			}
		case study.FieldExecutiveSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executive_summary", values[i])
			} else if value.Valid {
				_m.ExecutiveSummary = new(string)
				*_m.ExecutiveSummary = value.String
			}
		case study.FieldCostBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cost_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CostBreakdown); err != nil {
					return fmt.Errorf("unmarshal field cost_breakdown: %w", err)
				}
			}
		case study.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case study.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case study.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Study.
// This includes values selected through modifiers, order, etc.
func (_m *Study) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Study entity.
func (_m *Study) QueryTasks() *TaskQuery {
	return NewStudyClient(_m.config).QueryTasks(_m)
}

// QueryPersonas queries the "personas" edge of the Study entity.
func (_m *Study) QueryPersonas() *PersonaQuery {
	return NewStudyClient(_m.config).QueryPersonas(_m)
}

// QuerySessions queries the "sessions" edge of the Study entity.
func (_m *Study) QuerySessions() *SessionQuery {
	return NewStudyClient(_m.config).QuerySessions(_m)
}

// QueryIssues queries the "issues" edge of the Study entity.
func (_m *Study) QueryIssues() *IssueQuery {
	return NewStudyClient(_m.config).QueryIssues(_m)
}

// QueryInsights queries the "insights" edge of the Study entity.
func (_m *Study) QueryInsights() *InsightQuery {
	return NewStudyClient(_m.config).QueryInsights(_m)
}

// QuerySchedules queries the "schedules" edge of the Study entity.
func (_m *Study) QuerySchedules() *ScheduleQuery {
	return NewStudyClient(_m.config).QuerySchedules(_m)
}

// QueryJobs queries the "jobs" edge of the Study entity.
func (_m *Study) QueryJobs() *StudyJobQuery {
	return NewStudyClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Study.
// Note that you need to call Study.Unwrap() before calling this method if this Study
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Study) Update() *StudyUpdateOne {
	return NewStudyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Study entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Study) Unwrap() *Study {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Study is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Study) String() string {
	var builder strings.Builder
	builder.WriteString("Study(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("starting_path=")
	builder.WriteString(_m.StartingPath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.BrowserMode; v != nil {
		builder.WriteString("browser_mode=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OverallScore; v != nil {
		builder.WriteString("overall_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExecutiveSummary; v != nil {
		builder.WriteString("executive_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cost_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostBreakdown))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Studies is a parsable slice of Study.
type Studies []*Study

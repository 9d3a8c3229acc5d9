// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
)

// Step is the model entity for the Step schema.
type Step struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// StepNumber holds the value of the "step_number" field.
	StepNumber int `json:"step_number,omitempty"`
	// PageURL holds the value of the "page_url" field.
	PageURL string `json:"page_url,omitempty"`
	// PageTitle holds the value of the "page_title" field.
	PageTitle string `json:"page_title,omitempty"`
	// Blob path of the step screenshot
	ScreenshotRef string `json:"screenshot_ref,omitempty"`
	// ThinkAloud holds the value of the "think_aloud" field.
	ThinkAloud string `json:"think_aloud,omitempty"`
	// models.Action: tagged variant with selector/value
	Action map[string]interface{} `json:"action,omitempty"`
	// [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// [0,100]
	TaskProgress int `json:"task_progress,omitempty"`
	// EmotionalState holds the value of the "emotional_state" field.
	EmotionalState step.EmotionalState `json:"emotional_state,omitempty"`
	// ClickX holds the value of the "click_x" field.
	ClickX *int `json:"click_x,omitempty"`
	// ClickY holds the value of the "click_y" field.
	ClickY *int `json:"click_y,omitempty"`
	// ViewportW holds the value of the "viewport_w" field.
	ViewportW *int `json:"viewport_w,omitempty"`
	// ViewportH holds the value of the "viewport_h" field.
	ViewportH *int `json:"viewport_h,omitempty"`
	// ScrollY holds the value of the "scroll_y" field.
	ScrollY *int `json:"scroll_y,omitempty"`
	// MaxScrollY holds the value of the "max_scroll_y" field.
	MaxScrollY *int `json:"max_scroll_y,omitempty"`
	// LoadTimeMs holds the value of the "load_time_ms" field.
	LoadTimeMs *int `json:"load_time_ms,omitempty"`
	// FirstPaintMs holds the value of the "first_paint_ms" field.
	FirstPaintMs *int `json:"first_paint_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepQuery when eager-loading is set.
	Edges        StepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepEdges holds the relations/edges for other nodes in the graph.
type StepEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Issues holds the value of the issues edge.
	Issues []*Issue `json:"issues,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// IssuesOrErr returns the Issues value or an error if the edge
// was not loaded in eager-loading.
func (e StepEdges) IssuesOrErr() ([]*Issue, error) {
	if e.loadedTypes[1] {
		return e.Issues, nil
	}
	return nil, &NotLoadedError{edge: "issues"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Step) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case step.FieldAction:
			values[i] = new([]byte)
		case step.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case step.FieldStepNumber, step.FieldTaskProgress, step.FieldClickX, step.FieldClickY, step.FieldViewportW, step.FieldViewportH, step.FieldScrollY, step.FieldMaxScrollY, step.FieldLoadTimeMs, step.FieldFirstPaintMs:
			values[i] = new(sql.NullInt64)
		case step.FieldID, step.FieldSessionID, step.FieldPageURL, step.FieldPageTitle, step.FieldScreenshotRef, step.FieldThinkAloud, step.FieldEmotionalState:
			values[i] = new(sql.NullString)
		case step.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Step fields.
func (_m *Step) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case step.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case step.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case step.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case step.FieldPageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_url", values[i])
			} else if value.Valid {
				_m.PageURL = value.String
			}
		case step.FieldPageTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_title", values[i])
			} else if value.Valid {
				_m.PageTitle = value.String
			}
		case step.FieldScreenshotRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field screenshot_ref", values[i])
			} else if value.Valid {
				_m.ScreenshotRef = value.String
			}
		case step.FieldThinkAloud:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field think_aloud", values[i])
			} else if value.Valid {
				_m.ThinkAloud = value.String
			}
		case step.FieldAction:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Action); err != nil {
					return fmt.Errorf("unmarshal field action: %w", err)
				}
			}
		case step.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case step.FieldTaskProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_progress", values[i])
			} else if value.Valid {
				_m.TaskProgress = int(value.Int64)
			}
		case step.FieldEmotionalState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotional_state", values[i])
			} else if value.Valid {
				_m.EmotionalState = step.EmotionalState(value.String)
			}
		case step.FieldClickX:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field click_x", values[i])
			} else if value.Valid {
				_m.ClickX = new(int)
				*_m.ClickX = int(value.Int64)
			}
		case step.FieldClickY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field click_y", values[i])
			} else if value.Valid {
				_m.ClickY = new(int)
				*_m.ClickY = int(value.Int64)
			}
		case step.FieldViewportW:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field viewport_w", values[i])
			} else if value.Valid {
				_m.ViewportW = new(int)
				*_m.ViewportW = int(value.Int64)
			}
		case step.FieldViewportH:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field viewport_h", values[i])
			} else if value.Valid {
				_m.ViewportH = new(int)
				*_m.ViewportH = int(value.Int64)
			}
		case step.FieldScrollY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scroll_y", values[i])
			} else if value.Valid {
				_m.ScrollY = new(int)
				*_m.ScrollY = int(value.Int64)
			}
		case step.FieldMaxScrollY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_scroll_y", values[i])
			} else if value.Valid {
				_m.MaxScrollY = new(int)
				*_m.MaxScrollY = int(value.Int64)
			}
		case step.FieldLoadTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field load_time_ms", values[i])
			} else if value.Valid {
				_m.LoadTimeMs = new(int)
				*_m.LoadTimeMs = int(value.Int64)
			}
		case step.FieldFirstPaintMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_paint_ms", values[i])
			} else if value.Valid {
				_m.FirstPaintMs = new(int)
				*_m.FirstPaintMs = int(value.Int64)
			}
		case step.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Step.
// This includes values selected through modifiers, order, etc.
func (_m *Step) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Step entity.
func (_m *Step) QuerySession() *SessionQuery {
	return NewStepClient(_m.config).QuerySession(_m)
}

// QueryIssues queries the "issues" edge of the Step entity.
func (_m *Step) QueryIssues() *IssueQuery {
	return NewStepClient(_m.config).QueryIssues(_m)
}

// Update returns a builder for updating this Step.
// Note that you need to call Step.Unwrap() before calling this method if this Step
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Step) Update() *StepUpdateOne {
	return NewStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Step entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Step) Unwrap() *Step {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Step is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Step) String() string {
	var builder strings.Builder
	builder.WriteString("Step(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("page_url=")
	builder.WriteString(_m.PageURL)
	builder.WriteString(", ")
	builder.WriteString("page_title=")
	builder.WriteString(_m.PageTitle)
	builder.WriteString(", ")
	builder.WriteString("screenshot_ref=")
	builder.WriteString(_m.ScreenshotRef)
	builder.WriteString(", ")
	builder.WriteString("think_aloud=")
	builder.WriteString(_m.ThinkAloud)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("task_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskProgress))
	builder.WriteString(", ")
	builder.WriteString("emotional_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmotionalState))
	builder.WriteString(", ")
	if v := _m.ClickX; v != nil {
		builder.WriteString("click_x=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClickY; v != nil {
		builder.WriteString("click_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ViewportW; v != nil {
		builder.WriteString("viewport_w=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ViewportH; v != nil {
		builder.WriteString("viewport_h=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScrollY; v != nil {
		builder.WriteString("scroll_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxScrollY; v != nil {
		builder.WriteString("max_scroll_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LoadTimeMs; v != nil {
		builder.WriteString("load_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FirstPaintMs; v != nil {
		builder.WriteString("first_paint_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Steps is a parsable slice of Step.
type Steps []*Step

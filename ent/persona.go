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
	"github.com/wanderlens/wanderlens/ent/study"
)

// Persona is the model entity for the Persona schema.
type Persona struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudyID holds the value of the "study_id" field.
	StudyID string `json:"study_id,omitempty"`
	// Registry template this persona was derived from
	TemplateID *string `json:"template_id,omitempty"`
	// models.PersonaProfile: traits, goals, frustrations, device
	Profile map[string]interface{} `json:"profile,omitempty"`
	// Decision model override for this persona
	ModelChoice *string `json:"model_choice,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PersonaQuery when eager-loading is set.
	Edges        PersonaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PersonaEdges holds the relations/edges for other nodes in the graph.
type PersonaEdges struct {
	// Study holds the value of the study edge.
	Study *Study `json:"study,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StudyOrErr returns the Study value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PersonaEdges) StudyOrErr() (*Study, error) {
	if e.Study != nil {
		return e.Study, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: study.Label}
	}
	return nil, &NotLoadedError{edge: "study"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e PersonaEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Persona) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case persona.FieldProfile:
			values[i] = new([]byte)
		case persona.FieldID, persona.FieldStudyID, persona.FieldTemplateID, persona.FieldModelChoice:
			values[i] = new(sql.NullString)
		case persona.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Persona fields.
func (_m *Persona) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case persona.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case persona.FieldStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_id", values[i])
			} else if value.Valid {
				_m.StudyID = value.String
			}
		case persona.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = new(string)
				*_m.TemplateID = value.String
			}
		case persona.FieldProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Profile); err != nil {
					return fmt.Errorf("unmarshal field profile: %w", err)
				}
			}
		case persona.FieldModelChoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_choice", values[i])
			} else if value.Valid {
				_m.ModelChoice = new(string)
				*_m.ModelChoice = value.String
			}
		case persona.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Persona.
// This includes values selected through modifiers, order, etc.
func (_m *Persona) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudy queries the "study" edge of the Persona entity.
func (_m *Persona) QueryStudy() *StudyQuery {
	return NewPersonaClient(_m.config).QueryStudy(_m)
}

// QuerySessions queries the "sessions" edge of the Persona entity.
func (_m *Persona) QuerySessions() *SessionQuery {
	return NewPersonaClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this Persona.
// Note that you need to call Persona.Unwrap() before calling this method if this Persona
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Persona) Update() *PersonaUpdateOne {
	return NewPersonaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Persona entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Persona) Unwrap() *Persona {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Persona is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Persona) String() string {
	var builder strings.Builder
	builder.WriteString("Persona(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_id=")
	builder.WriteString(_m.StudyID)
	builder.WriteString(", ")
	if v := _m.TemplateID; v != nil {
		builder.WriteString("template_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.Profile))
	builder.WriteString(", ")
	if v := _m.ModelChoice; v != nil {
		builder.WriteString("model_choice=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Personas is a parsable slice of Persona.
type Personas []*Persona

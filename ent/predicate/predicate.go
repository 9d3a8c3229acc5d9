// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// Issue is the predicate function for issue builders.
type Issue func(*sql.Selector)

// Persona is the predicate function for persona builders.
type Persona func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// Study is the predicate function for study builders.
type Study func(*sql.Selector)

// StudyJob is the predicate function for studyjob builders.
type StudyJob func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

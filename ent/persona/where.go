// Code generated by ent, DO NOT EDIT.

package persona

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldStudyID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldTemplateID, v))
}

// ModelChoice applies equality check predicate on the "model_choice" field. It's identical to ModelChoiceEQ.
func ModelChoice(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldModelChoice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCreatedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldStudyID, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldTemplateID))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldTemplateID, v))
}

// ModelChoiceEQ applies the EQ predicate on the "model_choice" field.
func ModelChoiceEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldModelChoice, v))
}

// ModelChoiceNEQ applies the NEQ predicate on the "model_choice" field.
func ModelChoiceNEQ(v string) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldModelChoice, v))
}

// ModelChoiceIn applies the In predicate on the "model_choice" field.
func ModelChoiceIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldModelChoice, vs...))
}

// ModelChoiceNotIn applies the NotIn predicate on the "model_choice" field.
func ModelChoiceNotIn(vs ...string) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldModelChoice, vs...))
}

// ModelChoiceGT applies the GT predicate on the "model_choice" field.
func ModelChoiceGT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldModelChoice, v))
}

// ModelChoiceGTE applies the GTE predicate on the "model_choice" field.
func ModelChoiceGTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldModelChoice, v))
}

// ModelChoiceLT applies the LT predicate on the "model_choice" field.
func ModelChoiceLT(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldModelChoice, v))
}

// ModelChoiceLTE applies the LTE predicate on the "model_choice" field.
func ModelChoiceLTE(v string) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldModelChoice, v))
}

// ModelChoiceContains applies the Contains predicate on the "model_choice" field.
func ModelChoiceContains(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContains(FieldModelChoice, v))
}

// ModelChoiceHasPrefix applies the HasPrefix predicate on the "model_choice" field.
func ModelChoiceHasPrefix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasPrefix(FieldModelChoice, v))
}

// ModelChoiceHasSuffix applies the HasSuffix predicate on the "model_choice" field.
func ModelChoiceHasSuffix(v string) predicate.Persona {
	return predicate.Persona(sql.FieldHasSuffix(FieldModelChoice, v))
}

// ModelChoiceIsNil applies the IsNil predicate on the "model_choice" field.
func ModelChoiceIsNil() predicate.Persona {
	return predicate.Persona(sql.FieldIsNull(FieldModelChoice))
}

// ModelChoiceNotNil applies the NotNil predicate on the "model_choice" field.
func ModelChoiceNotNil() predicate.Persona {
	return predicate.Persona(sql.FieldNotNull(FieldModelChoice))
}

// ModelChoiceEqualFold applies the EqualFold predicate on the "model_choice" field.
func ModelChoiceEqualFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldEqualFold(FieldModelChoice, v))
}

// ModelChoiceContainsFold applies the ContainsFold predicate on the "model_choice" field.
func ModelChoiceContainsFold(v string) predicate.Persona {
	return predicate.Persona(sql.FieldContainsFold(FieldModelChoice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Persona {
	return predicate.Persona(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Persona {
	return predicate.Persona(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Persona) predicate.Persona {
	return predicate.Persona(sql.NotPredicates(p))
}

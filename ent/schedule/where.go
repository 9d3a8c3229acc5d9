// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldStudyID, v))
}

// CronExpr applies equality check predicate on the "cron_expr" field. It's identical to CronExprEQ.
func CronExpr(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCronExpr, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextRunAt, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastRunAt, v))
}

// RunCount applies equality check predicate on the "run_count" field. It's identical to RunCountEQ.
func RunCount(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldRunCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldStudyID, v))
}

// CronExprEQ applies the EQ predicate on the "cron_expr" field.
func CronExprEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCronExpr, v))
}

// CronExprNEQ applies the NEQ predicate on the "cron_expr" field.
func CronExprNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCronExpr, v))
}

// CronExprIn applies the In predicate on the "cron_expr" field.
func CronExprIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldCronExpr, vs...))
}

// CronExprNotIn applies the NotIn predicate on the "cron_expr" field.
func CronExprNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldCronExpr, vs...))
}

// CronExprGT applies the GT predicate on the "cron_expr" field.
func CronExprGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldCronExpr, v))
}

// CronExprGTE applies the GTE predicate on the "cron_expr" field.
func CronExprGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldCronExpr, v))
}

// CronExprLT applies the LT predicate on the "cron_expr" field.
func CronExprLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldCronExpr, v))
}

// CronExprLTE applies the LTE predicate on the "cron_expr" field.
func CronExprLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldCronExpr, v))
}

// CronExprContains applies the Contains predicate on the "cron_expr" field.
func CronExprContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldCronExpr, v))
}

// CronExprHasPrefix applies the HasPrefix predicate on the "cron_expr" field.
func CronExprHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldCronExpr, v))
}

// CronExprHasSuffix applies the HasSuffix predicate on the "cron_expr" field.
func CronExprHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldCronExpr, v))
}

// CronExprEqualFold applies the EqualFold predicate on the "cron_expr" field.
func CronExprEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldCronExpr, v))
}

// CronExprContainsFold applies the ContainsFold predicate on the "cron_expr" field.
func CronExprContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldCronExpr, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldStatus, vs...))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldNextRunAt))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldLastRunAt))
}

// RunCountEQ applies the EQ predicate on the "run_count" field.
func RunCountEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldRunCount, v))
}

// RunCountNEQ applies the NEQ predicate on the "run_count" field.
func RunCountNEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldRunCount, v))
}

// RunCountIn applies the In predicate on the "run_count" field.
func RunCountIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldRunCount, vs...))
}

// RunCountNotIn applies the NotIn predicate on the "run_count" field.
func RunCountNotIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldRunCount, vs...))
}

// RunCountGT applies the GT predicate on the "run_count" field.
func RunCountGT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldRunCount, v))
}

// RunCountGTE applies the GTE predicate on the "run_count" field.
func RunCountGTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldRunCount, v))
}

// RunCountLT applies the LT predicate on the "run_count" field.
func RunCountLT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldRunCount, v))
}

// RunCountLTE applies the LTE predicate on the "run_count" field.
func RunCountLTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldRunCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.NotPredicates(p))
}

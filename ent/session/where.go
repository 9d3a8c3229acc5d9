// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudyID, v))
}

// PersonaID applies equality check predicate on the "persona_id" field. It's identical to PersonaIDEQ.
func PersonaID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPersonaID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTaskID, v))
}

// TotalSteps applies equality check predicate on the "total_steps" field. It's identical to TotalStepsEQ.
func TotalSteps(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalSteps, v))
}

// TaskCompleted applies equality check predicate on the "task_completed" field. It's identical to TaskCompletedEQ.
func TaskCompleted(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTaskCompleted, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummary, v))
}

// UxScore applies equality check predicate on the "ux_score" field. It's identical to UxScoreEQ.
func UxScore(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUxScore, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStudyID, v))
}

// PersonaIDEQ applies the EQ predicate on the "persona_id" field.
func PersonaIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPersonaID, v))
}

// PersonaIDNEQ applies the NEQ predicate on the "persona_id" field.
func PersonaIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPersonaID, v))
}

// PersonaIDIn applies the In predicate on the "persona_id" field.
func PersonaIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPersonaID, vs...))
}

// PersonaIDNotIn applies the NotIn predicate on the "persona_id" field.
func PersonaIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPersonaID, vs...))
}

// PersonaIDGT applies the GT predicate on the "persona_id" field.
func PersonaIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPersonaID, v))
}

// PersonaIDGTE applies the GTE predicate on the "persona_id" field.
func PersonaIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPersonaID, v))
}

// PersonaIDLT applies the LT predicate on the "persona_id" field.
func PersonaIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPersonaID, v))
}

// PersonaIDLTE applies the LTE predicate on the "persona_id" field.
func PersonaIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPersonaID, v))
}

// PersonaIDContains applies the Contains predicate on the "persona_id" field.
func PersonaIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPersonaID, v))
}

// PersonaIDHasPrefix applies the HasPrefix predicate on the "persona_id" field.
func PersonaIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPersonaID, v))
}

// PersonaIDHasSuffix applies the HasSuffix predicate on the "persona_id" field.
func PersonaIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPersonaID, v))
}

// PersonaIDEqualFold applies the EqualFold predicate on the "persona_id" field.
func PersonaIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPersonaID, v))
}

// PersonaIDContainsFold applies the ContainsFold predicate on the "persona_id" field.
func PersonaIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPersonaID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTaskID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalStepsEQ applies the EQ predicate on the "total_steps" field.
func TotalStepsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalSteps, v))
}

// TotalStepsNEQ applies the NEQ predicate on the "total_steps" field.
func TotalStepsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalSteps, v))
}

// TotalStepsIn applies the In predicate on the "total_steps" field.
func TotalStepsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalSteps, vs...))
}

// TotalStepsNotIn applies the NotIn predicate on the "total_steps" field.
func TotalStepsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalSteps, vs...))
}

// TotalStepsGT applies the GT predicate on the "total_steps" field.
func TotalStepsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalSteps, v))
}

// TotalStepsGTE applies the GTE predicate on the "total_steps" field.
func TotalStepsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalSteps, v))
}

// TotalStepsLT applies the LT predicate on the "total_steps" field.
func TotalStepsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalSteps, v))
}

// TotalStepsLTE applies the LTE predicate on the "total_steps" field.
func TotalStepsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalSteps, v))
}

// TaskCompletedEQ applies the EQ predicate on the "task_completed" field.
func TaskCompletedEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTaskCompleted, v))
}

// TaskCompletedNEQ applies the NEQ predicate on the "task_completed" field.
func TaskCompletedNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTaskCompleted, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSummary, v))
}

// EmotionalArcIsNil applies the IsNil predicate on the "emotional_arc" field.
func EmotionalArcIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEmotionalArc))
}

// EmotionalArcNotNil applies the NotNil predicate on the "emotional_arc" field.
func EmotionalArcNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEmotionalArc))
}

// UxScoreEQ applies the EQ predicate on the "ux_score" field.
func UxScoreEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUxScore, v))
}

// UxScoreNEQ applies the NEQ predicate on the "ux_score" field.
func UxScoreNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUxScore, v))
}

// UxScoreIn applies the In predicate on the "ux_score" field.
func UxScoreIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUxScore, vs...))
}

// UxScoreNotIn applies the NotIn predicate on the "ux_score" field.
func UxScoreNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUxScore, vs...))
}

// UxScoreGT applies the GT predicate on the "ux_score" field.
func UxScoreGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUxScore, v))
}

// UxScoreGTE applies the GTE predicate on the "ux_score" field.
func UxScoreGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUxScore, v))
}

// UxScoreLT applies the LT predicate on the "ux_score" field.
func UxScoreLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUxScore, v))
}

// UxScoreLTE applies the LTE predicate on the "ux_score" field.
func UxScoreLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUxScore, v))
}

// UxScoreIsNil applies the IsNil predicate on the "ux_score" field.
func UxScoreIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldUxScore))
}

// UxScoreNotNil applies the NotNil predicate on the "ux_score" field.
func UxScoreNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldUxScore))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPersona applies the HasEdge predicate on the "persona" edge.
func HasPersona() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PersonaTable, PersonaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonaWith applies the HasEdge predicate on the "persona" edge with a given conditions (other predicates).
func HasPersonaWith(preds ...predicate.Persona) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newPersonaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssues applies the HasEdge predicate on the "issues" edge.
func HasIssues() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssuesWith applies the HasEdge predicate on the "issues" edge with a given conditions (other predicates).
func HasIssuesWith(preds ...predicate.Issue) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newIssuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}

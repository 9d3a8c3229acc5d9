// Code generated by ent, DO NOT EDIT.

package issue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldStudyID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldSessionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldStepID, v))
}

// Element applies equality check predicate on the "element" field. It's identical to ElementEQ.
func Element(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldElement, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldDescription, v))
}

// Heuristic applies equality check predicate on the "heuristic" field. It's identical to HeuristicEQ.
func Heuristic(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldHeuristic, v))
}

// WcagCriterion applies equality check predicate on the "wcag_criterion" field. It's identical to WcagCriterionEQ.
func WcagCriterion(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldWcagCriterion, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldRecommendation, v))
}

// PageURL applies equality check predicate on the "page_url" field. It's identical to PageURLEQ.
func PageURL(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldPageURL, v))
}

// TimesSeen applies equality check predicate on the "times_seen" field. It's identical to TimesSeenEQ.
func TimesSeen(v int) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldTimesSeen, v))
}

// IsRegression applies equality check predicate on the "is_regression" field. It's identical to IsRegressionEQ.
func IsRegression(v bool) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldIsRegression, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldPriorityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldCreatedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldStudyID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldSessionID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.Issue {
	return predicate.Issue(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.Issue {
	return predicate.Issue(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldStepID, v))
}

// ElementEQ applies the EQ predicate on the "element" field.
func ElementEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldElement, v))
}

// ElementNEQ applies the NEQ predicate on the "element" field.
func ElementNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldElement, v))
}

// ElementIn applies the In predicate on the "element" field.
func ElementIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldElement, vs...))
}

// ElementNotIn applies the NotIn predicate on the "element" field.
func ElementNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldElement, vs...))
}

// ElementGT applies the GT predicate on the "element" field.
func ElementGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldElement, v))
}

// ElementGTE applies the GTE predicate on the "element" field.
func ElementGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldElement, v))
}

// ElementLT applies the LT predicate on the "element" field.
func ElementLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldElement, v))
}

// ElementLTE applies the LTE predicate on the "element" field.
func ElementLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldElement, v))
}

// ElementContains applies the Contains predicate on the "element" field.
func ElementContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldElement, v))
}

// ElementHasPrefix applies the HasPrefix predicate on the "element" field.
func ElementHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldElement, v))
}

// ElementHasSuffix applies the HasSuffix predicate on the "element" field.
func ElementHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldElement, v))
}

// ElementIsNil applies the IsNil predicate on the "element" field.
func ElementIsNil() predicate.Issue {
	return predicate.Issue(sql.FieldIsNull(FieldElement))
}

// ElementNotNil applies the NotNil predicate on the "element" field.
func ElementNotNil() predicate.Issue {
	return predicate.Issue(sql.FieldNotNull(FieldElement))
}

// ElementEqualFold applies the EqualFold predicate on the "element" field.
func ElementEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldElement, v))
}

// ElementContainsFold applies the ContainsFold predicate on the "element" field.
func ElementContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldElement, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldDescription, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldSeverity, vs...))
}

// IssueTypeEQ applies the EQ predicate on the "issue_type" field.
func IssueTypeEQ(v IssueType) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldIssueType, v))
}

// IssueTypeNEQ applies the NEQ predicate on the "issue_type" field.
func IssueTypeNEQ(v IssueType) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldIssueType, v))
}

// IssueTypeIn applies the In predicate on the "issue_type" field.
func IssueTypeIn(vs ...IssueType) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldIssueType, vs...))
}

// IssueTypeNotIn applies the NotIn predicate on the "issue_type" field.
func IssueTypeNotIn(vs ...IssueType) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldIssueType, vs...))
}

// HeuristicEQ applies the EQ predicate on the "heuristic" field.
func HeuristicEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldHeuristic, v))
}

// HeuristicNEQ applies the NEQ predicate on the "heuristic" field.
func HeuristicNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldHeuristic, v))
}

// HeuristicIn applies the In predicate on the "heuristic" field.
func HeuristicIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldHeuristic, vs...))
}

// HeuristicNotIn applies the NotIn predicate on the "heuristic" field.
func HeuristicNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldHeuristic, vs...))
}

// HeuristicGT applies the GT predicate on the "heuristic" field.
func HeuristicGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldHeuristic, v))
}

// HeuristicGTE applies the GTE predicate on the "heuristic" field.
func HeuristicGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldHeuristic, v))
}

// HeuristicLT applies the LT predicate on the "heuristic" field.
func HeuristicLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldHeuristic, v))
}

// HeuristicLTE applies the LTE predicate on the "heuristic" field.
func HeuristicLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldHeuristic, v))
}

// HeuristicContains applies the Contains predicate on the "heuristic" field.
func HeuristicContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldHeuristic, v))
}

// HeuristicHasPrefix applies the HasPrefix predicate on the "heuristic" field.
func HeuristicHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldHeuristic, v))
}

// HeuristicHasSuffix applies the HasSuffix predicate on the "heuristic" field.
func HeuristicHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldHeuristic, v))
}

// HeuristicIsNil applies the IsNil predicate on the "heuristic" field.
func HeuristicIsNil() predicate.Issue {
	return predicate.Issue(sql.FieldIsNull(FieldHeuristic))
}

// HeuristicNotNil applies the NotNil predicate on the "heuristic" field.
func HeuristicNotNil() predicate.Issue {
	return predicate.Issue(sql.FieldNotNull(FieldHeuristic))
}

// HeuristicEqualFold applies the EqualFold predicate on the "heuristic" field.
func HeuristicEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldHeuristic, v))
}

// HeuristicContainsFold applies the ContainsFold predicate on the "heuristic" field.
func HeuristicContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldHeuristic, v))
}

// WcagCriterionEQ applies the EQ predicate on the "wcag_criterion" field.
func WcagCriterionEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldWcagCriterion, v))
}

// WcagCriterionNEQ applies the NEQ predicate on the "wcag_criterion" field.
func WcagCriterionNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldWcagCriterion, v))
}

// WcagCriterionIn applies the In predicate on the "wcag_criterion" field.
func WcagCriterionIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldWcagCriterion, vs...))
}

// WcagCriterionNotIn applies the NotIn predicate on the "wcag_criterion" field.
func WcagCriterionNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldWcagCriterion, vs...))
}

// WcagCriterionGT applies the GT predicate on the "wcag_criterion" field.
func WcagCriterionGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldWcagCriterion, v))
}

// WcagCriterionGTE applies the GTE predicate on the "wcag_criterion" field.
func WcagCriterionGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldWcagCriterion, v))
}

// WcagCriterionLT applies the LT predicate on the "wcag_criterion" field.
func WcagCriterionLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldWcagCriterion, v))
}

// WcagCriterionLTE applies the LTE predicate on the "wcag_criterion" field.
func WcagCriterionLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldWcagCriterion, v))
}

// WcagCriterionContains applies the Contains predicate on the "wcag_criterion" field.
func WcagCriterionContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldWcagCriterion, v))
}

// WcagCriterionHasPrefix applies the HasPrefix predicate on the "wcag_criterion" field.
func WcagCriterionHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldWcagCriterion, v))
}

// WcagCriterionHasSuffix applies the HasSuffix predicate on the "wcag_criterion" field.
func WcagCriterionHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldWcagCriterion, v))
}

// WcagCriterionIsNil applies the IsNil predicate on the "wcag_criterion" field.
func WcagCriterionIsNil() predicate.Issue {
	return predicate.Issue(sql.FieldIsNull(FieldWcagCriterion))
}

// WcagCriterionNotNil applies the NotNil predicate on the "wcag_criterion" field.
func WcagCriterionNotNil() predicate.Issue {
	return predicate.Issue(sql.FieldNotNull(FieldWcagCriterion))
}

// WcagCriterionEqualFold applies the EqualFold predicate on the "wcag_criterion" field.
func WcagCriterionEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldWcagCriterion, v))
}

// WcagCriterionContainsFold applies the ContainsFold predicate on the "wcag_criterion" field.
func WcagCriterionContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldWcagCriterion, v))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationIsNil applies the IsNil predicate on the "recommendation" field.
func RecommendationIsNil() predicate.Issue {
	return predicate.Issue(sql.FieldIsNull(FieldRecommendation))
}

// RecommendationNotNil applies the NotNil predicate on the "recommendation" field.
func RecommendationNotNil() predicate.Issue {
	return predicate.Issue(sql.FieldNotNull(FieldRecommendation))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldRecommendation, v))
}

// PageURLEQ applies the EQ predicate on the "page_url" field.
func PageURLEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldPageURL, v))
}

// PageURLNEQ applies the NEQ predicate on the "page_url" field.
func PageURLNEQ(v string) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldPageURL, v))
}

// PageURLIn applies the In predicate on the "page_url" field.
func PageURLIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldPageURL, vs...))
}

// PageURLNotIn applies the NotIn predicate on the "page_url" field.
func PageURLNotIn(vs ...string) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldPageURL, vs...))
}

// PageURLGT applies the GT predicate on the "page_url" field.
func PageURLGT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldPageURL, v))
}

// PageURLGTE applies the GTE predicate on the "page_url" field.
func PageURLGTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldPageURL, v))
}

// PageURLLT applies the LT predicate on the "page_url" field.
func PageURLLT(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldPageURL, v))
}

// PageURLLTE applies the LTE predicate on the "page_url" field.
func PageURLLTE(v string) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldPageURL, v))
}

// PageURLContains applies the Contains predicate on the "page_url" field.
func PageURLContains(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContains(FieldPageURL, v))
}

// PageURLHasPrefix applies the HasPrefix predicate on the "page_url" field.
func PageURLHasPrefix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasPrefix(FieldPageURL, v))
}

// PageURLHasSuffix applies the HasSuffix predicate on the "page_url" field.
func PageURLHasSuffix(v string) predicate.Issue {
	return predicate.Issue(sql.FieldHasSuffix(FieldPageURL, v))
}

// PageURLIsNil applies the IsNil predicate on the "page_url" field.
func PageURLIsNil() predicate.Issue {
	return predicate.Issue(sql.FieldIsNull(FieldPageURL))
}

// PageURLNotNil applies the NotNil predicate on the "page_url" field.
func PageURLNotNil() predicate.Issue {
	return predicate.Issue(sql.FieldNotNull(FieldPageURL))
}

// PageURLEqualFold applies the EqualFold predicate on the "page_url" field.
func PageURLEqualFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldEqualFold(FieldPageURL, v))
}

// PageURLContainsFold applies the ContainsFold predicate on the "page_url" field.
func PageURLContainsFold(v string) predicate.Issue {
	return predicate.Issue(sql.FieldContainsFold(FieldPageURL, v))
}

// TimesSeenEQ applies the EQ predicate on the "times_seen" field.
func TimesSeenEQ(v int) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldTimesSeen, v))
}

// TimesSeenNEQ applies the NEQ predicate on the "times_seen" field.
func TimesSeenNEQ(v int) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldTimesSeen, v))
}

// TimesSeenIn applies the In predicate on the "times_seen" field.
func TimesSeenIn(vs ...int) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldTimesSeen, vs...))
}

// TimesSeenNotIn applies the NotIn predicate on the "times_seen" field.
func TimesSeenNotIn(vs ...int) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldTimesSeen, vs...))
}

// TimesSeenGT applies the GT predicate on the "times_seen" field.
func TimesSeenGT(v int) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldTimesSeen, v))
}

// TimesSeenGTE applies the GTE predicate on the "times_seen" field.
func TimesSeenGTE(v int) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldTimesSeen, v))
}

// TimesSeenLT applies the LT predicate on the "times_seen" field.
func TimesSeenLT(v int) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldTimesSeen, v))
}

// TimesSeenLTE applies the LTE predicate on the "times_seen" field.
func TimesSeenLTE(v int) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldTimesSeen, v))
}

// IsRegressionEQ applies the EQ predicate on the "is_regression" field.
func IsRegressionEQ(v bool) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldIsRegression, v))
}

// IsRegressionNEQ applies the NEQ predicate on the "is_regression" field.
func IsRegressionNEQ(v bool) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldIsRegression, v))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...float64) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...float64) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v float64) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldPriorityScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Issue {
	return predicate.Issue(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Issue {
	return predicate.Issue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Issue {
	return predicate.Issue(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Issue {
	return predicate.Issue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Issue {
	return predicate.Issue(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.Issue {
	return predicate.Issue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.Step) predicate.Issue {
	return predicate.Issue(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Issue) predicate.Issue {
	return predicate.Issue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Issue) predicate.Issue {
	return predicate.Issue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Issue) predicate.Issue {
	return predicate.Issue(sql.NotPredicates(p))
}

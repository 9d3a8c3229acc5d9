// Code generated by ent, DO NOT EDIT.

package study

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldURL, v))
}

// StartingPath applies equality check predicate on the "starting_path" field. It's identical to StartingPathEQ.
func StartingPath(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStartingPath, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStartedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldDurationSeconds, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldOverallScore, v))
}

// ExecutiveSummary applies equality check predicate on the "executive_summary" field. It's identical to ExecutiveSummaryEQ.
func ExecutiveSummary(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldExecutiveSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldUpdatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldURL, v))
}

// StartingPathEQ applies the EQ predicate on the "starting_path" field.
func StartingPathEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStartingPath, v))
}

// StartingPathNEQ applies the NEQ predicate on the "starting_path" field.
func StartingPathNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldStartingPath, v))
}

// StartingPathIn applies the In predicate on the "starting_path" field.
func StartingPathIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldStartingPath, vs...))
}

// StartingPathNotIn applies the NotIn predicate on the "starting_path" field.
func StartingPathNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldStartingPath, vs...))
}

// StartingPathGT applies the GT predicate on the "starting_path" field.
func StartingPathGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldStartingPath, v))
}

// StartingPathGTE applies the GTE predicate on the "starting_path" field.
func StartingPathGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldStartingPath, v))
}

// StartingPathLT applies the LT predicate on the "starting_path" field.
func StartingPathLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldStartingPath, v))
}

// StartingPathLTE applies the LTE predicate on the "starting_path" field.
func StartingPathLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldStartingPath, v))
}

// StartingPathContains applies the Contains predicate on the "starting_path" field.
func StartingPathContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldStartingPath, v))
}

// StartingPathHasPrefix applies the HasPrefix predicate on the "starting_path" field.
func StartingPathHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldStartingPath, v))
}

// StartingPathHasSuffix applies the HasSuffix predicate on the "starting_path" field.
func StartingPathHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldStartingPath, v))
}

// StartingPathEqualFold applies the EqualFold predicate on the "starting_path" field.
func StartingPathEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldStartingPath, v))
}

// StartingPathContainsFold applies the ContainsFold predicate on the "starting_path" field.
func StartingPathContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldStartingPath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldStatus, vs...))
}

// BrowserModeEQ applies the EQ predicate on the "browser_mode" field.
func BrowserModeEQ(v BrowserMode) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldBrowserMode, v))
}

// BrowserModeNEQ applies the NEQ predicate on the "browser_mode" field.
func BrowserModeNEQ(v BrowserMode) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldBrowserMode, v))
}

// BrowserModeIn applies the In predicate on the "browser_mode" field.
func BrowserModeIn(vs ...BrowserMode) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldBrowserMode, vs...))
}

// BrowserModeNotIn applies the NotIn predicate on the "browser_mode" field.
func BrowserModeNotIn(vs ...BrowserMode) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldBrowserMode, vs...))
}

// BrowserModeIsNil applies the IsNil predicate on the "browser_mode" field.
func BrowserModeIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldBrowserMode))
}

// BrowserModeNotNil applies the NotNil predicate on the "browser_mode" field.
func BrowserModeNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldBrowserMode))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldStartedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldDurationSeconds))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldOverallScore, v))
}

// OverallScoreIsNil applies the IsNil predicate on the "overall_score" field.
func OverallScoreIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldOverallScore))
}

// OverallScoreNotNil applies the NotNil predicate on the "overall_score" field.
func OverallScoreNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldOverallScore))
}

// ExecutiveSummaryEQ applies the EQ predicate on the "executive_summary" field.
func ExecutiveSummaryEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldExecutiveSummary, v))
}

// ExecutiveSummaryNEQ applies the NEQ predicate on the "executive_summary" field.
func ExecutiveSummaryNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldExecutiveSummary, v))
}

// ExecutiveSummaryIn applies the In predicate on the "executive_summary" field.
func ExecutiveSummaryIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldExecutiveSummary, vs...))
}

// ExecutiveSummaryNotIn applies the NotIn predicate on the "executive_summary" field.
func ExecutiveSummaryNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldExecutiveSummary, vs...))
}

// ExecutiveSummaryGT applies the GT predicate on the "executive_summary" field.
func ExecutiveSummaryGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldExecutiveSummary, v))
}

// ExecutiveSummaryGTE applies the GTE predicate on the "executive_summary" field.
func ExecutiveSummaryGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldExecutiveSummary, v))
}

// ExecutiveSummaryLT applies the LT predicate on the "executive_summary" field.
func ExecutiveSummaryLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldExecutiveSummary, v))
}

// ExecutiveSummaryLTE applies the LTE predicate on the "executive_summary" field.
func ExecutiveSummaryLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldExecutiveSummary, v))
}

// ExecutiveSummaryContains applies the Contains predicate on the "executive_summary" field.
func ExecutiveSummaryContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldExecutiveSummary, v))
}

// ExecutiveSummaryHasPrefix applies the HasPrefix predicate on the "executive_summary" field.
func ExecutiveSummaryHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldExecutiveSummary, v))
}

// ExecutiveSummaryHasSuffix applies the HasSuffix predicate on the "executive_summary" field.
func ExecutiveSummaryHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldExecutiveSummary, v))
}

// ExecutiveSummaryIsNil applies the IsNil predicate on the "executive_summary" field.
func ExecutiveSummaryIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldExecutiveSummary))
}

// ExecutiveSummaryNotNil applies the NotNil predicate on the "executive_summary" field.
func ExecutiveSummaryNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldExecutiveSummary))
}

// ExecutiveSummaryEqualFold applies the EqualFold predicate on the "executive_summary" field.
func ExecutiveSummaryEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldExecutiveSummary, v))
}

// ExecutiveSummaryContainsFold applies the ContainsFold predicate on the "executive_summary" field.
func ExecutiveSummaryContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldExecutiveSummary, v))
}

// CostBreakdownIsNil applies the IsNil predicate on the "cost_breakdown" field.
func CostBreakdownIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldCostBreakdown))
}

// CostBreakdownNotNil applies the NotNil predicate on the "cost_breakdown" field.
func CostBreakdownNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldCostBreakdown))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPersonas applies the HasEdge predicate on the "personas" edge.
func HasPersonas() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PersonasTable, PersonasColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonasWith applies the HasEdge predicate on the "personas" edge with a given conditions (other predicates).
func HasPersonasWith(preds ...predicate.Persona) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newPersonasStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssues applies the HasEdge predicate on the "issues" edge.
func HasIssues() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssuesWith applies the HasEdge predicate on the "issues" edge with a given conditions (other predicates).
func HasIssuesWith(preds ...predicate.Issue) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newIssuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInsights applies the HasEdge predicate on the "insights" edge.
func HasInsights() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightsWith applies the HasEdge predicate on the "insights" edge with a given conditions (other predicates).
func HasInsightsWith(preds ...predicate.Insight) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newInsightsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSchedules applies the HasEdge predicate on the "schedules" edge.
func HasSchedules() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SchedulesTable, SchedulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchedulesWith applies the HasEdge predicate on the "schedules" edge with a given conditions (other predicates).
func HasSchedulesWith(preds ...predicate.Schedule) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newSchedulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.StudyJob) predicate.Study {
	return predicate.Study(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Study) predicate.Study {
	return predicate.Study(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Study) predicate.Study {
	return predicate.Study(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Study) predicate.Study {
	return predicate.Study(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldSessionID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStepNumber, v))
}

// PageURL applies equality check predicate on the "page_url" field. It's identical to PageURLEQ.
func PageURL(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPageURL, v))
}

// PageTitle applies equality check predicate on the "page_title" field. It's identical to PageTitleEQ.
func PageTitle(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPageTitle, v))
}

// ScreenshotRef applies equality check predicate on the "screenshot_ref" field. It's identical to ScreenshotRefEQ.
func ScreenshotRef(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldScreenshotRef, v))
}

// ThinkAloud applies equality check predicate on the "think_aloud" field. It's identical to ThinkAloudEQ.
func ThinkAloud(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldThinkAloud, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldConfidence, v))
}

// TaskProgress applies equality check predicate on the "task_progress" field. It's identical to TaskProgressEQ.
func TaskProgress(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTaskProgress, v))
}

// ClickX applies equality check predicate on the "click_x" field. It's identical to ClickXEQ.
func ClickX(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldClickX, v))
}

// ClickY applies equality check predicate on the "click_y" field. It's identical to ClickYEQ.
func ClickY(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldClickY, v))
}

// ViewportW applies equality check predicate on the "viewport_w" field. It's identical to ViewportWEQ.
func ViewportW(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldViewportW, v))
}

// ViewportH applies equality check predicate on the "viewport_h" field. It's identical to ViewportHEQ.
func ViewportH(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldViewportH, v))
}

// ScrollY applies equality check predicate on the "scroll_y" field. It's identical to ScrollYEQ.
func ScrollY(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldScrollY, v))
}

// MaxScrollY applies equality check predicate on the "max_scroll_y" field. It's identical to MaxScrollYEQ.
func MaxScrollY(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldMaxScrollY, v))
}

// LoadTimeMs applies equality check predicate on the "load_time_ms" field. It's identical to LoadTimeMsEQ.
func LoadTimeMs(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldLoadTimeMs, v))
}

// FirstPaintMs applies equality check predicate on the "first_paint_ms" field. It's identical to FirstPaintMsEQ.
func FirstPaintMs(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldFirstPaintMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldSessionID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStepNumber, v))
}

// PageURLEQ applies the EQ predicate on the "page_url" field.
func PageURLEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPageURL, v))
}

// PageURLNEQ applies the NEQ predicate on the "page_url" field.
func PageURLNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldPageURL, v))
}

// PageURLIn applies the In predicate on the "page_url" field.
func PageURLIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldPageURL, vs...))
}

// PageURLNotIn applies the NotIn predicate on the "page_url" field.
func PageURLNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldPageURL, vs...))
}

// PageURLGT applies the GT predicate on the "page_url" field.
func PageURLGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldPageURL, v))
}

// PageURLGTE applies the GTE predicate on the "page_url" field.
func PageURLGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldPageURL, v))
}

// PageURLLT applies the LT predicate on the "page_url" field.
func PageURLLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldPageURL, v))
}

// PageURLLTE applies the LTE predicate on the "page_url" field.
func PageURLLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldPageURL, v))
}

// PageURLContains applies the Contains predicate on the "page_url" field.
func PageURLContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldPageURL, v))
}

// PageURLHasPrefix applies the HasPrefix predicate on the "page_url" field.
func PageURLHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldPageURL, v))
}

// PageURLHasSuffix applies the HasSuffix predicate on the "page_url" field.
func PageURLHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldPageURL, v))
}

// PageURLEqualFold applies the EqualFold predicate on the "page_url" field.
func PageURLEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldPageURL, v))
}

// PageURLContainsFold applies the ContainsFold predicate on the "page_url" field.
func PageURLContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldPageURL, v))
}

// PageTitleEQ applies the EQ predicate on the "page_title" field.
func PageTitleEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPageTitle, v))
}

// PageTitleNEQ applies the NEQ predicate on the "page_title" field.
func PageTitleNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldPageTitle, v))
}

// PageTitleIn applies the In predicate on the "page_title" field.
func PageTitleIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldPageTitle, vs...))
}

// PageTitleNotIn applies the NotIn predicate on the "page_title" field.
func PageTitleNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldPageTitle, vs...))
}

// PageTitleGT applies the GT predicate on the "page_title" field.
func PageTitleGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldPageTitle, v))
}

// PageTitleGTE applies the GTE predicate on the "page_title" field.
func PageTitleGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldPageTitle, v))
}

// PageTitleLT applies the LT predicate on the "page_title" field.
func PageTitleLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldPageTitle, v))
}

// PageTitleLTE applies the LTE predicate on the "page_title" field.
func PageTitleLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldPageTitle, v))
}

// PageTitleContains applies the Contains predicate on the "page_title" field.
func PageTitleContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldPageTitle, v))
}

// PageTitleHasPrefix applies the HasPrefix predicate on the "page_title" field.
func PageTitleHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldPageTitle, v))
}

// PageTitleHasSuffix applies the HasSuffix predicate on the "page_title" field.
func PageTitleHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldPageTitle, v))
}

// PageTitleIsNil applies the IsNil predicate on the "page_title" field.
func PageTitleIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldPageTitle))
}

// PageTitleNotNil applies the NotNil predicate on the "page_title" field.
func PageTitleNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldPageTitle))
}

// PageTitleEqualFold applies the EqualFold predicate on the "page_title" field.
func PageTitleEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldPageTitle, v))
}

// PageTitleContainsFold applies the ContainsFold predicate on the "page_title" field.
func PageTitleContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldPageTitle, v))
}

// ScreenshotRefEQ applies the EQ predicate on the "screenshot_ref" field.
func ScreenshotRefEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldScreenshotRef, v))
}

// ScreenshotRefNEQ applies the NEQ predicate on the "screenshot_ref" field.
func ScreenshotRefNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldScreenshotRef, v))
}

// ScreenshotRefIn applies the In predicate on the "screenshot_ref" field.
func ScreenshotRefIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldScreenshotRef, vs...))
}

// ScreenshotRefNotIn applies the NotIn predicate on the "screenshot_ref" field.
func ScreenshotRefNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldScreenshotRef, vs...))
}

// ScreenshotRefGT applies the GT predicate on the "screenshot_ref" field.
func ScreenshotRefGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldScreenshotRef, v))
}

// ScreenshotRefGTE applies the GTE predicate on the "screenshot_ref" field.
func ScreenshotRefGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldScreenshotRef, v))
}

// ScreenshotRefLT applies the LT predicate on the "screenshot_ref" field.
func ScreenshotRefLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldScreenshotRef, v))
}

// ScreenshotRefLTE applies the LTE predicate on the "screenshot_ref" field.
func ScreenshotRefLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldScreenshotRef, v))
}

// ScreenshotRefContains applies the Contains predicate on the "screenshot_ref" field.
func ScreenshotRefContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldScreenshotRef, v))
}

// ScreenshotRefHasPrefix applies the HasPrefix predicate on the "screenshot_ref" field.
func ScreenshotRefHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldScreenshotRef, v))
}

// ScreenshotRefHasSuffix applies the HasSuffix predicate on the "screenshot_ref" field.
func ScreenshotRefHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldScreenshotRef, v))
}

// ScreenshotRefIsNil applies the IsNil predicate on the "screenshot_ref" field.
func ScreenshotRefIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldScreenshotRef))
}

// ScreenshotRefNotNil applies the NotNil predicate on the "screenshot_ref" field.
func ScreenshotRefNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldScreenshotRef))
}

// ScreenshotRefEqualFold applies the EqualFold predicate on the "screenshot_ref" field.
func ScreenshotRefEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldScreenshotRef, v))
}

// ScreenshotRefContainsFold applies the ContainsFold predicate on the "screenshot_ref" field.
func ScreenshotRefContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldScreenshotRef, v))
}

// ThinkAloudEQ applies the EQ predicate on the "think_aloud" field.
func ThinkAloudEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldThinkAloud, v))
}

// ThinkAloudNEQ applies the NEQ predicate on the "think_aloud" field.
func ThinkAloudNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldThinkAloud, v))
}

// ThinkAloudIn applies the In predicate on the "think_aloud" field.
func ThinkAloudIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldThinkAloud, vs...))
}

// ThinkAloudNotIn applies the NotIn predicate on the "think_aloud" field.
func ThinkAloudNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldThinkAloud, vs...))
}

// ThinkAloudGT applies the GT predicate on the "think_aloud" field.
func ThinkAloudGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldThinkAloud, v))
}

// ThinkAloudGTE applies the GTE predicate on the "think_aloud" field.
func ThinkAloudGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldThinkAloud, v))
}

// ThinkAloudLT applies the LT predicate on the "think_aloud" field.
func ThinkAloudLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldThinkAloud, v))
}

// ThinkAloudLTE applies the LTE predicate on the "think_aloud" field.
func ThinkAloudLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldThinkAloud, v))
}

// ThinkAloudContains applies the Contains predicate on the "think_aloud" field.
func ThinkAloudContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldThinkAloud, v))
}

// ThinkAloudHasPrefix applies the HasPrefix predicate on the "think_aloud" field.
func ThinkAloudHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldThinkAloud, v))
}

// ThinkAloudHasSuffix applies the HasSuffix predicate on the "think_aloud" field.
func ThinkAloudHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldThinkAloud, v))
}

// ThinkAloudIsNil applies the IsNil predicate on the "think_aloud" field.
func ThinkAloudIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldThinkAloud))
}

// ThinkAloudNotNil applies the NotNil predicate on the "think_aloud" field.
func ThinkAloudNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldThinkAloud))
}

// ThinkAloudEqualFold applies the EqualFold predicate on the "think_aloud" field.
func ThinkAloudEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldThinkAloud, v))
}

// ThinkAloudContainsFold applies the ContainsFold predicate on the "think_aloud" field.
func ThinkAloudContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldThinkAloud, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldConfidence, v))
}

// TaskProgressEQ applies the EQ predicate on the "task_progress" field.
func TaskProgressEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTaskProgress, v))
}

// TaskProgressNEQ applies the NEQ predicate on the "task_progress" field.
func TaskProgressNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTaskProgress, v))
}

// TaskProgressIn applies the In predicate on the "task_progress" field.
func TaskProgressIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTaskProgress, vs...))
}

// TaskProgressNotIn applies the NotIn predicate on the "task_progress" field.
func TaskProgressNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTaskProgress, vs...))
}

// TaskProgressGT applies the GT predicate on the "task_progress" field.
func TaskProgressGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTaskProgress, v))
}

// TaskProgressGTE applies the GTE predicate on the "task_progress" field.
func TaskProgressGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTaskProgress, v))
}

// TaskProgressLT applies the LT predicate on the "task_progress" field.
func TaskProgressLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTaskProgress, v))
}

// TaskProgressLTE applies the LTE predicate on the "task_progress" field.
func TaskProgressLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTaskProgress, v))
}

// EmotionalStateEQ applies the EQ predicate on the "emotional_state" field.
func EmotionalStateEQ(v EmotionalState) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldEmotionalState, v))
}

// EmotionalStateNEQ applies the NEQ predicate on the "emotional_state" field.
func EmotionalStateNEQ(v EmotionalState) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldEmotionalState, v))
}

// EmotionalStateIn applies the In predicate on the "emotional_state" field.
func EmotionalStateIn(vs ...EmotionalState) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldEmotionalState, vs...))
}

// EmotionalStateNotIn applies the NotIn predicate on the "emotional_state" field.
func EmotionalStateNotIn(vs ...EmotionalState) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldEmotionalState, vs...))
}

// ClickXEQ applies the EQ predicate on the "click_x" field.
func ClickXEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldClickX, v))
}

// ClickXNEQ applies the NEQ predicate on the "click_x" field.
func ClickXNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldClickX, v))
}

// ClickXIn applies the In predicate on the "click_x" field.
func ClickXIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldClickX, vs...))
}

// ClickXNotIn applies the NotIn predicate on the "click_x" field.
func ClickXNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldClickX, vs...))
}

// ClickXGT applies the GT predicate on the "click_x" field.
func ClickXGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldClickX, v))
}

// ClickXGTE applies the GTE predicate on the "click_x" field.
func ClickXGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldClickX, v))
}

// ClickXLT applies the LT predicate on the "click_x" field.
func ClickXLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldClickX, v))
}

// ClickXLTE applies the LTE predicate on the "click_x" field.
func ClickXLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldClickX, v))
}

// ClickXIsNil applies the IsNil predicate on the "click_x" field.
func ClickXIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldClickX))
}

// ClickXNotNil applies the NotNil predicate on the "click_x" field.
func ClickXNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldClickX))
}

// ClickYEQ applies the EQ predicate on the "click_y" field.
func ClickYEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldClickY, v))
}

// ClickYNEQ applies the NEQ predicate on the "click_y" field.
func ClickYNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldClickY, v))
}

// ClickYIn applies the In predicate on the "click_y" field.
func ClickYIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldClickY, vs...))
}

// ClickYNotIn applies the NotIn predicate on the "click_y" field.
func ClickYNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldClickY, vs...))
}

// ClickYGT applies the GT predicate on the "click_y" field.
func ClickYGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldClickY, v))
}

// ClickYGTE applies the GTE predicate on the "click_y" field.
func ClickYGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldClickY, v))
}

// ClickYLT applies the LT predicate on the "click_y" field.
func ClickYLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldClickY, v))
}

// ClickYLTE applies the LTE predicate on the "click_y" field.
func ClickYLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldClickY, v))
}

// ClickYIsNil applies the IsNil predicate on the "click_y" field.
func ClickYIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldClickY))
}

// ClickYNotNil applies the NotNil predicate on the "click_y" field.
func ClickYNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldClickY))
}

// ViewportWEQ applies the EQ predicate on the "viewport_w" field.
func ViewportWEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldViewportW, v))
}

// ViewportWNEQ applies the NEQ predicate on the "viewport_w" field.
func ViewportWNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldViewportW, v))
}

// ViewportWIn applies the In predicate on the "viewport_w" field.
func ViewportWIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldViewportW, vs...))
}

// ViewportWNotIn applies the NotIn predicate on the "viewport_w" field.
func ViewportWNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldViewportW, vs...))
}

// ViewportWGT applies the GT predicate on the "viewport_w" field.
func ViewportWGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldViewportW, v))
}

// ViewportWGTE applies the GTE predicate on the "viewport_w" field.
func ViewportWGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldViewportW, v))
}

// ViewportWLT applies the LT predicate on the "viewport_w" field.
func ViewportWLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldViewportW, v))
}

// ViewportWLTE applies the LTE predicate on the "viewport_w" field.
func ViewportWLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldViewportW, v))
}

// ViewportWIsNil applies the IsNil predicate on the "viewport_w" field.
func ViewportWIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldViewportW))
}

// ViewportWNotNil applies the NotNil predicate on the "viewport_w" field.
func ViewportWNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldViewportW))
}

// ViewportHEQ applies the EQ predicate on the "viewport_h" field.
func ViewportHEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldViewportH, v))
}

// ViewportHNEQ applies the NEQ predicate on the "viewport_h" field.
func ViewportHNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldViewportH, v))
}

// ViewportHIn applies the In predicate on the "viewport_h" field.
func ViewportHIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldViewportH, vs...))
}

// ViewportHNotIn applies the NotIn predicate on the "viewport_h" field.
func ViewportHNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldViewportH, vs...))
}

// ViewportHGT applies the GT predicate on the "viewport_h" field.
func ViewportHGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldViewportH, v))
}

// ViewportHGTE applies the GTE predicate on the "viewport_h" field.
func ViewportHGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldViewportH, v))
}

// ViewportHLT applies the LT predicate on the "viewport_h" field.
func ViewportHLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldViewportH, v))
}

// ViewportHLTE applies the LTE predicate on the "viewport_h" field.
func ViewportHLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldViewportH, v))
}

// ViewportHIsNil applies the IsNil predicate on the "viewport_h" field.
func ViewportHIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldViewportH))
}

// ViewportHNotNil applies the NotNil predicate on the "viewport_h" field.
func ViewportHNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldViewportH))
}

// ScrollYEQ applies the EQ predicate on the "scroll_y" field.
func ScrollYEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldScrollY, v))
}

// ScrollYNEQ applies the NEQ predicate on the "scroll_y" field.
func ScrollYNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldScrollY, v))
}

// ScrollYIn applies the In predicate on the "scroll_y" field.
func ScrollYIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldScrollY, vs...))
}

// ScrollYNotIn applies the NotIn predicate on the "scroll_y" field.
func ScrollYNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldScrollY, vs...))
}

// ScrollYGT applies the GT predicate on the "scroll_y" field.
func ScrollYGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldScrollY, v))
}

// ScrollYGTE applies the GTE predicate on the "scroll_y" field.
func ScrollYGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldScrollY, v))
}

// ScrollYLT applies the LT predicate on the "scroll_y" field.
func ScrollYLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldScrollY, v))
}

// ScrollYLTE applies the LTE predicate on the "scroll_y" field.
func ScrollYLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldScrollY, v))
}

// ScrollYIsNil applies the IsNil predicate on the "scroll_y" field.
func ScrollYIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldScrollY))
}

// ScrollYNotNil applies the NotNil predicate on the "scroll_y" field.
func ScrollYNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldScrollY))
}

// MaxScrollYEQ applies the EQ predicate on the "max_scroll_y" field.
func MaxScrollYEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldMaxScrollY, v))
}

// MaxScrollYNEQ applies the NEQ predicate on the "max_scroll_y" field.
func MaxScrollYNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldMaxScrollY, v))
}

// MaxScrollYIn applies the In predicate on the "max_scroll_y" field.
func MaxScrollYIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldMaxScrollY, vs...))
}

// MaxScrollYNotIn applies the NotIn predicate on the "max_scroll_y" field.
func MaxScrollYNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldMaxScrollY, vs...))
}

// MaxScrollYGT applies the GT predicate on the "max_scroll_y" field.
func MaxScrollYGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldMaxScrollY, v))
}

// MaxScrollYGTE applies the GTE predicate on the "max_scroll_y" field.
func MaxScrollYGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldMaxScrollY, v))
}

// MaxScrollYLT applies the LT predicate on the "max_scroll_y" field.
func MaxScrollYLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldMaxScrollY, v))
}

// MaxScrollYLTE applies the LTE predicate on the "max_scroll_y" field.
func MaxScrollYLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldMaxScrollY, v))
}

// MaxScrollYIsNil applies the IsNil predicate on the "max_scroll_y" field.
func MaxScrollYIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldMaxScrollY))
}

// MaxScrollYNotNil applies the NotNil predicate on the "max_scroll_y" field.
func MaxScrollYNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldMaxScrollY))
}

// LoadTimeMsEQ applies the EQ predicate on the "load_time_ms" field.
func LoadTimeMsEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldLoadTimeMs, v))
}

// LoadTimeMsNEQ applies the NEQ predicate on the "load_time_ms" field.
func LoadTimeMsNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldLoadTimeMs, v))
}

// LoadTimeMsIn applies the In predicate on the "load_time_ms" field.
func LoadTimeMsIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldLoadTimeMs, vs...))
}

// LoadTimeMsNotIn applies the NotIn predicate on the "load_time_ms" field.
func LoadTimeMsNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldLoadTimeMs, vs...))
}

// LoadTimeMsGT applies the GT predicate on the "load_time_ms" field.
func LoadTimeMsGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldLoadTimeMs, v))
}

// LoadTimeMsGTE applies the GTE predicate on the "load_time_ms" field.
func LoadTimeMsGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldLoadTimeMs, v))
}

// LoadTimeMsLT applies the LT predicate on the "load_time_ms" field.
func LoadTimeMsLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldLoadTimeMs, v))
}

// LoadTimeMsLTE applies the LTE predicate on the "load_time_ms" field.
func LoadTimeMsLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldLoadTimeMs, v))
}

// LoadTimeMsIsNil applies the IsNil predicate on the "load_time_ms" field.
func LoadTimeMsIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldLoadTimeMs))
}

// LoadTimeMsNotNil applies the NotNil predicate on the "load_time_ms" field.
func LoadTimeMsNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldLoadTimeMs))
}

// FirstPaintMsEQ applies the EQ predicate on the "first_paint_ms" field.
func FirstPaintMsEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldFirstPaintMs, v))
}

// FirstPaintMsNEQ applies the NEQ predicate on the "first_paint_ms" field.
func FirstPaintMsNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldFirstPaintMs, v))
}

// FirstPaintMsIn applies the In predicate on the "first_paint_ms" field.
func FirstPaintMsIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldFirstPaintMs, vs...))
}

// FirstPaintMsNotIn applies the NotIn predicate on the "first_paint_ms" field.
func FirstPaintMsNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldFirstPaintMs, vs...))
}

// FirstPaintMsGT applies the GT predicate on the "first_paint_ms" field.
func FirstPaintMsGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldFirstPaintMs, v))
}

// FirstPaintMsGTE applies the GTE predicate on the "first_paint_ms" field.
func FirstPaintMsGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldFirstPaintMs, v))
}

// FirstPaintMsLT applies the LT predicate on the "first_paint_ms" field.
func FirstPaintMsLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldFirstPaintMs, v))
}

// FirstPaintMsLTE applies the LTE predicate on the "first_paint_ms" field.
func FirstPaintMsLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldFirstPaintMs, v))
}

// FirstPaintMsIsNil applies the IsNil predicate on the "first_paint_ms" field.
func FirstPaintMsIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldFirstPaintMs))
}

// FirstPaintMsNotNil applies the NotNil predicate on the "first_paint_ms" field.
func FirstPaintMsNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldFirstPaintMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssues applies the HasEdge predicate on the "issues" edge.
func HasIssues() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IssuesTable, IssuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssuesWith applies the HasEdge predicate on the "issues" edge with a given conditions (other predicates).
func HasIssuesWith(preds ...predicate.Issue) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newIssuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}

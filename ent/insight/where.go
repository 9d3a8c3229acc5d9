// Code generated by ent, DO NOT EDIT.

package insight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldStudyID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldDescription, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldSeverity, v))
}

// Impact applies equality check predicate on the "impact" field. It's identical to ImpactEQ.
func Impact(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldImpact, v))
}

// Effort applies equality check predicate on the "effort" field. It's identical to EffortEQ.
func Effort(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEffort, v))
}

// Evidence applies equality check predicate on the "evidence" field. It's identical to EvidenceEQ.
func Evidence(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEvidence, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldRank, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldStudyID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldDescription, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldSeverity))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldSeverity, v))
}

// ImpactEQ applies the EQ predicate on the "impact" field.
func ImpactEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldImpact, v))
}

// ImpactNEQ applies the NEQ predicate on the "impact" field.
func ImpactNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldImpact, v))
}

// ImpactIn applies the In predicate on the "impact" field.
func ImpactIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldImpact, vs...))
}

// ImpactNotIn applies the NotIn predicate on the "impact" field.
func ImpactNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldImpact, vs...))
}

// ImpactGT applies the GT predicate on the "impact" field.
func ImpactGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldImpact, v))
}

// ImpactGTE applies the GTE predicate on the "impact" field.
func ImpactGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldImpact, v))
}

// ImpactLT applies the LT predicate on the "impact" field.
func ImpactLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldImpact, v))
}

// ImpactLTE applies the LTE predicate on the "impact" field.
func ImpactLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldImpact, v))
}

// ImpactContains applies the Contains predicate on the "impact" field.
func ImpactContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldImpact, v))
}

// ImpactHasPrefix applies the HasPrefix predicate on the "impact" field.
func ImpactHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldImpact, v))
}

// ImpactHasSuffix applies the HasSuffix predicate on the "impact" field.
func ImpactHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldImpact, v))
}

// ImpactIsNil applies the IsNil predicate on the "impact" field.
func ImpactIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldImpact))
}

// ImpactNotNil applies the NotNil predicate on the "impact" field.
func ImpactNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldImpact))
}

// ImpactEqualFold applies the EqualFold predicate on the "impact" field.
func ImpactEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldImpact, v))
}

// ImpactContainsFold applies the ContainsFold predicate on the "impact" field.
func ImpactContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldImpact, v))
}

// EffortEQ applies the EQ predicate on the "effort" field.
func EffortEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEffort, v))
}

// EffortNEQ applies the NEQ predicate on the "effort" field.
func EffortNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldEffort, v))
}

// EffortIn applies the In predicate on the "effort" field.
func EffortIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldEffort, vs...))
}

// EffortNotIn applies the NotIn predicate on the "effort" field.
func EffortNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldEffort, vs...))
}

// EffortGT applies the GT predicate on the "effort" field.
func EffortGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldEffort, v))
}

// EffortGTE applies the GTE predicate on the "effort" field.
func EffortGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldEffort, v))
}

// EffortLT applies the LT predicate on the "effort" field.
func EffortLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldEffort, v))
}

// EffortLTE applies the LTE predicate on the "effort" field.
func EffortLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldEffort, v))
}

// EffortContains applies the Contains predicate on the "effort" field.
func EffortContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldEffort, v))
}

// EffortHasPrefix applies the HasPrefix predicate on the "effort" field.
func EffortHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldEffort, v))
}

// EffortHasSuffix applies the HasSuffix predicate on the "effort" field.
func EffortHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldEffort, v))
}

// EffortIsNil applies the IsNil predicate on the "effort" field.
func EffortIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldEffort))
}

// EffortNotNil applies the NotNil predicate on the "effort" field.
func EffortNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldEffort))
}

// EffortEqualFold applies the EqualFold predicate on the "effort" field.
func EffortEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldEffort, v))
}

// EffortContainsFold applies the ContainsFold predicate on the "effort" field.
func EffortContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldEffort, v))
}

// PersonasAffectedIsNil applies the IsNil predicate on the "personas_affected" field.
func PersonasAffectedIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldPersonasAffected))
}

// PersonasAffectedNotNil applies the NotNil predicate on the "personas_affected" field.
func PersonasAffectedNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldPersonasAffected))
}

// EvidenceEQ applies the EQ predicate on the "evidence" field.
func EvidenceEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEvidence, v))
}

// EvidenceNEQ applies the NEQ predicate on the "evidence" field.
func EvidenceNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldEvidence, v))
}

// EvidenceIn applies the In predicate on the "evidence" field.
func EvidenceIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldEvidence, vs...))
}

// EvidenceNotIn applies the NotIn predicate on the "evidence" field.
func EvidenceNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldEvidence, vs...))
}

// EvidenceGT applies the GT predicate on the "evidence" field.
func EvidenceGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldEvidence, v))
}

// EvidenceGTE applies the GTE predicate on the "evidence" field.
func EvidenceGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldEvidence, v))
}

// EvidenceLT applies the LT predicate on the "evidence" field.
func EvidenceLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldEvidence, v))
}

// EvidenceLTE applies the LTE predicate on the "evidence" field.
func EvidenceLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldEvidence, v))
}

// EvidenceContains applies the Contains predicate on the "evidence" field.
func EvidenceContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldEvidence, v))
}

// EvidenceHasPrefix applies the HasPrefix predicate on the "evidence" field.
func EvidenceHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldEvidence, v))
}

// EvidenceHasSuffix applies the HasSuffix predicate on the "evidence" field.
func EvidenceHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldEvidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldEvidence))
}

// EvidenceEqualFold applies the EqualFold predicate on the "evidence" field.
func EvidenceEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldEvidence, v))
}

// EvidenceContainsFold applies the ContainsFold predicate on the "evidence" field.
func EvidenceContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldEvidence, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldRank, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.NotPredicates(p))
}

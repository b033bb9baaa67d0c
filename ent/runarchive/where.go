// Code generated by ent, DO NOT EDIT.

package runarchive

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldRunID, v))
}

// ArchivePath applies equality check predicate on the "archive_path" field. It's identical to ArchivePathEQ.
func ArchivePath(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldArchivePath, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldSummary, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContainsFold(FieldRunID, v))
}

// ArchivePathEQ applies the EQ predicate on the "archive_path" field.
func ArchivePathEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldArchivePath, v))
}

// ArchivePathNEQ applies the NEQ predicate on the "archive_path" field.
func ArchivePathNEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNEQ(FieldArchivePath, v))
}

// ArchivePathIn applies the In predicate on the "archive_path" field.
func ArchivePathIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldIn(FieldArchivePath, vs...))
}

// ArchivePathNotIn applies the NotIn predicate on the "archive_path" field.
func ArchivePathNotIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNotIn(FieldArchivePath, vs...))
}

// ArchivePathGT applies the GT predicate on the "archive_path" field.
func ArchivePathGT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGT(FieldArchivePath, v))
}

// ArchivePathGTE applies the GTE predicate on the "archive_path" field.
func ArchivePathGTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGTE(FieldArchivePath, v))
}

// ArchivePathLT applies the LT predicate on the "archive_path" field.
func ArchivePathLT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLT(FieldArchivePath, v))
}

// ArchivePathLTE applies the LTE predicate on the "archive_path" field.
func ArchivePathLTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLTE(FieldArchivePath, v))
}

// ArchivePathContains applies the Contains predicate on the "archive_path" field.
func ArchivePathContains(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContains(FieldArchivePath, v))
}

// ArchivePathHasPrefix applies the HasPrefix predicate on the "archive_path" field.
func ArchivePathHasPrefix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasPrefix(FieldArchivePath, v))
}

// ArchivePathHasSuffix applies the HasSuffix predicate on the "archive_path" field.
func ArchivePathHasSuffix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasSuffix(FieldArchivePath, v))
}

// ArchivePathEqualFold applies the EqualFold predicate on the "archive_path" field.
func ArchivePathEqualFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEqualFold(FieldArchivePath, v))
}

// ArchivePathContainsFold applies the ContainsFold predicate on the "archive_path" field.
func ArchivePathContainsFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContainsFold(FieldArchivePath, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContainsFold(FieldSummary, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunArchive {
	return predicate.RunArchive(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunArchive {
	return predicate.RunArchive(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.AgentRun) predicate.RunArchive {
	return predicate.RunArchive(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunArchive) predicate.RunArchive {
	return predicate.RunArchive(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunArchive) predicate.RunArchive {
	return predicate.RunArchive(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunArchive) predicate.RunArchive {
	return predicate.RunArchive(sql.NotPredicates(p))
}

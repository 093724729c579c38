// Code generated by ent, DO NOT EDIT.

package attacheddocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldBusinessID, v))
}

// BoxID applies equality check predicate on the "box_id" field. It's identical to BoxIDEQ.
func BoxID(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldBoxID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldFileExt, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldContentHash, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldDocType, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldBusinessID, v))
}

// BoxIDEQ applies the EQ predicate on the "box_id" field.
func BoxIDEQ(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldBoxID, v))
}

// BoxIDNEQ applies the NEQ predicate on the "box_id" field.
func BoxIDNEQ(v uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldBoxID, v))
}

// BoxIDIn applies the In predicate on the "box_id" field.
func BoxIDIn(vs ...uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldBoxID, vs...))
}

// BoxIDNotIn applies the NotIn predicate on the "box_id" field.
func BoxIDNotIn(vs ...uuid.UUID) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldBoxID, vs...))
}

// BoxIDIsNil applies the IsNil predicate on the "box_id" field.
func BoxIDIsNil() predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIsNull(FieldBoxID))
}

// BoxIDNotNil applies the NotNil predicate on the "box_id" field.
func BoxIDNotNil() predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotNull(FieldBoxID))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldContainsFold(FieldFileExt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotNull(FieldContentHash))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldContainsFold(FieldDocType, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// HasBox applies the HasEdge predicate on the "box" edge.
func HasBox() predicate.AttachedDocument {
	return predicate.AttachedDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BoxTable, BoxColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBoxWith applies the HasEdge predicate on the "box" edge with a given conditions (other predicates).
func HasBoxWith(preds ...predicate.Box) predicate.AttachedDocument {
	return predicate.AttachedDocument(func(s *sql.Selector) {
		step := newBoxStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.AttachedDocument {
	return predicate.AttachedDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.Extraction) predicate.AttachedDocument {
	return predicate.AttachedDocument(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttachedDocument) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttachedDocument) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttachedDocument) predicate.AttachedDocument {
	return predicate.AttachedDocument(sql.NotPredicates(p))
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/db/ent/schema/utils"
)

// Extraction rows are immutable once written: a re-read of the same file
// inserts a new row rather than updating the old one.
type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("doc_type").
			Validate(utils.EnumValidator(constants.DocTypeStrings()...)),
		field.Float32("confidence").Default(0).
			Min(0).Max(1),
		field.Float("amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("contact_name").Optional().Nillable(),
		field.Time("document_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("document_number").Optional().Nillable(),
		field.String("tax_id").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.String("status").
			Default(string(constants.ExtractionQueued)).
			Validate(utils.EnumValidator(constants.ExtractionStatusStrings()...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY extractions -> ONE document (FK: extractions.document_id)
		edge.From("document", AttachedDocument.Type).
			Ref("extractions").
			Field("document_id").
			Required().
			Unique(),
	}
}

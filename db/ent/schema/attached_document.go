package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/constants"
	"github.com/teerapat-ng/docbox/db/ent/schema/utils"
)

type AttachedDocument struct{ ent.Schema }

func (AttachedDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attached_documents"},
	}
}

func (AttachedDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("business_id", uuid.UUID{}),
		// Nil while the file sits in the inbox awaiting placement.
		field.UUID("box_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("doc_type").
			Validate(utils.EnumValidator(constants.DocTypeStrings()...)),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (AttachedDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE box (FK: attached_documents.box_id)
		edge.From("box", Box.Type).
			Ref("documents").
			Field("box_id").
			Unique(),
		// ONE document -> MANY extraction records (re-reads append)
		edge.To("extractions", Extraction.Type),
	}
}

func (AttachedDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("box_id", "doc_type"),
		index.Fields("business_id", "uploaded_at"),
	}
}

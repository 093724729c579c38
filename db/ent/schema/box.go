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

type Box struct{ ent.Schema }

func (Box) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "boxes"},
	}
}

func (Box) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("business_id", uuid.UUID{}),
		field.String("box_type").
			Validate(utils.EnumValidator(constants.BoxTypeStrings()...)),
		field.String("expense_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ExpenseTypeStrings()...)),
		field.String("contact_name").Optional().Default(""),
		field.String("contact_tax_id").Optional().Default(""),
		field.Time("box_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("has_vat").Default(false),
		field.Bool("has_wht").Default(false),
		field.Float("wht_rate").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("total_amount").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_amount").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("wht_amount").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("payment_status").
			Default(string(constants.PaymentStatusUnpaid)).
			Validate(utils.EnumValidator(constants.PaymentStatusStrings()...)),
		field.String("no_receipt_reason").Optional().Nillable().
			Validate(utils.EnumValidator(constants.NoReceiptReasonStrings()...)),
		// Human attestations; never derived from uploaded evidence.
		field.Bool("is_paid").Default(false),
		field.Bool("wht_sent").Default(false),
		// Derived. Written only inside the same transaction that mutates
		// the attached document set or a checklist-relevant flag.
		field.String("doc_status").
			Default(string(constants.DocStatusIncomplete)).
			Validate(utils.EnumValidator(constants.DocStatusStrings()...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Box) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY boxes -> ONE business (FK: boxes.business_id)
		edge.From("business", Business.Type).
			Ref("boxes").
			Field("business_id").
			Required().
			Unique(),
		// ONE box -> MANY attached documents
		edge.To("documents", AttachedDocument.Type),
	}
}

func (Box) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "box_date"),
		index.Fields("business_id", "doc_status"),
	}
}

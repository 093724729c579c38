package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Business struct{ ent.Schema }

func (Business) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "businesses"},
	}
}

func (Business) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("tax_id").Optional(),
		field.String("default_currency").NotEmpty().MinLen(3).MaxLen(3).
			Default("THB"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Business) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE business -> MANY boxes
		edge.To("boxes", Box.Type),
	}
}

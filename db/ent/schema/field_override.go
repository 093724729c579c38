package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FieldOverride records a human's explicit choice for one aggregated
// field of a box. It stays authoritative across re-aggregation until
// the row is deleted.
type FieldOverride struct{ ent.Schema }

func (FieldOverride) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_overrides"},
	}
}

func (FieldOverride) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("box_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.String("value"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FieldOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("box_id", "field_name").Unique(),
	}
}

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
)

type Material struct{ ent.Schema }

func (Material) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "materials"},
	}
}

func (Material) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// No unique constraint on (name, supplier_id): near-duplicate
		// detection in the resolution engine is the uniqueness guard.
		field.String("name").NotEmpty(),
		field.UUID("supplier_id", uuid.UUID{}),
		field.String("unit").NotEmpty(),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("stock_quantity").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.UUID("owner_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Material) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("supplier", Supplier.Type).
			Ref("materials").
			Field("supplier_id").
			Required().
			Unique(),
		edge.To("stage_materials", StageMaterial.Type),
	}
}

func (Material) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id"),
	}
}

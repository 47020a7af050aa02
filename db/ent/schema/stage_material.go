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

type StageMaterial struct{ ent.Schema }

func (StageMaterial) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stage_materials"},
	}
}

func (StageMaterial) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("stage_id", uuid.UUID{}),
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("material_id", uuid.UUID{}),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("total_value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("purchase_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StageMaterial) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", Stage.Type).
			Ref("stage_materials").
			Field("stage_id").
			Required().
			Unique(),
		edge.From("material", Material.Type).
			Ref("stage_materials").
			Field("material_id").
			Required().
			Unique(),
	}
}

func (StageMaterial) Indexes() []ent.Index {
	return []ent.Index{
		// One link per (stage, material); ingestion updates instead of
		// inserting a second row.
		index.Fields("stage_id", "material_id").Unique(),
		index.Fields("project_id"),
	}
}

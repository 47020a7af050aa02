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
)

type Stage struct{ ent.Schema }

func (Stage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stages"},
	}
}

func (Stage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Float("budgeted_value").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		// Sum of total_value across linked materials; recomputed after
		// every linkage change.
		field.Float("realized_value").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Stage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("stages").
			Field("project_id").
			Required().
			Unique(),
		edge.To("stage_materials", StageMaterial.Type),
		edge.To("documents", BudgetDocument.Type),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type BudgetDocument struct{ ent.Schema }

func (BudgetDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "budget_documents"},
	}
}

func (BudgetDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("supplier_id", uuid.UUID{}),
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("stage_id", uuid.UUID{}),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Bytes("content_hash").NotEmpty(),
		field.String("storage_key").Optional(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (BudgetDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("supplier", Supplier.Type).
			Ref("documents").
			Field("supplier_id").
			Required().
			Unique(),
		edge.From("stage", Stage.Type).
			Ref("documents").
			Field("stage_id").
			Required().
			Unique(),
		edge.To("jobs", IngestJob.Type),
	}
}

func (BudgetDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id", "content_hash"),
		index.Fields("stage_id"),
	}
}

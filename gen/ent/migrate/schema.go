// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BudgetDocumentsColumns holds the columns for the "budget_documents" table.
	BudgetDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "storage_key", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "stage_id", Type: field.TypeUUID},
		{Name: "supplier_id", Type: field.TypeUUID},
	}
	// BudgetDocumentsTable holds the schema information for the "budget_documents" table.
	BudgetDocumentsTable = &schema.Table{
		Name:       "budget_documents",
		Columns:    BudgetDocumentsColumns,
		PrimaryKey: []*schema.Column{BudgetDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "budget_documents_stages_documents",
				Columns:    []*schema.Column{BudgetDocumentsColumns[8]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "budget_documents_suppliers_documents",
				Columns:    []*schema.Column{BudgetDocumentsColumns[9]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "budgetdocument_supplier_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{BudgetDocumentsColumns[9], BudgetDocumentsColumns[5]},
			},
			{
				Name:    "budgetdocument_stage_id",
				Unique:  false,
				Columns: []*schema.Column{BudgetDocumentsColumns[8]},
			},
		},
	}
	// IngestJobsColumns holds the columns for the "ingest_jobs" table.
	IngestJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "items_found", Type: field.TypeInt, Default: 0},
		{Name: "created_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// IngestJobsTable holds the schema information for the "ingest_jobs" table.
	IngestJobsTable = &schema.Table{
		Name:       "ingest_jobs",
		Columns:    IngestJobsColumns,
		PrimaryKey: []*schema.Column{IngestJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ingest_jobs_budget_documents_jobs",
				Columns:    []*schema.Column{IngestJobsColumns[11]},
				RefColumns: []*schema.Column{BudgetDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_document_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[11], IngestJobsColumns[4], IngestJobsColumns[2]},
			},
		},
	}
	// MaterialsColumns holds the columns for the "materials" table.
	MaterialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "stock_quantity", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID},
	}
	// MaterialsTable holds the schema information for the "materials" table.
	MaterialsTable = &schema.Table{
		Name:       "materials",
		Columns:    MaterialsColumns,
		PrimaryKey: []*schema.Column{MaterialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "materials_suppliers_materials",
				Columns:    []*schema.Column{MaterialsColumns[8]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "material_supplier_id",
				Unique:  false,
				Columns: []*schema.Column{MaterialsColumns[8]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "budgeted_value", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "realized_value", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_projects_stages",
				Columns:    []*schema.Column{StagesColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// StageMaterialsColumns holds the columns for the "stage_materials" table.
	StageMaterialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "total_value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "purchase_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "material_id", Type: field.TypeUUID},
		{Name: "stage_id", Type: field.TypeUUID},
	}
	// StageMaterialsTable holds the schema information for the "stage_materials" table.
	StageMaterialsTable = &schema.Table{
		Name:       "stage_materials",
		Columns:    StageMaterialsColumns,
		PrimaryKey: []*schema.Column{StageMaterialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_materials_materials_stage_materials",
				Columns:    []*schema.Column{StageMaterialsColumns[7]},
				RefColumns: []*schema.Column{MaterialsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "stage_materials_stages_stage_materials",
				Columns:    []*schema.Column{StageMaterialsColumns[8]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagematerial_stage_id_material_id",
				Unique:  true,
				Columns: []*schema.Column{StageMaterialsColumns[8], StageMaterialsColumns[7]},
			},
			{
				Name:    "stagematerial_project_id",
				Unique:  false,
				Columns: []*schema.Column{StageMaterialsColumns[1]},
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "tax_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BudgetDocumentsTable,
		IngestJobsTable,
		MaterialsTable,
		ProjectsTable,
		StagesTable,
		StageMaterialsTable,
		SuppliersTable,
	}
)

func init() {
	BudgetDocumentsTable.ForeignKeys[0].RefTable = StagesTable
	BudgetDocumentsTable.ForeignKeys[1].RefTable = SuppliersTable
	BudgetDocumentsTable.Annotation = &entsql.Annotation{
		Table: "budget_documents",
	}
	IngestJobsTable.ForeignKeys[0].RefTable = BudgetDocumentsTable
	IngestJobsTable.Annotation = &entsql.Annotation{
		Table: "ingest_jobs",
	}
	MaterialsTable.ForeignKeys[0].RefTable = SuppliersTable
	MaterialsTable.Annotation = &entsql.Annotation{
		Table: "materials",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	StagesTable.ForeignKeys[0].RefTable = ProjectsTable
	StagesTable.Annotation = &entsql.Annotation{
		Table: "stages",
	}
	StageMaterialsTable.ForeignKeys[0].RefTable = MaterialsTable
	StageMaterialsTable.ForeignKeys[1].RefTable = StagesTable
	StageMaterialsTable.Annotation = &entsql.Annotation{
		Table: "stage_materials",
	}
	SuppliersTable.Annotation = &entsql.Annotation{
		Table: "suppliers",
	}
}

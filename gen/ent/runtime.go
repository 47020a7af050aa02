// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/obratech/obras-tracker/db/ent/schema"
	"github.com/obratech/obras-tracker/gen/ent/budgetdocument"
	"github.com/obratech/obras-tracker/gen/ent/ingestjob"
	"github.com/obratech/obras-tracker/gen/ent/material"
	"github.com/obratech/obras-tracker/gen/ent/project"
	"github.com/obratech/obras-tracker/gen/ent/stage"
	"github.com/obratech/obras-tracker/gen/ent/stagematerial"
	"github.com/obratech/obras-tracker/gen/ent/supplier"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	budgetdocumentFields := schema.BudgetDocument{}.Fields()
	_ = budgetdocumentFields
	// budgetdocumentDescFilename is the schema descriptor for filename field.
	budgetdocumentDescFilename := budgetdocumentFields[5].Descriptor()
	// budgetdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	budgetdocument.FilenameValidator = budgetdocumentDescFilename.Validators[0].(func(string) error)
	// budgetdocumentDescContentType is the schema descriptor for content_type field.
	budgetdocumentDescContentType := budgetdocumentFields[6].Descriptor()
	// budgetdocument.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	budgetdocument.ContentTypeValidator = budgetdocumentDescContentType.Validators[0].(func(string) error)
	// budgetdocumentDescContentHash is the schema descriptor for content_hash field.
	budgetdocumentDescContentHash := budgetdocumentFields[7].Descriptor()
	// budgetdocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	budgetdocument.ContentHashValidator = budgetdocumentDescContentHash.Validators[0].(func([]byte) error)
	// budgetdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	budgetdocumentDescUploadedAt := budgetdocumentFields[9].Descriptor()
	// budgetdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	budgetdocument.DefaultUploadedAt = budgetdocumentDescUploadedAt.Default.(func() time.Time)
	// budgetdocumentDescID is the schema descriptor for id field.
	budgetdocumentDescID := budgetdocumentFields[0].Descriptor()
	// budgetdocument.DefaultID holds the default value on creation for the id field.
	budgetdocument.DefaultID = budgetdocumentDescID.Default.(func() uuid.UUID)
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescFormat is the schema descriptor for format field.
	ingestjobDescFormat := ingestjobFields[2].Descriptor()
	// ingestjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	ingestjob.FormatValidator = func() func(string) error {
		validators := ingestjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ingestjobDescStartedAt is the schema descriptor for started_at field.
	ingestjobDescStartedAt := ingestjobFields[3].Descriptor()
	// ingestjob.DefaultStartedAt holds the default value on creation for the started_at field.
	ingestjob.DefaultStartedAt = ingestjobDescStartedAt.Default.(func() time.Time)
	// ingestjobDescItemsFound is the schema descriptor for items_found field.
	ingestjobDescItemsFound := ingestjobFields[8].Descriptor()
	// ingestjob.DefaultItemsFound holds the default value on creation for the items_found field.
	ingestjob.DefaultItemsFound = ingestjobDescItemsFound.Default.(int)
	// ingestjobDescCreatedCount is the schema descriptor for created_count field.
	ingestjobDescCreatedCount := ingestjobFields[9].Descriptor()
	// ingestjob.DefaultCreatedCount holds the default value on creation for the created_count field.
	ingestjob.DefaultCreatedCount = ingestjobDescCreatedCount.Default.(int)
	// ingestjobDescUpdatedCount is the schema descriptor for updated_count field.
	ingestjobDescUpdatedCount := ingestjobFields[10].Descriptor()
	// ingestjob.DefaultUpdatedCount holds the default value on creation for the updated_count field.
	ingestjob.DefaultUpdatedCount = ingestjobDescUpdatedCount.Default.(int)
	// ingestjobDescFailedCount is the schema descriptor for failed_count field.
	ingestjobDescFailedCount := ingestjobFields[11].Descriptor()
	// ingestjob.DefaultFailedCount holds the default value on creation for the failed_count field.
	ingestjob.DefaultFailedCount = ingestjobDescFailedCount.Default.(int)
	// ingestjobDescID is the schema descriptor for id field.
	ingestjobDescID := ingestjobFields[0].Descriptor()
	// ingestjob.DefaultID holds the default value on creation for the id field.
	ingestjob.DefaultID = ingestjobDescID.Default.(func() uuid.UUID)
	materialFields := schema.Material{}.Fields()
	_ = materialFields
	// materialDescName is the schema descriptor for name field.
	materialDescName := materialFields[1].Descriptor()
	// material.NameValidator is a validator for the "name" field. It is called by the builders before save.
	material.NameValidator = materialDescName.Validators[0].(func(string) error)
	// materialDescUnit is the schema descriptor for unit field.
	materialDescUnit := materialFields[3].Descriptor()
	// material.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	material.UnitValidator = materialDescUnit.Validators[0].(func(string) error)
	// materialDescStockQuantity is the schema descriptor for stock_quantity field.
	materialDescStockQuantity := materialFields[5].Descriptor()
	// material.DefaultStockQuantity holds the default value on creation for the stock_quantity field.
	material.DefaultStockQuantity = materialDescStockQuantity.Default.(float64)
	// materialDescCreatedAt is the schema descriptor for created_at field.
	materialDescCreatedAt := materialFields[7].Descriptor()
	// material.DefaultCreatedAt holds the default value on creation for the created_at field.
	material.DefaultCreatedAt = materialDescCreatedAt.Default.(func() time.Time)
	// materialDescUpdatedAt is the schema descriptor for updated_at field.
	materialDescUpdatedAt := materialFields[8].Descriptor()
	// material.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	material.DefaultUpdatedAt = materialDescUpdatedAt.Default.(func() time.Time)
	// material.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	material.UpdateDefaultUpdatedAt = materialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// materialDescID is the schema descriptor for id field.
	materialDescID := materialFields[0].Descriptor()
	// material.DefaultID holds the default value on creation for the id field.
	material.DefaultID = materialDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[4].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	stageFields := schema.Stage{}.Fields()
	_ = stageFields
	// stageDescName is the schema descriptor for name field.
	stageDescName := stageFields[2].Descriptor()
	// stage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	stage.NameValidator = stageDescName.Validators[0].(func(string) error)
	// stageDescBudgetedValue is the schema descriptor for budgeted_value field.
	stageDescBudgetedValue := stageFields[3].Descriptor()
	// stage.DefaultBudgetedValue holds the default value on creation for the budgeted_value field.
	stage.DefaultBudgetedValue = stageDescBudgetedValue.Default.(float64)
	// stageDescRealizedValue is the schema descriptor for realized_value field.
	stageDescRealizedValue := stageFields[4].Descriptor()
	// stage.DefaultRealizedValue holds the default value on creation for the realized_value field.
	stage.DefaultRealizedValue = stageDescRealizedValue.Default.(float64)
	// stageDescCreatedAt is the schema descriptor for created_at field.
	stageDescCreatedAt := stageFields[5].Descriptor()
	// stage.DefaultCreatedAt holds the default value on creation for the created_at field.
	stage.DefaultCreatedAt = stageDescCreatedAt.Default.(func() time.Time)
	// stageDescUpdatedAt is the schema descriptor for updated_at field.
	stageDescUpdatedAt := stageFields[6].Descriptor()
	// stage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stage.DefaultUpdatedAt = stageDescUpdatedAt.Default.(func() time.Time)
	// stage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stage.UpdateDefaultUpdatedAt = stageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stageDescID is the schema descriptor for id field.
	stageDescID := stageFields[0].Descriptor()
	// stage.DefaultID holds the default value on creation for the id field.
	stage.DefaultID = stageDescID.Default.(func() uuid.UUID)
	stagematerialFields := schema.StageMaterial{}.Fields()
	_ = stagematerialFields
	// stagematerialDescCreatedAt is the schema descriptor for created_at field.
	stagematerialDescCreatedAt := stagematerialFields[7].Descriptor()
	// stagematerial.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagematerial.DefaultCreatedAt = stagematerialDescCreatedAt.Default.(func() time.Time)
	// stagematerialDescUpdatedAt is the schema descriptor for updated_at field.
	stagematerialDescUpdatedAt := stagematerialFields[8].Descriptor()
	// stagematerial.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagematerial.DefaultUpdatedAt = stagematerialDescUpdatedAt.Default.(func() time.Time)
	// stagematerial.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagematerial.UpdateDefaultUpdatedAt = stagematerialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stagematerialDescID is the schema descriptor for id field.
	stagematerialDescID := stagematerialFields[0].Descriptor()
	// stagematerial.DefaultID holds the default value on creation for the id field.
	stagematerial.DefaultID = stagematerialDescID.Default.(func() uuid.UUID)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescName is the schema descriptor for name field.
	supplierDescName := supplierFields[1].Descriptor()
	// supplier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supplier.NameValidator = supplierDescName.Validators[0].(func(string) error)
	// supplierDescTaxID is the schema descriptor for tax_id field.
	supplierDescTaxID := supplierFields[2].Descriptor()
	// supplier.TaxIDValidator is a validator for the "tax_id" field. It is called by the builders before save.
	supplier.TaxIDValidator = supplierDescTaxID.Validators[0].(func(string) error)
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[5].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	// supplierDescUpdatedAt is the schema descriptor for updated_at field.
	supplierDescUpdatedAt := supplierFields[6].Descriptor()
	// supplier.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplier.DefaultUpdatedAt = supplierDescUpdatedAt.Default.(func() time.Time)
	// supplier.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplier.UpdateDefaultUpdatedAt = supplierDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supplierDescID is the schema descriptor for id field.
	supplierDescID := supplierFields[0].Descriptor()
	// supplier.DefaultID holds the default value on creation for the id field.
	supplier.DefaultID = supplierDescID.Default.(func() uuid.UUID)
}

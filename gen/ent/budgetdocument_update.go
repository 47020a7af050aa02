// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/obratech/obras-tracker/gen/ent/budgetdocument"
	"github.com/obratech/obras-tracker/gen/ent/ingestjob"
	"github.com/obratech/obras-tracker/gen/ent/predicate"
	"github.com/obratech/obras-tracker/gen/ent/stage"
	"github.com/obratech/obras-tracker/gen/ent/supplier"
)

// BudgetDocumentUpdate is the builder for updating BudgetDocument entities.
type BudgetDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetDocumentMutation
}

// Where appends a list predicates to the BudgetDocumentUpdate builder.
func (_u *BudgetDocumentUpdate) Where(ps ...predicate.BudgetDocument) *BudgetDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *BudgetDocumentUpdate) SetSupplierID(v uuid.UUID) *BudgetDocumentUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableSupplierID(v *uuid.UUID) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *BudgetDocumentUpdate) SetProjectID(v uuid.UUID) *BudgetDocumentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableProjectID(v *uuid.UUID) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *BudgetDocumentUpdate) SetStageID(v uuid.UUID) *BudgetDocumentUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableStageID(v *uuid.UUID) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *BudgetDocumentUpdate) SetOwnerID(v uuid.UUID) *BudgetDocumentUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableOwnerID(v *uuid.UUID) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *BudgetDocumentUpdate) SetFilename(v string) *BudgetDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableFilename(v *string) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *BudgetDocumentUpdate) SetContentType(v string) *BudgetDocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableContentType(v *string) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BudgetDocumentUpdate) SetContentHash(v []byte) *BudgetDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *BudgetDocumentUpdate) SetStorageKey(v string) *BudgetDocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableStorageKey(v *string) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *BudgetDocumentUpdate) ClearStorageKey() *BudgetDocumentUpdate {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *BudgetDocumentUpdate) SetUploadedAt(v time.Time) *BudgetDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *BudgetDocumentUpdate) SetNillableUploadedAt(v *time.Time) *BudgetDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *BudgetDocumentUpdate) SetSupplier(v *Supplier) *BudgetDocumentUpdate {
	return _u.SetSupplierID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *BudgetDocumentUpdate) SetStage(v *Stage) *BudgetDocumentUpdate {
	return _u.SetStageID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the IngestJob entity by IDs.
func (_u *BudgetDocumentUpdate) AddJobIDs(ids ...uuid.UUID) *BudgetDocumentUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the IngestJob entity.
func (_u *BudgetDocumentUpdate) AddJobs(v ...*IngestJob) *BudgetDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BudgetDocumentMutation object of the builder.
func (_u *BudgetDocumentUpdate) Mutation() *BudgetDocumentMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *BudgetDocumentUpdate) ClearSupplier() *BudgetDocumentUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *BudgetDocumentUpdate) ClearStage() *BudgetDocumentUpdate {
	_u.mutation.ClearStage()
	return _u
}

// ClearJobs clears all "jobs" edges to the IngestJob entity.
func (_u *BudgetDocumentUpdate) ClearJobs() *BudgetDocumentUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to IngestJob entities by IDs.
func (_u *BudgetDocumentUpdate) RemoveJobIDs(ids ...uuid.UUID) *BudgetDocumentUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to IngestJob entities.
func (_u *BudgetDocumentUpdate) RemoveJobs(v ...*IngestJob) *BudgetDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetDocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := budgetdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := budgetdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := budgetdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.content_hash": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BudgetDocument.supplier"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BudgetDocument.stage"`)
	}
	return nil
}

func (_u *BudgetDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetdocument.Table, budgetdocument.Columns, sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(budgetdocument.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(budgetdocument.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(budgetdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(budgetdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(budgetdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(budgetdocument.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(budgetdocument.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(budgetdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.SupplierTable,
			Columns: []string{budgetdocument.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.SupplierTable,
			Columns: []string{budgetdocument.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.StageTable,
			Columns: []string{budgetdocument.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.StageTable,
			Columns: []string{budgetdocument.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   budgetdocument.JobsTable,
			Columns: []string{budgetdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   budgetdocument.JobsTable,
			Columns: []string{budgetdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   budgetdocument.JobsTable,
			Columns: []string{budgetdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetDocumentUpdateOne is the builder for updating a single BudgetDocument entity.
type BudgetDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetDocumentMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *BudgetDocumentUpdateOne) SetSupplierID(v uuid.UUID) *BudgetDocumentUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableSupplierID(v *uuid.UUID) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *BudgetDocumentUpdateOne) SetProjectID(v uuid.UUID) *BudgetDocumentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableProjectID(v *uuid.UUID) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *BudgetDocumentUpdateOne) SetStageID(v uuid.UUID) *BudgetDocumentUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableStageID(v *uuid.UUID) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *BudgetDocumentUpdateOne) SetOwnerID(v uuid.UUID) *BudgetDocumentUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableOwnerID(v *uuid.UUID) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *BudgetDocumentUpdateOne) SetFilename(v string) *BudgetDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableFilename(v *string) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *BudgetDocumentUpdateOne) SetContentType(v string) *BudgetDocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableContentType(v *string) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BudgetDocumentUpdateOne) SetContentHash(v []byte) *BudgetDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *BudgetDocumentUpdateOne) SetStorageKey(v string) *BudgetDocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableStorageKey(v *string) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *BudgetDocumentUpdateOne) ClearStorageKey() *BudgetDocumentUpdateOne {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *BudgetDocumentUpdateOne) SetUploadedAt(v time.Time) *BudgetDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *BudgetDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *BudgetDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *BudgetDocumentUpdateOne) SetSupplier(v *Supplier) *BudgetDocumentUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *BudgetDocumentUpdateOne) SetStage(v *Stage) *BudgetDocumentUpdateOne {
	return _u.SetStageID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the IngestJob entity by IDs.
func (_u *BudgetDocumentUpdateOne) AddJobIDs(ids ...uuid.UUID) *BudgetDocumentUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the IngestJob entity.
func (_u *BudgetDocumentUpdateOne) AddJobs(v ...*IngestJob) *BudgetDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BudgetDocumentMutation object of the builder.
func (_u *BudgetDocumentUpdateOne) Mutation() *BudgetDocumentMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *BudgetDocumentUpdateOne) ClearSupplier() *BudgetDocumentUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *BudgetDocumentUpdateOne) ClearStage() *BudgetDocumentUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// ClearJobs clears all "jobs" edges to the IngestJob entity.
func (_u *BudgetDocumentUpdateOne) ClearJobs() *BudgetDocumentUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to IngestJob entities by IDs.
func (_u *BudgetDocumentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BudgetDocumentUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to IngestJob entities.
func (_u *BudgetDocumentUpdateOne) RemoveJobs(v ...*IngestJob) *BudgetDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BudgetDocumentUpdate builder.
func (_u *BudgetDocumentUpdateOne) Where(ps ...predicate.BudgetDocument) *BudgetDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetDocumentUpdateOne) Select(field string, fields ...string) *BudgetDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BudgetDocument entity.
func (_u *BudgetDocumentUpdateOne) Save(ctx context.Context) (*BudgetDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetDocumentUpdateOne) SaveX(ctx context.Context) *BudgetDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := budgetdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := budgetdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := budgetdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.content_hash": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BudgetDocument.supplier"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BudgetDocument.stage"`)
	}
	return nil
}

func (_u *BudgetDocumentUpdateOne) sqlSave(ctx context.Context) (_node *BudgetDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budgetdocument.Table, budgetdocument.Columns, sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BudgetDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budgetdocument.FieldID)
		for _, f := range fields {
			if !budgetdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budgetdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(budgetdocument.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(budgetdocument.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(budgetdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(budgetdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(budgetdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(budgetdocument.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(budgetdocument.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(budgetdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.SupplierTable,
			Columns: []string{budgetdocument.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.SupplierTable,
			Columns: []string{budgetdocument.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.StageTable,
			Columns: []string{budgetdocument.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetdocument.StageTable,
			Columns: []string{budgetdocument.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   budgetdocument.JobsTable,
			Columns: []string{budgetdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   budgetdocument.JobsTable,
			Columns: []string{budgetdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   budgetdocument.JobsTable,
			Columns: []string{budgetdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BudgetDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budgetdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

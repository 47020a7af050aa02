// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/obratech/obras-tracker/gen/ent/budgetdocument"
	"github.com/obratech/obras-tracker/gen/ent/ingestjob"
	"github.com/obratech/obras-tracker/gen/ent/stage"
	"github.com/obratech/obras-tracker/gen/ent/supplier"
)

// BudgetDocumentCreate is the builder for creating a BudgetDocument entity.
type BudgetDocumentCreate struct {
	config
	mutation *BudgetDocumentMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *BudgetDocumentCreate) SetSupplierID(v uuid.UUID) *BudgetDocumentCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *BudgetDocumentCreate) SetProjectID(v uuid.UUID) *BudgetDocumentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *BudgetDocumentCreate) SetStageID(v uuid.UUID) *BudgetDocumentCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *BudgetDocumentCreate) SetOwnerID(v uuid.UUID) *BudgetDocumentCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *BudgetDocumentCreate) SetFilename(v string) *BudgetDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *BudgetDocumentCreate) SetContentType(v string) *BudgetDocumentCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *BudgetDocumentCreate) SetContentHash(v []byte) *BudgetDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *BudgetDocumentCreate) SetStorageKey(v string) *BudgetDocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_c *BudgetDocumentCreate) SetNillableStorageKey(v *string) *BudgetDocumentCreate {
	if v != nil {
		_c.SetStorageKey(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *BudgetDocumentCreate) SetUploadedAt(v time.Time) *BudgetDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *BudgetDocumentCreate) SetNillableUploadedAt(v *time.Time) *BudgetDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetDocumentCreate) SetID(v uuid.UUID) *BudgetDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BudgetDocumentCreate) SetNillableID(v *uuid.UUID) *BudgetDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *BudgetDocumentCreate) SetSupplier(v *Supplier) *BudgetDocumentCreate {
	return _c.SetSupplierID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_c *BudgetDocumentCreate) SetStage(v *Stage) *BudgetDocumentCreate {
	return _c.SetStageID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the IngestJob entity by IDs.
func (_c *BudgetDocumentCreate) AddJobIDs(ids ...uuid.UUID) *BudgetDocumentCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the IngestJob entity.
func (_c *BudgetDocumentCreate) AddJobs(v ...*IngestJob) *BudgetDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BudgetDocumentMutation object of the builder.
func (_c *BudgetDocumentCreate) Mutation() *BudgetDocumentMutation {
	return _c.mutation
}

// Save creates the BudgetDocument in the database.
func (_c *BudgetDocumentCreate) Save(ctx context.Context) (*BudgetDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetDocumentCreate) SaveX(ctx context.Context) *BudgetDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetDocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := budgetdocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := budgetdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetDocumentCreate) check() error {
	if _, ok := _c.mutation.SupplierID(); !ok {
		return &ValidationError{Name: "supplier_id", err: errors.New(`ent: missing required field "BudgetDocument.supplier_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "BudgetDocument.project_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "BudgetDocument.stage_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BudgetDocument.owner_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "BudgetDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := budgetdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "BudgetDocument.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := budgetdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "BudgetDocument.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := budgetdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BudgetDocument.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "BudgetDocument.uploaded_at"`)}
	}
	if len(_c.mutation.SupplierIDs()) == 0 {
		return &ValidationError{Name: "supplier", err: errors.New(`ent: missing required edge "BudgetDocument.supplier"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "BudgetDocument.stage"`)}
	}
	return nil
}

func (_c *BudgetDocumentCreate) sqlSave(ctx context.Context) (*BudgetDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetDocumentCreate) createSpec() (*BudgetDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetdocument.Table, sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(budgetdocument.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(budgetdocument.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(budgetdocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(budgetdocument.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(budgetdocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(budgetdocument.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(budgetdocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_node.SupplierID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
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
		_node.StageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BudgetDocumentCreateBulk is the builder for creating many BudgetDocument entities in bulk.
type BudgetDocumentCreateBulk struct {
	config
	err      error
	builders []*BudgetDocumentCreate
}

// Save creates the BudgetDocument entities in the database.
func (_c *BudgetDocumentCreateBulk) Save(ctx context.Context) ([]*BudgetDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BudgetDocumentCreateBulk) SaveX(ctx context.Context) []*BudgetDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
)

// IngestJobCreate is the builder for creating a IngestJob entity.
type IngestJobCreate struct {
	config
	mutation *IngestJobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *IngestJobCreate) SetDocumentID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *IngestJobCreate) SetFormat(v string) *IngestJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IngestJobCreate) SetStartedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStartedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestJobCreate) SetFinishedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFinishedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestJobCreate) SetStatus(v string) *IngestJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStatus(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *IngestJobCreate) SetErrorMessage(v string) *IngestJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableErrorMessage(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *IngestJobCreate) SetOcrText(v string) *IngestJobCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableOcrText(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetItemsFound sets the "items_found" field.
func (_c *IngestJobCreate) SetItemsFound(v int) *IngestJobCreate {
	_c.mutation.SetItemsFound(v)
	return _c
}

// SetNillableItemsFound sets the "items_found" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableItemsFound(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetItemsFound(*v)
	}
	return _c
}

// SetCreatedCount sets the "created_count" field.
func (_c *IngestJobCreate) SetCreatedCount(v int) *IngestJobCreate {
	_c.mutation.SetCreatedCount(v)
	return _c
}

// SetNillableCreatedCount sets the "created_count" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableCreatedCount(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetCreatedCount(*v)
	}
	return _c
}

// SetUpdatedCount sets the "updated_count" field.
func (_c *IngestJobCreate) SetUpdatedCount(v int) *IngestJobCreate {
	_c.mutation.SetUpdatedCount(v)
	return _c
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableUpdatedCount(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetUpdatedCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *IngestJobCreate) SetFailedCount(v int) *IngestJobCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFailedCount(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestJobCreate) SetID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableID(v *uuid.UUID) *IngestJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the BudgetDocument entity.
func (_c *IngestJobCreate) SetDocument(v *BudgetDocument) *IngestJobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_c *IngestJobCreate) Mutation() *IngestJobMutation {
	return _c.mutation
}

// Save creates the IngestJob in the database.
func (_c *IngestJobCreate) Save(ctx context.Context) (*IngestJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestJobCreate) SaveX(ctx context.Context) *IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := ingestjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ItemsFound(); !ok {
		v := ingestjob.DefaultItemsFound
		_c.mutation.SetItemsFound(v)
	}
	if _, ok := _c.mutation.CreatedCount(); !ok {
		v := ingestjob.DefaultCreatedCount
		_c.mutation.SetCreatedCount(v)
	}
	if _, ok := _c.mutation.UpdatedCount(); !ok {
		v := ingestjob.DefaultUpdatedCount
		_c.mutation.SetUpdatedCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := ingestjob.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestJobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "IngestJob.document_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "IngestJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := ingestjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "IngestJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IngestJob.started_at"`)}
	}
	if _, ok := _c.mutation.ItemsFound(); !ok {
		return &ValidationError{Name: "items_found", err: errors.New(`ent: missing required field "IngestJob.items_found"`)}
	}
	if _, ok := _c.mutation.CreatedCount(); !ok {
		return &ValidationError{Name: "created_count", err: errors.New(`ent: missing required field "IngestJob.created_count"`)}
	}
	if _, ok := _c.mutation.UpdatedCount(); !ok {
		return &ValidationError{Name: "updated_count", err: errors.New(`ent: missing required field "IngestJob.updated_count"`)}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "IngestJob.failed_count"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "IngestJob.document"`)}
	}
	return nil
}

func (_c *IngestJobCreate) sqlSave(ctx context.Context) (*IngestJob, error) {
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

func (_c *IngestJobCreate) createSpec() (*IngestJob, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestjob.Table, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(ingestjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(ingestjob.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.ItemsFound(); ok {
		_spec.SetField(ingestjob.FieldItemsFound, field.TypeInt, value)
		_node.ItemsFound = value
	}
	if value, ok := _c.mutation.CreatedCount(); ok {
		_spec.SetField(ingestjob.FieldCreatedCount, field.TypeInt, value)
		_node.CreatedCount = value
	}
	if value, ok := _c.mutation.UpdatedCount(); ok {
		_spec.SetField(ingestjob.FieldUpdatedCount, field.TypeInt, value)
		_node.UpdatedCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(ingestjob.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingestjob.DocumentTable,
			Columns: []string{ingestjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IngestJobCreateBulk is the builder for creating many IngestJob entities in bulk.
type IngestJobCreateBulk struct {
	config
	err      error
	builders []*IngestJobCreate
}

// Save creates the IngestJob entities in the database.
func (_c *IngestJobCreateBulk) Save(ctx context.Context) ([]*IngestJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestJobMutation)
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
func (_c *IngestJobCreateBulk) SaveX(ctx context.Context) []*IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/obratech/obras-tracker/gen/ent/material"
	"github.com/obratech/obras-tracker/gen/ent/stage"
	"github.com/obratech/obras-tracker/gen/ent/stagematerial"
)

// StageMaterialCreate is the builder for creating a StageMaterial entity.
type StageMaterialCreate struct {
	config
	mutation *StageMaterialMutation
	hooks    []Hook
}

// SetStageID sets the "stage_id" field.
func (_c *StageMaterialCreate) SetStageID(v uuid.UUID) *StageMaterialCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *StageMaterialCreate) SetProjectID(v uuid.UUID) *StageMaterialCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetMaterialID sets the "material_id" field.
func (_c *StageMaterialCreate) SetMaterialID(v uuid.UUID) *StageMaterialCreate {
	_c.mutation.SetMaterialID(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *StageMaterialCreate) SetQuantity(v float64) *StageMaterialCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetTotalValue sets the "total_value" field.
func (_c *StageMaterialCreate) SetTotalValue(v float64) *StageMaterialCreate {
	_c.mutation.SetTotalValue(v)
	return _c
}

// SetPurchaseDate sets the "purchase_date" field.
func (_c *StageMaterialCreate) SetPurchaseDate(v time.Time) *StageMaterialCreate {
	_c.mutation.SetPurchaseDate(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageMaterialCreate) SetCreatedAt(v time.Time) *StageMaterialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageMaterialCreate) SetNillableCreatedAt(v *time.Time) *StageMaterialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StageMaterialCreate) SetUpdatedAt(v time.Time) *StageMaterialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StageMaterialCreate) SetNillableUpdatedAt(v *time.Time) *StageMaterialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageMaterialCreate) SetID(v uuid.UUID) *StageMaterialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StageMaterialCreate) SetNillableID(v *uuid.UUID) *StageMaterialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStage sets the "stage" edge to the Stage entity.
func (_c *StageMaterialCreate) SetStage(v *Stage) *StageMaterialCreate {
	return _c.SetStageID(v.ID)
}

// SetMaterial sets the "material" edge to the Material entity.
func (_c *StageMaterialCreate) SetMaterial(v *Material) *StageMaterialCreate {
	return _c.SetMaterialID(v.ID)
}

// Mutation returns the StageMaterialMutation object of the builder.
func (_c *StageMaterialCreate) Mutation() *StageMaterialMutation {
	return _c.mutation
}

// Save creates the StageMaterial in the database.
func (_c *StageMaterialCreate) Save(ctx context.Context) (*StageMaterial, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageMaterialCreate) SaveX(ctx context.Context) *StageMaterial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageMaterialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageMaterialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageMaterialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagematerial.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagematerial.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stagematerial.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageMaterialCreate) check() error {
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "StageMaterial.stage_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "StageMaterial.project_id"`)}
	}
	if _, ok := _c.mutation.MaterialID(); !ok {
		return &ValidationError{Name: "material_id", err: errors.New(`ent: missing required field "StageMaterial.material_id"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "StageMaterial.quantity"`)}
	}
	if _, ok := _c.mutation.TotalValue(); !ok {
		return &ValidationError{Name: "total_value", err: errors.New(`ent: missing required field "StageMaterial.total_value"`)}
	}
	if _, ok := _c.mutation.PurchaseDate(); !ok {
		return &ValidationError{Name: "purchase_date", err: errors.New(`ent: missing required field "StageMaterial.purchase_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageMaterial.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StageMaterial.updated_at"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "StageMaterial.stage"`)}
	}
	if len(_c.mutation.MaterialIDs()) == 0 {
		return &ValidationError{Name: "material", err: errors.New(`ent: missing required edge "StageMaterial.material"`)}
	}
	return nil
}

func (_c *StageMaterialCreate) sqlSave(ctx context.Context) (*StageMaterial, error) {
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

func (_c *StageMaterialCreate) createSpec() (*StageMaterial, *sqlgraph.CreateSpec) {
	var (
		_node = &StageMaterial{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagematerial.Table, sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(stagematerial.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(stagematerial.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.TotalValue(); ok {
		_spec.SetField(stagematerial.FieldTotalValue, field.TypeFloat64, value)
		_node.TotalValue = value
	}
	if value, ok := _c.mutation.PurchaseDate(); ok {
		_spec.SetField(stagematerial.FieldPurchaseDate, field.TypeTime, value)
		_node.PurchaseDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagematerial.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagematerial.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagematerial.StageTable,
			Columns: []string{stagematerial.StageColumn},
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
	if nodes := _c.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagematerial.MaterialTable,
			Columns: []string{stagematerial.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MaterialID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageMaterialCreateBulk is the builder for creating many StageMaterial entities in bulk.
type StageMaterialCreateBulk struct {
	config
	err      error
	builders []*StageMaterialCreate
}

// Save creates the StageMaterial entities in the database.
func (_c *StageMaterialCreateBulk) Save(ctx context.Context) ([]*StageMaterial, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageMaterial, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageMaterialMutation)
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
func (_c *StageMaterialCreateBulk) SaveX(ctx context.Context) []*StageMaterial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageMaterialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageMaterialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

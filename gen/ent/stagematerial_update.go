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
	"github.com/obratech/obras-tracker/gen/ent/material"
	"github.com/obratech/obras-tracker/gen/ent/predicate"
	"github.com/obratech/obras-tracker/gen/ent/stage"
	"github.com/obratech/obras-tracker/gen/ent/stagematerial"
)

// StageMaterialUpdate is the builder for updating StageMaterial entities.
type StageMaterialUpdate struct {
	config
	hooks    []Hook
	mutation *StageMaterialMutation
}

// Where appends a list predicates to the StageMaterialUpdate builder.
func (_u *StageMaterialUpdate) Where(ps ...predicate.StageMaterial) *StageMaterialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *StageMaterialUpdate) SetStageID(v uuid.UUID) *StageMaterialUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillableStageID(v *uuid.UUID) *StageMaterialUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *StageMaterialUpdate) SetProjectID(v uuid.UUID) *StageMaterialUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillableProjectID(v *uuid.UUID) *StageMaterialUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetMaterialID sets the "material_id" field.
func (_u *StageMaterialUpdate) SetMaterialID(v uuid.UUID) *StageMaterialUpdate {
	_u.mutation.SetMaterialID(v)
	return _u
}

// SetNillableMaterialID sets the "material_id" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillableMaterialID(v *uuid.UUID) *StageMaterialUpdate {
	if v != nil {
		_u.SetMaterialID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *StageMaterialUpdate) SetQuantity(v float64) *StageMaterialUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillableQuantity(v *float64) *StageMaterialUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *StageMaterialUpdate) AddQuantity(v float64) *StageMaterialUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *StageMaterialUpdate) SetTotalValue(v float64) *StageMaterialUpdate {
	_u.mutation.ResetTotalValue()
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillableTotalValue(v *float64) *StageMaterialUpdate {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// AddTotalValue adds value to the "total_value" field.
func (_u *StageMaterialUpdate) AddTotalValue(v float64) *StageMaterialUpdate {
	_u.mutation.AddTotalValue(v)
	return _u
}

// SetPurchaseDate sets the "purchase_date" field.
func (_u *StageMaterialUpdate) SetPurchaseDate(v time.Time) *StageMaterialUpdate {
	_u.mutation.SetPurchaseDate(v)
	return _u
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillablePurchaseDate(v *time.Time) *StageMaterialUpdate {
	if v != nil {
		_u.SetPurchaseDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageMaterialUpdate) SetCreatedAt(v time.Time) *StageMaterialUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageMaterialUpdate) SetNillableCreatedAt(v *time.Time) *StageMaterialUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageMaterialUpdate) SetUpdatedAt(v time.Time) *StageMaterialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *StageMaterialUpdate) SetStage(v *Stage) *StageMaterialUpdate {
	return _u.SetStageID(v.ID)
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *StageMaterialUpdate) SetMaterial(v *Material) *StageMaterialUpdate {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the StageMaterialMutation object of the builder.
func (_u *StageMaterialUpdate) Mutation() *StageMaterialMutation {
	return _u.mutation
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *StageMaterialUpdate) ClearStage() *StageMaterialUpdate {
	_u.mutation.ClearStage()
	return _u
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *StageMaterialUpdate) ClearMaterial() *StageMaterialUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageMaterialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageMaterialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageMaterialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageMaterialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StageMaterialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagematerial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageMaterialUpdate) check() error {
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageMaterial.stage"`)
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageMaterial.material"`)
	}
	return nil
}

func (_u *StageMaterialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagematerial.Table, stagematerial.Columns, sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(stagematerial.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(stagematerial.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(stagematerial.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(stagematerial.FieldTotalValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalValue(); ok {
		_spec.AddField(stagematerial.FieldTotalValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PurchaseDate(); ok {
		_spec.SetField(stagematerial.FieldPurchaseDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagematerial.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagematerial.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaterialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagematerial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageMaterialUpdateOne is the builder for updating a single StageMaterial entity.
type StageMaterialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMaterialMutation
}

// SetStageID sets the "stage_id" field.
func (_u *StageMaterialUpdateOne) SetStageID(v uuid.UUID) *StageMaterialUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillableStageID(v *uuid.UUID) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *StageMaterialUpdateOne) SetProjectID(v uuid.UUID) *StageMaterialUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillableProjectID(v *uuid.UUID) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetMaterialID sets the "material_id" field.
func (_u *StageMaterialUpdateOne) SetMaterialID(v uuid.UUID) *StageMaterialUpdateOne {
	_u.mutation.SetMaterialID(v)
	return _u
}

// SetNillableMaterialID sets the "material_id" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillableMaterialID(v *uuid.UUID) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetMaterialID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *StageMaterialUpdateOne) SetQuantity(v float64) *StageMaterialUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillableQuantity(v *float64) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *StageMaterialUpdateOne) AddQuantity(v float64) *StageMaterialUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *StageMaterialUpdateOne) SetTotalValue(v float64) *StageMaterialUpdateOne {
	_u.mutation.ResetTotalValue()
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillableTotalValue(v *float64) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// AddTotalValue adds value to the "total_value" field.
func (_u *StageMaterialUpdateOne) AddTotalValue(v float64) *StageMaterialUpdateOne {
	_u.mutation.AddTotalValue(v)
	return _u
}

// SetPurchaseDate sets the "purchase_date" field.
func (_u *StageMaterialUpdateOne) SetPurchaseDate(v time.Time) *StageMaterialUpdateOne {
	_u.mutation.SetPurchaseDate(v)
	return _u
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillablePurchaseDate(v *time.Time) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetPurchaseDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageMaterialUpdateOne) SetCreatedAt(v time.Time) *StageMaterialUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageMaterialUpdateOne) SetNillableCreatedAt(v *time.Time) *StageMaterialUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageMaterialUpdateOne) SetUpdatedAt(v time.Time) *StageMaterialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *StageMaterialUpdateOne) SetStage(v *Stage) *StageMaterialUpdateOne {
	return _u.SetStageID(v.ID)
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *StageMaterialUpdateOne) SetMaterial(v *Material) *StageMaterialUpdateOne {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the StageMaterialMutation object of the builder.
func (_u *StageMaterialUpdateOne) Mutation() *StageMaterialMutation {
	return _u.mutation
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *StageMaterialUpdateOne) ClearStage() *StageMaterialUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *StageMaterialUpdateOne) ClearMaterial() *StageMaterialUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// Where appends a list predicates to the StageMaterialUpdate builder.
func (_u *StageMaterialUpdateOne) Where(ps ...predicate.StageMaterial) *StageMaterialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageMaterialUpdateOne) Select(field string, fields ...string) *StageMaterialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageMaterial entity.
func (_u *StageMaterialUpdateOne) Save(ctx context.Context) (*StageMaterial, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageMaterialUpdateOne) SaveX(ctx context.Context) *StageMaterial {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageMaterialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageMaterialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StageMaterialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagematerial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageMaterialUpdateOne) check() error {
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageMaterial.stage"`)
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageMaterial.material"`)
	}
	return nil
}

func (_u *StageMaterialUpdateOne) sqlSave(ctx context.Context) (_node *StageMaterial, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagematerial.Table, stagematerial.Columns, sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageMaterial.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagematerial.FieldID)
		for _, f := range fields {
			if !stagematerial.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagematerial.FieldID {
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
		_spec.SetField(stagematerial.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(stagematerial.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(stagematerial.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(stagematerial.FieldTotalValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalValue(); ok {
		_spec.AddField(stagematerial.FieldTotalValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PurchaseDate(); ok {
		_spec.SetField(stagematerial.FieldPurchaseDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagematerial.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagematerial.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaterialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StageMaterial{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagematerial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/obratech/obras-tracker/gen/ent/stagematerial"
	"github.com/obratech/obras-tracker/gen/ent/supplier"
)

// MaterialUpdate is the builder for updating Material entities.
type MaterialUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialMutation
}

// Where appends a list predicates to the MaterialUpdate builder.
func (_u *MaterialUpdate) Where(ps ...predicate.Material) *MaterialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MaterialUpdate) SetName(v string) *MaterialUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableName(v *string) *MaterialUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *MaterialUpdate) SetSupplierID(v uuid.UUID) *MaterialUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableSupplierID(v *uuid.UUID) *MaterialUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialUpdate) SetUnit(v string) *MaterialUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableUnit(v *string) *MaterialUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *MaterialUpdate) SetUnitPrice(v float64) *MaterialUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableUnitPrice(v *float64) *MaterialUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *MaterialUpdate) AddUnitPrice(v float64) *MaterialUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *MaterialUpdate) SetStockQuantity(v float64) *MaterialUpdate {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableStockQuantity(v *float64) *MaterialUpdate {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *MaterialUpdate) AddStockQuantity(v float64) *MaterialUpdate {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *MaterialUpdate) SetOwnerID(v uuid.UUID) *MaterialUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableOwnerID(v *uuid.UUID) *MaterialUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MaterialUpdate) SetCreatedAt(v time.Time) *MaterialUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableCreatedAt(v *time.Time) *MaterialUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialUpdate) SetUpdatedAt(v time.Time) *MaterialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *MaterialUpdate) SetSupplier(v *Supplier) *MaterialUpdate {
	return _u.SetSupplierID(v.ID)
}

// AddStageMaterialIDs adds the "stage_materials" edge to the StageMaterial entity by IDs.
func (_u *MaterialUpdate) AddStageMaterialIDs(ids ...uuid.UUID) *MaterialUpdate {
	_u.mutation.AddStageMaterialIDs(ids...)
	return _u
}

// AddStageMaterials adds the "stage_materials" edges to the StageMaterial entity.
func (_u *MaterialUpdate) AddStageMaterials(v ...*StageMaterial) *MaterialUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageMaterialIDs(ids...)
}

// Mutation returns the MaterialMutation object of the builder.
func (_u *MaterialUpdate) Mutation() *MaterialMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *MaterialUpdate) ClearSupplier() *MaterialUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearStageMaterials clears all "stage_materials" edges to the StageMaterial entity.
func (_u *MaterialUpdate) ClearStageMaterials() *MaterialUpdate {
	_u.mutation.ClearStageMaterials()
	return _u
}

// RemoveStageMaterialIDs removes the "stage_materials" edge to StageMaterial entities by IDs.
func (_u *MaterialUpdate) RemoveStageMaterialIDs(ids ...uuid.UUID) *MaterialUpdate {
	_u.mutation.RemoveStageMaterialIDs(ids...)
	return _u
}

// RemoveStageMaterials removes "stage_materials" edges to StageMaterial entities.
func (_u *MaterialUpdate) RemoveStageMaterials(v ...*StageMaterial) *MaterialUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageMaterialIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := material.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := material.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Material.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := material.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Material.unit": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Material.supplier"`)
	}
	return nil
}

func (_u *MaterialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(material.Table, material.Columns, sqlgraph.NewFieldSpec(material.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(material.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(material.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(material.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(material.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(material.FieldStockQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(material.FieldStockQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(material.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(material.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(material.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   material.SupplierTable,
			Columns: []string{material.SupplierColumn},
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
			Table:   material.SupplierTable,
			Columns: []string{material.SupplierColumn},
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
	if _u.mutation.StageMaterialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.StageMaterialsTable,
			Columns: []string{material.StageMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageMaterialsIDs(); len(nodes) > 0 && !_u.mutation.StageMaterialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.StageMaterialsTable,
			Columns: []string{material.StageMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageMaterialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.StageMaterialsTable,
			Columns: []string{material.StageMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{material.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialUpdateOne is the builder for updating a single Material entity.
type MaterialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialMutation
}

// SetName sets the "name" field.
func (_u *MaterialUpdateOne) SetName(v string) *MaterialUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableName(v *string) *MaterialUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *MaterialUpdateOne) SetSupplierID(v uuid.UUID) *MaterialUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableSupplierID(v *uuid.UUID) *MaterialUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialUpdateOne) SetUnit(v string) *MaterialUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableUnit(v *string) *MaterialUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *MaterialUpdateOne) SetUnitPrice(v float64) *MaterialUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableUnitPrice(v *float64) *MaterialUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *MaterialUpdateOne) AddUnitPrice(v float64) *MaterialUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *MaterialUpdateOne) SetStockQuantity(v float64) *MaterialUpdateOne {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableStockQuantity(v *float64) *MaterialUpdateOne {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *MaterialUpdateOne) AddStockQuantity(v float64) *MaterialUpdateOne {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *MaterialUpdateOne) SetOwnerID(v uuid.UUID) *MaterialUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableOwnerID(v *uuid.UUID) *MaterialUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MaterialUpdateOne) SetCreatedAt(v time.Time) *MaterialUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableCreatedAt(v *time.Time) *MaterialUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialUpdateOne) SetUpdatedAt(v time.Time) *MaterialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *MaterialUpdateOne) SetSupplier(v *Supplier) *MaterialUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// AddStageMaterialIDs adds the "stage_materials" edge to the StageMaterial entity by IDs.
func (_u *MaterialUpdateOne) AddStageMaterialIDs(ids ...uuid.UUID) *MaterialUpdateOne {
	_u.mutation.AddStageMaterialIDs(ids...)
	return _u
}

// AddStageMaterials adds the "stage_materials" edges to the StageMaterial entity.
func (_u *MaterialUpdateOne) AddStageMaterials(v ...*StageMaterial) *MaterialUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageMaterialIDs(ids...)
}

// Mutation returns the MaterialMutation object of the builder.
func (_u *MaterialUpdateOne) Mutation() *MaterialMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *MaterialUpdateOne) ClearSupplier() *MaterialUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearStageMaterials clears all "stage_materials" edges to the StageMaterial entity.
func (_u *MaterialUpdateOne) ClearStageMaterials() *MaterialUpdateOne {
	_u.mutation.ClearStageMaterials()
	return _u
}

// RemoveStageMaterialIDs removes the "stage_materials" edge to StageMaterial entities by IDs.
func (_u *MaterialUpdateOne) RemoveStageMaterialIDs(ids ...uuid.UUID) *MaterialUpdateOne {
	_u.mutation.RemoveStageMaterialIDs(ids...)
	return _u
}

// RemoveStageMaterials removes "stage_materials" edges to StageMaterial entities.
func (_u *MaterialUpdateOne) RemoveStageMaterials(v ...*StageMaterial) *MaterialUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageMaterialIDs(ids...)
}

// Where appends a list predicates to the MaterialUpdate builder.
func (_u *MaterialUpdateOne) Where(ps ...predicate.Material) *MaterialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialUpdateOne) Select(field string, fields ...string) *MaterialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Material entity.
func (_u *MaterialUpdateOne) Save(ctx context.Context) (*Material, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialUpdateOne) SaveX(ctx context.Context) *Material {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := material.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := material.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Material.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := material.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Material.unit": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Material.supplier"`)
	}
	return nil
}

func (_u *MaterialUpdateOne) sqlSave(ctx context.Context) (_node *Material, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(material.Table, material.Columns, sqlgraph.NewFieldSpec(material.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Material.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, material.FieldID)
		for _, f := range fields {
			if !material.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != material.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(material.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(material.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(material.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(material.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(material.FieldStockQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(material.FieldStockQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(material.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(material.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(material.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   material.SupplierTable,
			Columns: []string{material.SupplierColumn},
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
			Table:   material.SupplierTable,
			Columns: []string{material.SupplierColumn},
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
	if _u.mutation.StageMaterialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.StageMaterialsTable,
			Columns: []string{material.StageMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageMaterialsIDs(); len(nodes) > 0 && !_u.mutation.StageMaterialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.StageMaterialsTable,
			Columns: []string{material.StageMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageMaterialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.StageMaterialsTable,
			Columns: []string{material.StageMaterialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagematerial.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Material{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{material.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/obratech/obras-tracker/gen/ent/predicate"
	"github.com/obratech/obras-tracker/gen/ent/project"
	"github.com/obratech/obras-tracker/gen/ent/stage"
	"github.com/obratech/obras-tracker/gen/ent/stagematerial"
)

// StageUpdate is the builder for updating Stage entities.
type StageUpdate struct {
	config
	hooks    []Hook
	mutation *StageMutation
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdate) Where(ps ...predicate.Stage) *StageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *StageUpdate) SetProjectID(v uuid.UUID) *StageUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageUpdate) SetNillableProjectID(v *uuid.UUID) *StageUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StageUpdate) SetName(v string) *StageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StageUpdate) SetNillableName(v *string) *StageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBudgetedValue sets the "budgeted_value" field.
func (_u *StageUpdate) SetBudgetedValue(v float64) *StageUpdate {
	_u.mutation.ResetBudgetedValue()
	_u.mutation.SetBudgetedValue(v)
	return _u
}

// SetNillableBudgetedValue sets the "budgeted_value" field if the given value is not nil.
func (_u *StageUpdate) SetNillableBudgetedValue(v *float64) *StageUpdate {
	if v != nil {
		_u.SetBudgetedValue(*v)
	}
	return _u
}

// AddBudgetedValue adds value to the "budgeted_value" field.
func (_u *StageUpdate) AddBudgetedValue(v float64) *StageUpdate {
	_u.mutation.AddBudgetedValue(v)
	return _u
}

// SetRealizedValue sets the "realized_value" field.
func (_u *StageUpdate) SetRealizedValue(v float64) *StageUpdate {
	_u.mutation.ResetRealizedValue()
	_u.mutation.SetRealizedValue(v)
	return _u
}

// SetNillableRealizedValue sets the "realized_value" field if the given value is not nil.
func (_u *StageUpdate) SetNillableRealizedValue(v *float64) *StageUpdate {
	if v != nil {
		_u.SetRealizedValue(*v)
	}
	return _u
}

// AddRealizedValue adds value to the "realized_value" field.
func (_u *StageUpdate) AddRealizedValue(v float64) *StageUpdate {
	_u.mutation.AddRealizedValue(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageUpdate) SetCreatedAt(v time.Time) *StageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableCreatedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageUpdate) SetUpdatedAt(v time.Time) *StageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *StageUpdate) SetProject(v *Project) *StageUpdate {
	return _u.SetProjectID(v.ID)
}

// AddStageMaterialIDs adds the "stage_materials" edge to the StageMaterial entity by IDs.
func (_u *StageUpdate) AddStageMaterialIDs(ids ...uuid.UUID) *StageUpdate {
	_u.mutation.AddStageMaterialIDs(ids...)
	return _u
}

// AddStageMaterials adds the "stage_materials" edges to the StageMaterial entity.
func (_u *StageUpdate) AddStageMaterials(v ...*StageMaterial) *StageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageMaterialIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the BudgetDocument entity by IDs.
func (_u *StageUpdate) AddDocumentIDs(ids ...uuid.UUID) *StageUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the BudgetDocument entity.
func (_u *StageUpdate) AddDocuments(v ...*BudgetDocument) *StageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdate) Mutation() *StageMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *StageUpdate) ClearProject() *StageUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearStageMaterials clears all "stage_materials" edges to the StageMaterial entity.
func (_u *StageUpdate) ClearStageMaterials() *StageUpdate {
	_u.mutation.ClearStageMaterials()
	return _u
}

// RemoveStageMaterialIDs removes the "stage_materials" edge to StageMaterial entities by IDs.
func (_u *StageUpdate) RemoveStageMaterialIDs(ids ...uuid.UUID) *StageUpdate {
	_u.mutation.RemoveStageMaterialIDs(ids...)
	return _u
}

// RemoveStageMaterials removes "stage_materials" edges to StageMaterial entities.
func (_u *StageUpdate) RemoveStageMaterials(v ...*StageMaterial) *StageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageMaterialIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the BudgetDocument entity.
func (_u *StageUpdate) ClearDocuments() *StageUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to BudgetDocument entities by IDs.
func (_u *StageUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *StageUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to BudgetDocument entities.
func (_u *StageUpdate) RemoveDocuments(v ...*BudgetDocument) *StageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := stage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Stage.name": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.project"`)
	}
	return nil
}

func (_u *StageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(stage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetedValue(); ok {
		_spec.SetField(stage.FieldBudgetedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetedValue(); ok {
		_spec.AddField(stage.FieldBudgetedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RealizedValue(); ok {
		_spec.SetField(stage.FieldRealizedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRealizedValue(); ok {
		_spec.AddField(stage.FieldRealizedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stage.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ProjectTable,
			Columns: []string{stage.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ProjectTable,
			Columns: []string{stage.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
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
			Table:   stage.StageMaterialsTable,
			Columns: []string{stage.StageMaterialsColumn},
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
			Table:   stage.StageMaterialsTable,
			Columns: []string{stage.StageMaterialsColumn},
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
			Table:   stage.StageMaterialsTable,
			Columns: []string{stage.StageMaterialsColumn},
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
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.DocumentsTable,
			Columns: []string{stage.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.DocumentsTable,
			Columns: []string{stage.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.DocumentsTable,
			Columns: []string{stage.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageUpdateOne is the builder for updating a single Stage entity.
type StageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMutation
}

// SetProjectID sets the "project_id" field.
func (_u *StageUpdateOne) SetProjectID(v uuid.UUID) *StageUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableProjectID(v *uuid.UUID) *StageUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StageUpdateOne) SetName(v string) *StageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableName(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBudgetedValue sets the "budgeted_value" field.
func (_u *StageUpdateOne) SetBudgetedValue(v float64) *StageUpdateOne {
	_u.mutation.ResetBudgetedValue()
	_u.mutation.SetBudgetedValue(v)
	return _u
}

// SetNillableBudgetedValue sets the "budgeted_value" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableBudgetedValue(v *float64) *StageUpdateOne {
	if v != nil {
		_u.SetBudgetedValue(*v)
	}
	return _u
}

// AddBudgetedValue adds value to the "budgeted_value" field.
func (_u *StageUpdateOne) AddBudgetedValue(v float64) *StageUpdateOne {
	_u.mutation.AddBudgetedValue(v)
	return _u
}

// SetRealizedValue sets the "realized_value" field.
func (_u *StageUpdateOne) SetRealizedValue(v float64) *StageUpdateOne {
	_u.mutation.ResetRealizedValue()
	_u.mutation.SetRealizedValue(v)
	return _u
}

// SetNillableRealizedValue sets the "realized_value" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableRealizedValue(v *float64) *StageUpdateOne {
	if v != nil {
		_u.SetRealizedValue(*v)
	}
	return _u
}

// AddRealizedValue adds value to the "realized_value" field.
func (_u *StageUpdateOne) AddRealizedValue(v float64) *StageUpdateOne {
	_u.mutation.AddRealizedValue(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageUpdateOne) SetCreatedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableCreatedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageUpdateOne) SetUpdatedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *StageUpdateOne) SetProject(v *Project) *StageUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddStageMaterialIDs adds the "stage_materials" edge to the StageMaterial entity by IDs.
func (_u *StageUpdateOne) AddStageMaterialIDs(ids ...uuid.UUID) *StageUpdateOne {
	_u.mutation.AddStageMaterialIDs(ids...)
	return _u
}

// AddStageMaterials adds the "stage_materials" edges to the StageMaterial entity.
func (_u *StageUpdateOne) AddStageMaterials(v ...*StageMaterial) *StageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageMaterialIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the BudgetDocument entity by IDs.
func (_u *StageUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *StageUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the BudgetDocument entity.
func (_u *StageUpdateOne) AddDocuments(v ...*BudgetDocument) *StageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdateOne) Mutation() *StageMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *StageUpdateOne) ClearProject() *StageUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearStageMaterials clears all "stage_materials" edges to the StageMaterial entity.
func (_u *StageUpdateOne) ClearStageMaterials() *StageUpdateOne {
	_u.mutation.ClearStageMaterials()
	return _u
}

// RemoveStageMaterialIDs removes the "stage_materials" edge to StageMaterial entities by IDs.
func (_u *StageUpdateOne) RemoveStageMaterialIDs(ids ...uuid.UUID) *StageUpdateOne {
	_u.mutation.RemoveStageMaterialIDs(ids...)
	return _u
}

// RemoveStageMaterials removes "stage_materials" edges to StageMaterial entities.
func (_u *StageUpdateOne) RemoveStageMaterials(v ...*StageMaterial) *StageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageMaterialIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the BudgetDocument entity.
func (_u *StageUpdateOne) ClearDocuments() *StageUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to BudgetDocument entities by IDs.
func (_u *StageUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *StageUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to BudgetDocument entities.
func (_u *StageUpdateOne) RemoveDocuments(v ...*BudgetDocument) *StageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdateOne) Where(ps ...predicate.Stage) *StageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageUpdateOne) Select(field string, fields ...string) *StageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stage entity.
func (_u *StageUpdateOne) Save(ctx context.Context) (*Stage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdateOne) SaveX(ctx context.Context) *Stage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := stage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Stage.name": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.project"`)
	}
	return nil
}

func (_u *StageUpdateOne) sqlSave(ctx context.Context) (_node *Stage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stage.FieldID)
		for _, f := range fields {
			if !stage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stage.FieldID {
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
		_spec.SetField(stage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetedValue(); ok {
		_spec.SetField(stage.FieldBudgetedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetedValue(); ok {
		_spec.AddField(stage.FieldBudgetedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RealizedValue(); ok {
		_spec.SetField(stage.FieldRealizedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRealizedValue(); ok {
		_spec.AddField(stage.FieldRealizedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stage.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ProjectTable,
			Columns: []string{stage.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ProjectTable,
			Columns: []string{stage.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
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
			Table:   stage.StageMaterialsTable,
			Columns: []string{stage.StageMaterialsColumn},
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
			Table:   stage.StageMaterialsTable,
			Columns: []string{stage.StageMaterialsColumn},
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
			Table:   stage.StageMaterialsTable,
			Columns: []string{stage.StageMaterialsColumn},
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
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.DocumentsTable,
			Columns: []string{stage.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.DocumentsTable,
			Columns: []string{stage.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.DocumentsTable,
			Columns: []string{stage.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budgetdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Stage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

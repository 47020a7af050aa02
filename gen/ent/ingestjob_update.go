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
)

// IngestJobUpdate is the builder for updating IngestJob entities.
type IngestJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestJobMutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdate) Where(ps ...predicate.IngestJob) *IngestJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *IngestJobUpdate) SetDocumentID(v uuid.UUID) *IngestJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableDocumentID(v *uuid.UUID) *IngestJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *IngestJobUpdate) SetFormat(v string) *IngestJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFormat(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdate) SetStartedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStartedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdate) SetFinishedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFinishedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdate) ClearFinishedAt() *IngestJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdate) SetStatus(v string) *IngestJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStatus(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *IngestJobUpdate) ClearStatus() *IngestJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdate) SetErrorMessage(v string) *IngestJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableErrorMessage(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdate) ClearErrorMessage() *IngestJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *IngestJobUpdate) SetOcrText(v string) *IngestJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableOcrText(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *IngestJobUpdate) ClearOcrText() *IngestJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetItemsFound sets the "items_found" field.
func (_u *IngestJobUpdate) SetItemsFound(v int) *IngestJobUpdate {
	_u.mutation.ResetItemsFound()
	_u.mutation.SetItemsFound(v)
	return _u
}

// SetNillableItemsFound sets the "items_found" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableItemsFound(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetItemsFound(*v)
	}
	return _u
}

// AddItemsFound adds value to the "items_found" field.
func (_u *IngestJobUpdate) AddItemsFound(v int) *IngestJobUpdate {
	_u.mutation.AddItemsFound(v)
	return _u
}

// SetCreatedCount sets the "created_count" field.
func (_u *IngestJobUpdate) SetCreatedCount(v int) *IngestJobUpdate {
	_u.mutation.ResetCreatedCount()
	_u.mutation.SetCreatedCount(v)
	return _u
}

// SetNillableCreatedCount sets the "created_count" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableCreatedCount(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetCreatedCount(*v)
	}
	return _u
}

// AddCreatedCount adds value to the "created_count" field.
func (_u *IngestJobUpdate) AddCreatedCount(v int) *IngestJobUpdate {
	_u.mutation.AddCreatedCount(v)
	return _u
}

// SetUpdatedCount sets the "updated_count" field.
func (_u *IngestJobUpdate) SetUpdatedCount(v int) *IngestJobUpdate {
	_u.mutation.ResetUpdatedCount()
	_u.mutation.SetUpdatedCount(v)
	return _u
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableUpdatedCount(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetUpdatedCount(*v)
	}
	return _u
}

// AddUpdatedCount adds value to the "updated_count" field.
func (_u *IngestJobUpdate) AddUpdatedCount(v int) *IngestJobUpdate {
	_u.mutation.AddUpdatedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *IngestJobUpdate) SetFailedCount(v int) *IngestJobUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFailedCount(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *IngestJobUpdate) AddFailedCount(v int) *IngestJobUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetDocument sets the "document" edge to the BudgetDocument entity.
func (_u *IngestJobUpdate) SetDocument(v *BudgetDocument) *IngestJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdate) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the BudgetDocument entity.
func (_u *IngestJobUpdate) ClearDocument() *IngestJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := ingestjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "IngestJob.format": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IngestJob.document"`)
	}
	return nil
}

func (_u *IngestJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ingestjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(ingestjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(ingestjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(ingestjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsFound(); ok {
		_spec.SetField(ingestjob.FieldItemsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsFound(); ok {
		_spec.AddField(ingestjob.FieldItemsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedCount(); ok {
		_spec.SetField(ingestjob.FieldCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedCount(); ok {
		_spec.AddField(ingestjob.FieldCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedCount(); ok {
		_spec.SetField(ingestjob.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdatedCount(); ok {
		_spec.AddField(ingestjob.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(ingestjob.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(ingestjob.FieldFailedCount, field.TypeInt, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestJobUpdateOne is the builder for updating a single IngestJob entity.
type IngestJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *IngestJobUpdateOne) SetDocumentID(v uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *IngestJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *IngestJobUpdateOne) SetFormat(v string) *IngestJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFormat(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdateOne) SetStartedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStartedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdateOne) SetFinishedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdateOne) ClearFinishedAt() *IngestJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdateOne) SetStatus(v string) *IngestJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStatus(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *IngestJobUpdateOne) ClearStatus() *IngestJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdateOne) SetErrorMessage(v string) *IngestJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableErrorMessage(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdateOne) ClearErrorMessage() *IngestJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *IngestJobUpdateOne) SetOcrText(v string) *IngestJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableOcrText(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *IngestJobUpdateOne) ClearOcrText() *IngestJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetItemsFound sets the "items_found" field.
func (_u *IngestJobUpdateOne) SetItemsFound(v int) *IngestJobUpdateOne {
	_u.mutation.ResetItemsFound()
	_u.mutation.SetItemsFound(v)
	return _u
}

// SetNillableItemsFound sets the "items_found" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableItemsFound(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetItemsFound(*v)
	}
	return _u
}

// AddItemsFound adds value to the "items_found" field.
func (_u *IngestJobUpdateOne) AddItemsFound(v int) *IngestJobUpdateOne {
	_u.mutation.AddItemsFound(v)
	return _u
}

// SetCreatedCount sets the "created_count" field.
func (_u *IngestJobUpdateOne) SetCreatedCount(v int) *IngestJobUpdateOne {
	_u.mutation.ResetCreatedCount()
	_u.mutation.SetCreatedCount(v)
	return _u
}

// SetNillableCreatedCount sets the "created_count" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableCreatedCount(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetCreatedCount(*v)
	}
	return _u
}

// AddCreatedCount adds value to the "created_count" field.
func (_u *IngestJobUpdateOne) AddCreatedCount(v int) *IngestJobUpdateOne {
	_u.mutation.AddCreatedCount(v)
	return _u
}

// SetUpdatedCount sets the "updated_count" field.
func (_u *IngestJobUpdateOne) SetUpdatedCount(v int) *IngestJobUpdateOne {
	_u.mutation.ResetUpdatedCount()
	_u.mutation.SetUpdatedCount(v)
	return _u
}

// SetNillableUpdatedCount sets the "updated_count" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableUpdatedCount(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetUpdatedCount(*v)
	}
	return _u
}

// AddUpdatedCount adds value to the "updated_count" field.
func (_u *IngestJobUpdateOne) AddUpdatedCount(v int) *IngestJobUpdateOne {
	_u.mutation.AddUpdatedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *IngestJobUpdateOne) SetFailedCount(v int) *IngestJobUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFailedCount(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *IngestJobUpdateOne) AddFailedCount(v int) *IngestJobUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetDocument sets the "document" edge to the BudgetDocument entity.
func (_u *IngestJobUpdateOne) SetDocument(v *BudgetDocument) *IngestJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdateOne) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the BudgetDocument entity.
func (_u *IngestJobUpdateOne) ClearDocument() *IngestJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdateOne) Where(ps ...predicate.IngestJob) *IngestJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestJobUpdateOne) Select(field string, fields ...string) *IngestJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestJob entity.
func (_u *IngestJobUpdateOne) Save(ctx context.Context) (*IngestJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdateOne) SaveX(ctx context.Context) *IngestJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := ingestjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "IngestJob.format": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IngestJob.document"`)
	}
	return nil
}

func (_u *IngestJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestjob.FieldID)
		for _, f := range fields {
			if !ingestjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestjob.FieldID {
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
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ingestjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(ingestjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(ingestjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(ingestjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsFound(); ok {
		_spec.SetField(ingestjob.FieldItemsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsFound(); ok {
		_spec.AddField(ingestjob.FieldItemsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedCount(); ok {
		_spec.SetField(ingestjob.FieldCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedCount(); ok {
		_spec.AddField(ingestjob.FieldCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedCount(); ok {
		_spec.SetField(ingestjob.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdatedCount(); ok {
		_spec.AddField(ingestjob.FieldUpdatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(ingestjob.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(ingestjob.FieldFailedCount, field.TypeInt, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IngestJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BudgetDocument is the predicate function for budgetdocument builders.
type BudgetDocument func(*sql.Selector)

// IngestJob is the predicate function for ingestjob builders.
type IngestJob func(*sql.Selector)

// Material is the predicate function for material builders.
type Material func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Stage is the predicate function for stage builders.
type Stage func(*sql.Selector)

// StageMaterial is the predicate function for stagematerial builders.
type StageMaterial func(*sql.Selector)

// Supplier is the predicate function for supplier builders.
type Supplier func(*sql.Selector)

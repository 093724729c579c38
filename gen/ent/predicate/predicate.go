// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttachedDocument is the predicate function for attacheddocument builders.
type AttachedDocument func(*sql.Selector)

// Box is the predicate function for box builders.
type Box func(*sql.Selector)

// Business is the predicate function for business builders.
type Business func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// FieldOverride is the predicate function for fieldoverride builders.
type FieldOverride func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
)

// AttachedDocument is the model entity for the AttachedDocument schema.
type AttachedDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID uuid.UUID `json:"business_id,omitempty"`
	// BoxID holds the value of the "box_id" field.
	BoxID *uuid.UUID `json:"box_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttachedDocumentQuery when eager-loading is set.
	Edges        AttachedDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttachedDocumentEdges holds the relations/edges for other nodes in the graph.
type AttachedDocumentEdges struct {
	// Box holds the value of the box edge.
	Box *Box `json:"box,omitempty"`
	// Extractions holds the value of the extractions edge.
	Extractions []*Extraction `json:"extractions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BoxOrErr returns the Box value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttachedDocumentEdges) BoxOrErr() (*Box, error) {
	if e.Box != nil {
		return e.Box, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: box.Label}
	}
	return nil, &NotLoadedError{edge: "box"}
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e AttachedDocumentEdges) ExtractionsOrErr() ([]*Extraction, error) {
	if e.loadedTypes[1] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttachedDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attacheddocument.FieldBoxID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case attacheddocument.FieldContentHash:
			values[i] = new([]byte)
		case attacheddocument.FieldFilename, attacheddocument.FieldFileExt, attacheddocument.FieldDocType:
			values[i] = new(sql.NullString)
		case attacheddocument.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case attacheddocument.FieldID, attacheddocument.FieldBusinessID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttachedDocument fields.
func (_m *AttachedDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attacheddocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case attacheddocument.FieldBusinessID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value != nil {
				_m.BusinessID = *value
			}
		case attacheddocument.FieldBoxID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field box_id", values[i])
			} else if value.Valid {
				_m.BoxID = new(uuid.UUID)
				*_m.BoxID = *value.S.(*uuid.UUID)
			}
		case attacheddocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case attacheddocument.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case attacheddocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case attacheddocument.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case attacheddocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttachedDocument.
// This includes values selected through modifiers, order, etc.
func (_m *AttachedDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBox queries the "box" edge of the AttachedDocument entity.
func (_m *AttachedDocument) QueryBox() *BoxQuery {
	return NewAttachedDocumentClient(_m.config).QueryBox(_m)
}

// QueryExtractions queries the "extractions" edge of the AttachedDocument entity.
func (_m *AttachedDocument) QueryExtractions() *ExtractionQuery {
	return NewAttachedDocumentClient(_m.config).QueryExtractions(_m)
}

// Update returns a builder for updating this AttachedDocument.
// Note that you need to call AttachedDocument.Unwrap() before calling this method if this AttachedDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttachedDocument) Update() *AttachedDocumentUpdateOne {
	return NewAttachedDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttachedDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttachedDocument) Unwrap() *AttachedDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttachedDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttachedDocument) String() string {
	var builder strings.Builder
	builder.WriteString("AttachedDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	if v := _m.BoxID; v != nil {
		builder.WriteString("box_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AttachedDocuments is a parsable slice of AttachedDocument.
type AttachedDocuments []*AttachedDocument

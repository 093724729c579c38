// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachedDocumentsColumns holds the columns for the "attached_documents" table.
	AttachedDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "box_id", Type: field.TypeUUID, Nullable: true},
	}
	// AttachedDocumentsTable holds the schema information for the "attached_documents" table.
	AttachedDocumentsTable = &schema.Table{
		Name:       "attached_documents",
		Columns:    AttachedDocumentsColumns,
		PrimaryKey: []*schema.Column{AttachedDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attached_documents_boxes_documents",
				Columns:    []*schema.Column{AttachedDocumentsColumns[7]},
				RefColumns: []*schema.Column{BoxesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attacheddocument_box_id_doc_type",
				Unique:  false,
				Columns: []*schema.Column{AttachedDocumentsColumns[7], AttachedDocumentsColumns[5]},
			},
			{
				Name:    "attacheddocument_business_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{AttachedDocumentsColumns[1], AttachedDocumentsColumns[6]},
			},
		},
	}
	// BoxesColumns holds the columns for the "boxes" table.
	BoxesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "box_type", Type: field.TypeString},
		{Name: "expense_type", Type: field.TypeString, Nullable: true},
		{Name: "contact_name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "contact_tax_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "box_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "has_vat", Type: field.TypeBool, Default: false},
		{Name: "has_wht", Type: field.TypeBool, Default: false},
		{Name: "wht_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "wht_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payment_status", Type: field.TypeString, Default: "UNPAID"},
		{Name: "no_receipt_reason", Type: field.TypeString, Nullable: true},
		{Name: "is_paid", Type: field.TypeBool, Default: false},
		{Name: "wht_sent", Type: field.TypeBool, Default: false},
		{Name: "doc_status", Type: field.TypeString, Default: "INCOMPLETE"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeUUID},
	}
	// BoxesTable holds the schema information for the "boxes" table.
	BoxesTable = &schema.Table{
		Name:       "boxes",
		Columns:    BoxesColumns,
		PrimaryKey: []*schema.Column{BoxesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "boxes_businesses_boxes",
				Columns:    []*schema.Column{BoxesColumns[19]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "box_business_id_box_date",
				Unique:  false,
				Columns: []*schema.Column{BoxesColumns[19], BoxesColumns[5]},
			},
			{
				Name:    "box_business_id_doc_status",
				Unique:  false,
				Columns: []*schema.Column{BoxesColumns[19], BoxesColumns[16]},
			},
		},
	}
	// BusinessesColumns holds the columns for the "businesses" table.
	BusinessesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "tax_id", Type: field.TypeString, Nullable: true},
		{Name: "default_currency", Type: field.TypeString, Size: 3, Default: "THB"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BusinessesTable holds the schema information for the "businesses" table.
	BusinessesTable = &schema.Table{
		Name:       "businesses",
		Columns:    BusinessesColumns,
		PrimaryKey: []*schema.Column{BusinessesColumns[0]},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "contact_name", Type: field.TypeString, Nullable: true},
		{Name: "document_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "document_number", Type: field.TypeString, Nullable: true},
		{Name: "tax_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_attached_documents_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[13]},
				RefColumns: []*schema.Column{AttachedDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// FieldOverridesColumns holds the columns for the "field_overrides" table.
	FieldOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "box_id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FieldOverridesTable holds the schema information for the "field_overrides" table.
	FieldOverridesTable = &schema.Table{
		Name:       "field_overrides",
		Columns:    FieldOverridesColumns,
		PrimaryKey: []*schema.Column{FieldOverridesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fieldoverride_box_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{FieldOverridesColumns[1], FieldOverridesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachedDocumentsTable,
		BoxesTable,
		BusinessesTable,
		ExtractionsTable,
		FieldOverridesTable,
	}
)

func init() {
	AttachedDocumentsTable.ForeignKeys[0].RefTable = BoxesTable
	AttachedDocumentsTable.Annotation = &entsql.Annotation{
		Table: "attached_documents",
	}
	BoxesTable.ForeignKeys[0].RefTable = BusinessesTable
	BoxesTable.Annotation = &entsql.Annotation{
		Table: "boxes",
	}
	BusinessesTable.Annotation = &entsql.Annotation{
		Table: "businesses",
	}
	ExtractionsTable.ForeignKeys[0].RefTable = AttachedDocumentsTable
	ExtractionsTable.Annotation = &entsql.Annotation{
		Table: "extractions",
	}
	FieldOverridesTable.Annotation = &entsql.Annotation{
		Table: "field_overrides",
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/db/ent/schema"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/business"
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
	"github.com/teerapat-ng/docbox/gen/ent/fieldoverride"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attacheddocumentFields := schema.AttachedDocument{}.Fields()
	_ = attacheddocumentFields
	// attacheddocumentDescFilename is the schema descriptor for filename field.
	attacheddocumentDescFilename := attacheddocumentFields[3].Descriptor()
	// attacheddocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	attacheddocument.FilenameValidator = attacheddocumentDescFilename.Validators[0].(func(string) error)
	// attacheddocumentDescFileExt is the schema descriptor for file_ext field.
	attacheddocumentDescFileExt := attacheddocumentFields[4].Descriptor()
	// attacheddocument.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	attacheddocument.FileExtValidator = attacheddocumentDescFileExt.Validators[0].(func(string) error)
	// attacheddocumentDescDocType is the schema descriptor for doc_type field.
	attacheddocumentDescDocType := attacheddocumentFields[6].Descriptor()
	// attacheddocument.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	attacheddocument.DocTypeValidator = attacheddocumentDescDocType.Validators[0].(func(string) error)
	// attacheddocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	attacheddocumentDescUploadedAt := attacheddocumentFields[7].Descriptor()
	// attacheddocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	attacheddocument.DefaultUploadedAt = attacheddocumentDescUploadedAt.Default.(func() time.Time)
	// attacheddocumentDescID is the schema descriptor for id field.
	attacheddocumentDescID := attacheddocumentFields[0].Descriptor()
	// attacheddocument.DefaultID holds the default value on creation for the id field.
	attacheddocument.DefaultID = attacheddocumentDescID.Default.(func() uuid.UUID)
	boxFields := schema.Box{}.Fields()
	_ = boxFields
	// boxDescBoxType is the schema descriptor for box_type field.
	boxDescBoxType := boxFields[2].Descriptor()
	// box.BoxTypeValidator is a validator for the "box_type" field. It is called by the builders before save.
	box.BoxTypeValidator = boxDescBoxType.Validators[0].(func(string) error)
	// boxDescExpenseType is the schema descriptor for expense_type field.
	boxDescExpenseType := boxFields[3].Descriptor()
	// box.ExpenseTypeValidator is a validator for the "expense_type" field. It is called by the builders before save.
	box.ExpenseTypeValidator = boxDescExpenseType.Validators[0].(func(string) error)
	// boxDescContactName is the schema descriptor for contact_name field.
	boxDescContactName := boxFields[4].Descriptor()
	// box.DefaultContactName holds the default value on creation for the contact_name field.
	box.DefaultContactName = boxDescContactName.Default.(string)
	// boxDescContactTaxID is the schema descriptor for contact_tax_id field.
	boxDescContactTaxID := boxFields[5].Descriptor()
	// box.DefaultContactTaxID holds the default value on creation for the contact_tax_id field.
	box.DefaultContactTaxID = boxDescContactTaxID.Default.(string)
	// boxDescHasVat is the schema descriptor for has_vat field.
	boxDescHasVat := boxFields[7].Descriptor()
	// box.DefaultHasVat holds the default value on creation for the has_vat field.
	box.DefaultHasVat = boxDescHasVat.Default.(bool)
	// boxDescHasWht is the schema descriptor for has_wht field.
	boxDescHasWht := boxFields[8].Descriptor()
	// box.DefaultHasWht holds the default value on creation for the has_wht field.
	box.DefaultHasWht = boxDescHasWht.Default.(bool)
	// boxDescTotalAmount is the schema descriptor for total_amount field.
	boxDescTotalAmount := boxFields[10].Descriptor()
	// box.DefaultTotalAmount holds the default value on creation for the total_amount field.
	box.DefaultTotalAmount = boxDescTotalAmount.Default.(float64)
	// boxDescVatAmount is the schema descriptor for vat_amount field.
	boxDescVatAmount := boxFields[11].Descriptor()
	// box.DefaultVatAmount holds the default value on creation for the vat_amount field.
	box.DefaultVatAmount = boxDescVatAmount.Default.(float64)
	// boxDescWhtAmount is the schema descriptor for wht_amount field.
	boxDescWhtAmount := boxFields[12].Descriptor()
	// box.DefaultWhtAmount holds the default value on creation for the wht_amount field.
	box.DefaultWhtAmount = boxDescWhtAmount.Default.(float64)
	// boxDescPaymentStatus is the schema descriptor for payment_status field.
	boxDescPaymentStatus := boxFields[13].Descriptor()
	// box.DefaultPaymentStatus holds the default value on creation for the payment_status field.
	box.DefaultPaymentStatus = boxDescPaymentStatus.Default.(string)
	// box.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	box.PaymentStatusValidator = boxDescPaymentStatus.Validators[0].(func(string) error)
	// boxDescNoReceiptReason is the schema descriptor for no_receipt_reason field.
	boxDescNoReceiptReason := boxFields[14].Descriptor()
	// box.NoReceiptReasonValidator is a validator for the "no_receipt_reason" field. It is called by the builders before save.
	box.NoReceiptReasonValidator = boxDescNoReceiptReason.Validators[0].(func(string) error)
	// boxDescIsPaid is the schema descriptor for is_paid field.
	boxDescIsPaid := boxFields[15].Descriptor()
	// box.DefaultIsPaid holds the default value on creation for the is_paid field.
	box.DefaultIsPaid = boxDescIsPaid.Default.(bool)
	// boxDescWhtSent is the schema descriptor for wht_sent field.
	boxDescWhtSent := boxFields[16].Descriptor()
	// box.DefaultWhtSent holds the default value on creation for the wht_sent field.
	box.DefaultWhtSent = boxDescWhtSent.Default.(bool)
	// boxDescDocStatus is the schema descriptor for doc_status field.
	boxDescDocStatus := boxFields[17].Descriptor()
	// box.DefaultDocStatus holds the default value on creation for the doc_status field.
	box.DefaultDocStatus = boxDescDocStatus.Default.(string)
	// box.DocStatusValidator is a validator for the "doc_status" field. It is called by the builders before save.
	box.DocStatusValidator = boxDescDocStatus.Validators[0].(func(string) error)
	// boxDescCreatedAt is the schema descriptor for created_at field.
	boxDescCreatedAt := boxFields[18].Descriptor()
	// box.DefaultCreatedAt holds the default value on creation for the created_at field.
	box.DefaultCreatedAt = boxDescCreatedAt.Default.(func() time.Time)
	// boxDescUpdatedAt is the schema descriptor for updated_at field.
	boxDescUpdatedAt := boxFields[19].Descriptor()
	// box.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	box.DefaultUpdatedAt = boxDescUpdatedAt.Default.(func() time.Time)
	// box.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	box.UpdateDefaultUpdatedAt = boxDescUpdatedAt.UpdateDefault.(func() time.Time)
	// boxDescID is the schema descriptor for id field.
	boxDescID := boxFields[0].Descriptor()
	// box.DefaultID holds the default value on creation for the id field.
	box.DefaultID = boxDescID.Default.(func() uuid.UUID)
	businessFields := schema.Business{}.Fields()
	_ = businessFields
	// businessDescName is the schema descriptor for name field.
	businessDescName := businessFields[1].Descriptor()
	// business.NameValidator is a validator for the "name" field. It is called by the builders before save.
	business.NameValidator = businessDescName.Validators[0].(func(string) error)
	// businessDescDefaultCurrency is the schema descriptor for default_currency field.
	businessDescDefaultCurrency := businessFields[3].Descriptor()
	// business.DefaultDefaultCurrency holds the default value on creation for the default_currency field.
	business.DefaultDefaultCurrency = businessDescDefaultCurrency.Default.(string)
	// business.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	business.DefaultCurrencyValidator = func() func(string) error {
		validators := businessDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// businessDescCreatedAt is the schema descriptor for created_at field.
	businessDescCreatedAt := businessFields[4].Descriptor()
	// business.DefaultCreatedAt holds the default value on creation for the created_at field.
	business.DefaultCreatedAt = businessDescCreatedAt.Default.(func() time.Time)
	// businessDescUpdatedAt is the schema descriptor for updated_at field.
	businessDescUpdatedAt := businessFields[5].Descriptor()
	// business.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	business.DefaultUpdatedAt = businessDescUpdatedAt.Default.(func() time.Time)
	// business.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	business.UpdateDefaultUpdatedAt = businessDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businessDescID is the schema descriptor for id field.
	businessDescID := businessFields[0].Descriptor()
	// business.DefaultID holds the default value on creation for the id field.
	business.DefaultID = businessDescID.Default.(func() uuid.UUID)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescDocType is the schema descriptor for doc_type field.
	extractionDescDocType := extractionFields[2].Descriptor()
	// extraction.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	extraction.DocTypeValidator = extractionDescDocType.Validators[0].(func(string) error)
	// extractionDescConfidence is the schema descriptor for confidence field.
	extractionDescConfidence := extractionFields[3].Descriptor()
	// extraction.DefaultConfidence holds the default value on creation for the confidence field.
	extraction.DefaultConfidence = extractionDescConfidence.Default.(float32)
	// extraction.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	extraction.ConfidenceValidator = func() func(float32) error {
		validators := extractionDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionDescStatus is the schema descriptor for status field.
	extractionDescStatus := extractionFields[11].Descriptor()
	// extraction.DefaultStatus holds the default value on creation for the status field.
	extraction.DefaultStatus = extractionDescStatus.Default.(string)
	// extraction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extraction.StatusValidator = extractionDescStatus.Validators[0].(func(string) error)
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[13].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	// extractionDescID is the schema descriptor for id field.
	extractionDescID := extractionFields[0].Descriptor()
	// extraction.DefaultID holds the default value on creation for the id field.
	extraction.DefaultID = extractionDescID.Default.(func() uuid.UUID)
	fieldoverrideFields := schema.FieldOverride{}.Fields()
	_ = fieldoverrideFields
	// fieldoverrideDescFieldName is the schema descriptor for field_name field.
	fieldoverrideDescFieldName := fieldoverrideFields[2].Descriptor()
	// fieldoverride.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	fieldoverride.FieldNameValidator = fieldoverrideDescFieldName.Validators[0].(func(string) error)
	// fieldoverrideDescCreatedAt is the schema descriptor for created_at field.
	fieldoverrideDescCreatedAt := fieldoverrideFields[4].Descriptor()
	// fieldoverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldoverride.DefaultCreatedAt = fieldoverrideDescCreatedAt.Default.(func() time.Time)
	// fieldoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	fieldoverrideDescUpdatedAt := fieldoverrideFields[5].Descriptor()
	// fieldoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fieldoverride.DefaultUpdatedAt = fieldoverrideDescUpdatedAt.Default.(func() time.Time)
	// fieldoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fieldoverride.UpdateDefaultUpdatedAt = fieldoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fieldoverrideDescID is the schema descriptor for id field.
	fieldoverrideDescID := fieldoverrideFields[0].Descriptor()
	// fieldoverride.DefaultID holds the default value on creation for the id field.
	fieldoverride.DefaultID = fieldoverrideDescID.Default.(func() uuid.UUID)
}

package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/gen/ent"
	"github.com/teerapat-ng/docbox/gen/ent/fieldoverride"
	"github.com/teerapat-ng/docbox/internal/aggregate"
)

// OverrideRepository persists human field choices so they stay
// authoritative across re-aggregation.
type OverrideRepository interface {
	Set(ctx context.Context, boxID uuid.UUID, fieldName, value string) error
	Clear(ctx context.Context, boxID uuid.UUID, fieldName string) error
	ListByBox(ctx context.Context, boxID uuid.UUID) (map[string]aggregate.Override, error)
}

type overrideRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOverrideRepository(client *ent.Client, logger *slog.Logger) OverrideRepository {
	return &overrideRepository{
		client: client,
		logger: logger,
	}
}

func (r *overrideRepository) Set(ctx context.Context, boxID uuid.UUID, fieldName, value string) error {
	err := r.client.FieldOverride.Create().
		SetBoxID(boxID).
		SetFieldName(fieldName).
		SetValue(value).
		OnConflictColumns(fieldoverride.FieldBoxID, fieldoverride.FieldFieldName).
		UpdateValue().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set field override", "box_id", boxID, "field", fieldName, "error", err)
	}
	return err
}

func (r *overrideRepository) Clear(ctx context.Context, boxID uuid.UUID, fieldName string) error {
	_, err := r.client.FieldOverride.Delete().
		Where(
			fieldoverride.BoxID(boxID),
			fieldoverride.FieldName(fieldName),
		).
		Exec(ctx)
	return err
}

func (r *overrideRepository) ListByBox(ctx context.Context, boxID uuid.UUID) (map[string]aggregate.Override, error) {
	rows, err := r.client.FieldOverride.Query().
		Where(fieldoverride.BoxID(boxID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list field overrides", "box_id", boxID, "error", err)
		return nil, err
	}
	overrides := make(map[string]aggregate.Override, len(rows))
	for _, row := range rows {
		overrides[row.FieldName] = aggregate.Override{Value: row.Value}
	}
	return overrides, nil
}

package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teerapat-ng/docbox/gen/ent"
	"github.com/teerapat-ng/docbox/gen/ent/business"
	"github.com/teerapat-ng/docbox/internal/entity"
)

// CreateBusinessRequest wraps parameters for creating a business.
type CreateBusinessRequest struct {
	Name            string
	TaxID           string
	DefaultCurrency string
}

type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	CreateBusiness(ctx context.Context, req *CreateBusinessRequest) (*entity.Business, error)
	ListBusinesses(ctx context.Context) ([]*entity.Business, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type businessRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBusinessRepository(client *ent.Client, logger *slog.Logger) BusinessRepository {
	return &businessRepository{
		client: client,
		logger: logger,
	}
}

func (r *businessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	b, err := r.client.Business.
		Query().
		Where(business.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toBusiness(b), nil
}

func (r *businessRepository) CreateBusiness(ctx context.Context, req *CreateBusinessRequest) (*entity.Business, error) {
	currency := req.DefaultCurrency
	if currency == "" {
		currency = "THB"
	}
	b, err := r.client.Business.Create().
		SetName(req.Name).
		SetTaxID(req.TaxID).
		SetDefaultCurrency(currency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create business", "name", req.Name, "error", err)
		return nil, err
	}
	return toBusiness(b), nil
}

func (r *businessRepository) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	bs, err := r.client.Business.Query().Order(business.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list businesses", "error", err)
		return nil, err
	}
	result := make([]*entity.Business, len(bs))
	for i, b := range bs {
		result[i] = toBusiness(b)
	}
	return result, nil
}

func (r *businessRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Business.Query().Where(business.ID(id)).Exist(ctx)
}

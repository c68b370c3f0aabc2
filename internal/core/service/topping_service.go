package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mernspace/catalog-service/internal/api/metrics"
	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

type ToppingService struct {
	repo    ports.ToppingRepository
	storage ports.FileStorage
	logger  zerolog.Logger
}

func NewToppingService(repo ports.ToppingRepository, storage ports.FileStorage, logger zerolog.Logger) *ToppingService {
	return &ToppingService{repo: repo, storage: storage, logger: logger}
}

func (s *ToppingService) Create(ctx context.Context, caller domain.Identity, input ports.CreateToppingInput) (*domain.Topping, error) {
	tenantID, err := resolveTenantID(caller, input.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	topping := &domain.Topping{
		Name:        input.Name,
		Image:       input.Image,
		Price:       input.Price,
		TenantID:    tenantID,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, topping)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("topping", "create").Inc()
	s.logger.Info().Str("topping_id", created.ID).Str("tenant_id", tenantID).Msg("topping created")
	return created, nil
}

// Update applies a partial patch after the ownership check. When the patch
// replaces the image, the previous asset is removed best-effort.
func (s *ToppingService) Update(ctx context.Context, caller domain.Identity, id string, patch ports.ToppingPatch) (*domain.Topping, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(caller, existing.TenantID); err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleManager {
		patch.TenantID = nil
	}

	if patch.Image != nil && existing.Image != "" && *patch.Image != existing.Image {
		removeAsset(ctx, s.storage, existing.Image, s.logger)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("topping", "update").Inc()
	s.logger.Info().Str("topping_id", id).Msg("topping updated")
	return updated, nil
}

func (s *ToppingService) GetByID(ctx context.Context, id string) (*domain.Topping, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete is read-then-delete so the stored image URL is available for
// best-effort asset cleanup afterwards.
func (s *ToppingService) Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Topping, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(caller, existing.TenantID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	if existing.Image != "" {
		removeAsset(ctx, s.storage, existing.Image, s.logger)
	}

	metrics.EntityMutationsTotal.WithLabelValues("topping", "delete").Inc()
	s.logger.Info().Str("topping_id", id).Msg("topping deleted")
	return existing, nil
}

func (s *ToppingService) List(ctx context.Context, filter ports.ListFilter) (*ports.ToppingPage, error) {
	filter.Normalize()

	data, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ToppingPage{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mernspace/catalog-service/internal/api/metrics"
	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// Create persists a new category under the tenant resolved from the caller.
// Duplicate (name, tenant) pairs surface as domain.ErrDuplicateName from the
// repository; existence is never pre-checked.
func (s *CategoryService) Create(ctx context.Context, caller domain.Identity, input ports.CreateCategoryInput) (*domain.Category, error) {
	tenantID, err := resolveTenantID(caller, input.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:               input.Name,
		PriceConfiguration: input.PriceConfiguration,
		Attributes:         input.Attributes,
		TenantID:           tenantID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("category", "create").Inc()
	s.logger.Info().Str("category_id", created.ID).Str("tenant_id", tenantID).Msg("category created")
	return created, nil
}

// Update applies a partial patch after the ownership check. Managers cannot
// move a category to another tenant; any tenantId in their patch is dropped.
func (s *CategoryService) Update(ctx context.Context, caller domain.Identity, id string, patch ports.CategoryPatch) (*domain.Category, error) {
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

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("category", "update").Inc()
	s.logger.Info().Str("category_id", id).Msg("category updated")
	return updated, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a category after the ownership check. The entity is read
// first so the handler can echo the removed document.
func (s *CategoryService) Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Category, error) {
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

	metrics.EntityMutationsTotal.WithLabelValues("category", "delete").Inc()
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return existing, nil
}

func (s *CategoryService) List(ctx context.Context, filter ports.ListFilter) (*ports.CategoryPage, error) {
	filter.Normalize()

	data, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.CategoryPage{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mernspace/catalog-service/internal/api/metrics"
	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

// Event names published on product mutations.
const (
	EventProductCreated = "product-created"
	EventProductUpdated = "product-updated"
	EventProductDeleted = "product-deleted"
)

// productEvent is the envelope written to the broker: the event name plus a
// full snapshot of the product after the mutation (before it, for deletes).
type productEvent struct {
	Event string          `json:"event"`
	Data  *domain.Product `json:"data"`
}

type ProductService struct {
	repo    ports.ProductRepository
	broker  ports.MessageBroker
	storage ports.FileStorage
	topic   string
	logger  zerolog.Logger
}

func NewProductService(
	repo ports.ProductRepository,
	broker ports.MessageBroker,
	storage ports.FileStorage,
	topic string,
	logger zerolog.Logger,
) *ProductService {
	return &ProductService{repo: repo, broker: broker, storage: storage, topic: topic, logger: logger}
}

// Create persists a new product and publishes product-created. The publish
// is awaited: if the broker rejects it the whole call fails, even though the
// document is already stored. That trade-off is deliberate; consumers must
// not miss catalog changes.
func (s *ProductService) Create(ctx context.Context, caller domain.Identity, input ports.CreateProductInput) (*domain.Product, error) {
	tenantID, err := resolveTenantID(caller, input.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:               input.Name,
		Description:        input.Description,
		Image:              input.Image,
		CategoryID:         input.CategoryID,
		PriceConfiguration: input.PriceConfiguration,
		Attributes:         input.Attributes,
		TenantID:           tenantID,
		IsPublished:        input.IsPublished,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, EventProductCreated, created); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("product", "create").Inc()
	s.logger.Info().Str("product_id", created.ID).Str("tenant_id", tenantID).Msg("product created")
	return created, nil
}

// Update applies a partial patch after the ownership check, replaces the old
// image asset when a new one is supplied, and publishes product-updated.
func (s *ProductService) Update(ctx context.Context, caller domain.Identity, id string, patch ports.ProductPatch) (*domain.Product, error) {
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

	if err := s.publish(ctx, EventProductUpdated, updated); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("product", "update").Inc()
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete is read-then-delete: the document is fetched first so its image URL
// is available for cleanup and its snapshot for the deleted event.
func (s *ProductService) Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Product, error) {
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

	if err := s.publish(ctx, EventProductDeleted, existing); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("product", "delete").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return existing, nil
}

func (s *ProductService) List(ctx context.Context, filter ports.ListFilter) (*ports.ProductPage, error) {
	filter.Normalize()

	data, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ProductPage{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *ProductService) publish(ctx context.Context, event string, p *domain.Product) error {
	payload, err := json.Marshal(productEvent{Event: event, Data: p})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event, err)
	}

	err = s.broker.SendMessage(ctx, ports.Message{
		Topic: s.topic,
		Key:   p.ID,
		Value: payload,
	})
	if err != nil {
		metrics.EventsPublishErrorsTotal.WithLabelValues(event).Inc()
		return fmt.Errorf("publish %s: %w", event, err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(event).Inc()
	return nil
}

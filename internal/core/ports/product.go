package ports

import (
	"context"

	"github.com/mernspace/catalog-service/internal/core/domain"
)

// CreateProductInput carries the payload for creating a product.
type CreateProductInput struct {
	Name               string
	Description        string
	Image              string
	CategoryID         string
	PriceConfiguration map[string]domain.ProductPriceOption
	Attributes         []domain.ProductAttribute
	TenantID           string
	IsPublished        bool
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name               *string
	Description        *string
	Image              *string
	CategoryID         *string
	PriceConfiguration map[string]domain.ProductPriceOption
	Attributes         []domain.ProductAttribute
	TenantID           *string
	IsPublished        *bool
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Data       []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Product, int64, error)
}

// ProductService defines the product use cases. Mutations publish a broker
// event before returning; a failed publish fails the mutation.
type ProductService interface {
	Create(ctx context.Context, caller domain.Identity, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, caller domain.Identity, id string, patch ProductPatch) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListFilter) (*ProductPage, error)
}

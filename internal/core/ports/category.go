package ports

import (
	"context"

	"github.com/mernspace/catalog-service/internal/core/domain"
)

// CreateCategoryInput carries the payload for creating a category. TenantID
// is the value supplied in the body; the service decides whether it is used
// (admin) or replaced by the caller's own tenant (manager).
type CreateCategoryInput struct {
	Name               string
	PriceConfiguration map[string]domain.CategoryPriceOption
	Attributes         []domain.CategoryAttribute
	TenantID           string
}

// CategoryPatch is a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name               *string
	PriceConfiguration map[string]domain.CategoryPriceOption
	Attributes         []domain.CategoryAttribute
	TenantID           *string
}

// IsZero reports whether the patch changes nothing.
func (p CategoryPatch) IsZero() bool {
	return p.Name == nil && p.PriceConfiguration == nil && p.Attributes == nil && p.TenantID == nil
}

// CategoryPage is one page of a filtered category listing.
type CategoryPage struct {
	Data       []*domain.Category
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	// List returns the matching page and the total count before pagination.
	List(ctx context.Context, filter ListFilter) ([]*domain.Category, int64, error)
}

// CategoryService defines the category use cases.
type CategoryService interface {
	Create(ctx context.Context, caller domain.Identity, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, caller domain.Identity, id string, patch CategoryPatch) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Category, error)
	List(ctx context.Context, filter ListFilter) (*CategoryPage, error)
}

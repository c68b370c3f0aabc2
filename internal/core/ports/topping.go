package ports

import (
	"context"

	"github.com/mernspace/catalog-service/internal/core/domain"
)

// CreateToppingInput carries the payload for creating a topping.
type CreateToppingInput struct {
	Name        string
	Image       string
	Price       float64
	TenantID    string
	IsPublished bool
}

// ToppingPatch is a partial update. Nil fields are left untouched.
type ToppingPatch struct {
	Name        *string
	Image       *string
	Price       *float64
	TenantID    *string
	IsPublished *bool
}

// ToppingPage is one page of a filtered topping listing.
type ToppingPage struct {
	Data       []*domain.Topping
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ToppingRepository defines persistence operations for toppings.
type ToppingRepository interface {
	Create(ctx context.Context, t *domain.Topping) (*domain.Topping, error)
	Update(ctx context.Context, id string, patch ToppingPatch) (*domain.Topping, error)
	GetByID(ctx context.Context, id string) (*domain.Topping, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Topping, int64, error)
}

// ToppingService defines the topping use cases.
type ToppingService interface {
	Create(ctx context.Context, caller domain.Identity, input CreateToppingInput) (*domain.Topping, error)
	Update(ctx context.Context, caller domain.Identity, id string, patch ToppingPatch) (*domain.Topping, error)
	GetByID(ctx context.Context, id string) (*domain.Topping, error)
	Delete(ctx context.Context, caller domain.Identity, id string) (*domain.Topping, error)
	List(ctx context.Context, filter ListFilter) (*ToppingPage, error)
}

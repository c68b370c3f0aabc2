package domain

import "time"

// Topping is an optional extra with a flat price, scoped to one tenant.
type Topping struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Image       string    `json:"image" bson:"image"`
	Price       float64   `json:"price" bson:"price"`
	TenantID    string    `json:"tenantId" bson:"tenant_id"`
	IsPublished bool      `json:"isPublished" bson:"is_published"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

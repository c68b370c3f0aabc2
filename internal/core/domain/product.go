package domain

import "time"

// ProductPriceOption maps an option label to its price contribution.
type ProductPriceOption struct {
	PriceType        PriceType          `json:"priceType" bson:"price_type"`
	AvailableOptions map[string]float64 `json:"availableOptions" bson:"available_options"`
}

// ProductAttribute is a concrete attribute value chosen for a product.
type ProductAttribute struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// Product is a sellable catalog item belonging to one tenant and one
// category. Image holds the object-storage URL returned by the upload
// endpoint. (name, tenant_id) is unique per the compound index.
type Product struct {
	ID                 string                        `json:"id" bson:"_id,omitempty"`
	Name               string                        `json:"name" bson:"name"`
	Description        string                        `json:"description" bson:"description"`
	Image              string                        `json:"image" bson:"image"`
	CategoryID         string                        `json:"categoryId" bson:"category_id"`
	PriceConfiguration map[string]ProductPriceOption `json:"priceConfiguration" bson:"price_configuration"`
	Attributes         []ProductAttribute            `json:"attributes" bson:"attributes"`
	TenantID           string                        `json:"tenantId" bson:"tenant_id"`
	IsPublished        bool                          `json:"isPublished" bson:"is_published"`
	CreatedAt          time.Time                     `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time                     `json:"updatedAt" bson:"updated_at"`
}

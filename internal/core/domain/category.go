package domain

import "time"

// PriceType qualifies how a price option contributes to the final price.
type PriceType string

const (
	PriceTypeBase       PriceType = "base"
	PriceTypeAdditional PriceType = "additional"
)

// WidgetType controls how a category attribute renders on the storefront.
type WidgetType string

const (
	WidgetSwitch WidgetType = "switch"
	WidgetRadio  WidgetType = "radio"
)

// CategoryPriceOption describes one configurable price dimension of a
// category (e.g. "size" with options small/medium/large).
type CategoryPriceOption struct {
	PriceType        PriceType `json:"priceType" bson:"price_type"`
	AvailableOptions []string  `json:"availableOptions" bson:"available_options"`
}

// CategoryAttribute is a selectable attribute template carried by a category.
type CategoryAttribute struct {
	Name             string     `json:"name" bson:"name"`
	WidgetType       WidgetType `json:"widgetType" bson:"widget_type"`
	DefaultValue     string     `json:"defaultValue" bson:"default_value"`
	AvailableOptions []string   `json:"availableOptions" bson:"available_options"`
}

// Category groups products and defines their pricing/attribute templates.
// (name, tenant_id) is unique per the compound index.
type Category struct {
	ID                 string                         `json:"id" bson:"_id,omitempty"`
	Name               string                         `json:"name" bson:"name"`
	PriceConfiguration map[string]CategoryPriceOption `json:"priceConfiguration" bson:"price_configuration"`
	Attributes         []CategoryAttribute            `json:"attributes" bson:"attributes"`
	TenantID           string                         `json:"tenantId" bson:"tenant_id"`
	CreatedAt          time.Time                      `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time                      `json:"updatedAt" bson:"updated_at"`
}

package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrProductNotFound = errors.New("product not found")
var ErrToppingNotFound = errors.New("topping not found")

// ErrDuplicateName signals a (name, tenantId) uniqueness violation. Raised by
// the repositories when the store rejects an insert or update on the compound
// unique index; the create path never pre-checks existence.
var ErrDuplicateName = errors.New("name already exists for tenant")

var ErrForbidden = errors.New("access forbidden")

// ErrTenantRequired is returned when an admin creates an entity without
// supplying a tenantId in the payload.
var ErrTenantRequired = errors.New("admin must provide tenantId")

// ErrTenantMissing is returned when a manager's token carries no tenant.
var ErrTenantMissing = errors.New("manager tenant not found in token")

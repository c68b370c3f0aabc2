package service

import (
	"github.com/mernspace/catalog-service/internal/core/domain"
)

// resolveTenantID decides which tenant a newly created entity belongs to.
// Admins must name the tenant explicitly in the payload; managers always
// create under the tenant carried in their token, ignoring any tenant the
// body supplies. Every other role is rejected outright.
func resolveTenantID(caller domain.Identity, bodyTenantID string) (string, error) {
	switch caller.Role {
	case domain.RoleAdmin:
		if bodyTenantID == "" {
			return "", domain.ErrTenantRequired
		}
		return bodyTenantID, nil
	case domain.RoleManager:
		if caller.TenantID == "" {
			return "", domain.ErrTenantMissing
		}
		return caller.TenantID, nil
	case domain.RoleCustomer:
		return "", domain.ErrForbidden
	default:
		return "", domain.ErrForbidden
	}
}

// checkOwnership rejects cross-tenant mutations on an existing entity.
// Admins bypass the check unconditionally; managers must own the entity's
// tenant. The caller is responsible for resolving NotFound before this runs.
func checkOwnership(caller domain.Identity, entityTenantID string) error {
	switch caller.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleManager:
		if entityTenantID != caller.TenantID {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleCustomer:
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}

// totalPages computes ceil(total/limit) for pagination envelopes.
func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

package auth

import "github.com/inovaindustria/industria-api/internal/core/domain"

// Identity is the authenticated caller for the duration of one request.
// It is a plain immutable value derived from a validated token; it is never
// persisted and never re-validated within the request.
type Identity struct {
	AccountID string
	Role      domain.Role
	TenantID  *string
}

// IdentityFromClaims builds the request identity from verified token claims.
func IdentityFromClaims(claims *Claims) Identity {
	return Identity{
		AccountID: claims.Subject,
		Role:      domain.Role(claims.Role),
		TenantID:  claims.TenantID,
	}
}

// HasRole reports whether the caller holds exactly the given role. This is
// a deliberate exact-match check on the token's role claim; there is no
// role hierarchy.
func (id Identity) HasRole(role domain.Role) bool {
	return id.Role == role
}

// SuperAdmin reports whether the caller bypasses tenant scoping.
func (id Identity) SuperAdmin() bool {
	return id.Role == domain.RoleSuperAdmin
}

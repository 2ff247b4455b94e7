package middleware

import (
	"siwatours/internal/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextPrincipalKey = "auth_principal"

// Principal is the authenticated identity extracted from an access token.
// Its role has already passed ParseRole, so downstream checks can trust it.
type Principal struct {
	UserID    uuid.UUID
	Role      entity.UserRole
	SessionID uuid.UUID
}

func SetPrincipal(c echo.Context, principal Principal) {
	c.Set(contextPrincipalKey, principal)
}

func PrincipalFromContext(c echo.Context) (Principal, bool) {
	value := c.Get(contextPrincipalKey)
	principal, ok := value.(Principal)
	return principal, ok
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	principal, ok := PrincipalFromContext(c)
	return principal.UserID, ok
}

func SessionIDFromContext(c echo.Context) (uuid.UUID, bool) {
	principal, ok := PrincipalFromContext(c)
	return principal.SessionID, ok
}

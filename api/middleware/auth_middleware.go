package middleware

import (
	"net/http"
	"strings"

	"siwatours/internal/entity"
	"siwatours/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	JWT *utils.JWTManager
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := m.authenticate(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		SetPrincipal(c, principal)
		return next(c)
	}
}

// Authenticate parses the bearer token without failing the request; page
// guards use it to decide between a login redirect and a forbidden fallback.
func (m AuthMiddleware) Authenticate(c echo.Context) (Principal, bool) {
	return m.authenticate(c)
}

func (m AuthMiddleware) authenticate(c echo.Context) (Principal, bool) {
	if m.JWT == nil {
		return Principal{}, false
	}
	token := extractBearerToken(c.Request())
	if token == "" {
		return Principal{}, false
	}
	claims, err := m.JWT.ParseAccessToken(token)
	if err != nil {
		return Principal{}, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Principal{}, false
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return Principal{}, false
	}
	// the role claim is untrusted input until it parses into the closed set
	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		return Principal{}, false
	}
	return Principal{UserID: userID, Role: role, SessionID: sessionID}, true
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

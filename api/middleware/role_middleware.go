package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"siwatours/internal/entity"

	"github.com/labstack/echo/v4"
)

type forbiddenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RequireRoles is the API-side role gate: principals outside the allowed
// set get a structured 403 with no redirect.
func RequireRoles(roles ...entity.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFromContext(c)
			if !ok || !roleAllowed(principal.Role, roles) {
				return c.JSON(http.StatusForbidden, forbiddenResponse{Message: "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireStaff admits admin and manager only.
func RequireStaff() echo.MiddlewareFunc {
	return RequireRoles(entity.UserRoleAdmin, entity.UserRoleManager)
}

// PageGuard is the render-side gate: unauthenticated visitors are sent to
// the login page with a callback back to the requested target, and
// authenticated principals outside the allowed set are sent to a fallback
// page instead of being shown an error.
type PageGuard struct {
	Auth        AuthMiddleware
	LoginPath   string
	FallbackURL string
}

func (g PageGuard) Require(roles ...entity.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := g.Auth.Authenticate(c)
			if !ok {
				target := g.loginPath() + "?callbackUrl=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusSeeOther, target)
			}
			if !roleAllowed(principal.Role, roles) {
				return c.Redirect(http.StatusSeeOther, g.fallbackURL())
			}
			SetPrincipal(c, principal)
			return next(c)
		}
	}
}

func (g PageGuard) loginPath() string {
	if g.LoginPath == "" {
		return "/login"
	}
	return g.LoginPath
}

func (g PageGuard) fallbackURL() string {
	if g.FallbackURL == "" {
		return "/"
	}
	return g.FallbackURL
}

// ManagerScope pins a manager to their own dashboard: when the id path
// parameter differs from the principal, the request is redirected to the
// same resource under the principal's own id rather than failed. Admin
// sees everything.
func ManagerScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFromContext(c)
			if !ok {
				return c.JSON(http.StatusForbidden, forbiddenResponse{Message: "forbidden"})
			}
			if principal.Role == entity.UserRoleAdmin {
				return next(c)
			}
			if c.Param("id") != principal.UserID.String() {
				target := strings.Replace(c.Path(), ":id", principal.UserID.String(), 1)
				return c.Redirect(http.StatusSeeOther, target)
			}
			return next(c)
		}
	}
}

func roleAllowed(role entity.UserRole, allowed []entity.UserRole) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}

package routes

import (
	"time"

	"siwatours/api/handler"
	"siwatours/api/middleware"
	"siwatours/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Trips          *handler.TripHandler
	Bookings       *handler.BookingHandler
	Gallery        *handler.GalleryHandler
	AuthMiddleware middleware.AuthMiddleware
	PageGuard      middleware.PageGuard
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	tripHandler *handler.TripHandler,
	bookingHandler *handler.BookingHandler,
	galleryHandler *handler.GalleryHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Trips:          tripHandler,
		Bookings:       bookingHandler,
		Gallery:        galleryHandler,
		AuthMiddleware: authMiddleware,
		PageGuard:      middleware.PageGuard{Auth: authMiddleware, LoginPath: "/login", FallbackURL: "/"},
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	e.POST("/auth/verify-email", r.Auth.VerifyEmail, r.AuthRate.Middleware())
	e.POST("/auth/verify-reset-token", r.Auth.VerifyResetToken, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/login/mfa", r.Auth.LoginWithMFA, r.LoginRate.Middleware())
	e.POST("/auth/refresh", r.Auth.Refresh, r.AuthRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout, r.AuthMiddleware.RequireAuth)
	e.POST("/auth/logout-all", r.Auth.LogoutAll, r.AuthMiddleware.RequireAuth)
	e.POST("/auth/password/forgot", r.Auth.PasswordForgot, r.LoginRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.PasswordReset, r.AuthRate.Middleware())
	e.POST("/auth/mfa/enable", r.Auth.EnableMFA, r.AuthMiddleware.RequireAuth)
	e.POST("/auth/mfa/verify", r.Auth.VerifyMFA, r.AuthMiddleware.RequireAuth)
	e.POST("/auth/mfa/disable", r.Auth.DisableMFA, r.AuthMiddleware.RequireAuth)

	e.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)

	// public catalog
	e.GET("/trips", r.Trips.List)
	e.GET("/trips/:id", r.Trips.Get)
	e.GET("/gallery", r.Gallery.List)

	// bookings
	e.POST("/bookings", r.Bookings.Create, r.AuthMiddleware.RequireAuth)
	e.GET("/bookings/me", r.Bookings.ListMine, r.AuthMiddleware.RequireAuth)
	e.GET("/bookings/:id", r.Bookings.Get, r.AuthMiddleware.RequireAuth)

	// admin-tier API: admin and manager only
	staff := e.Group("/admin", r.AuthMiddleware.RequireAuth, middleware.RequireStaff())
	staff.GET("/trips", r.Trips.ListAll)
	staff.GET("/trips/:id", r.Trips.AdminGet)
	staff.POST("/trips", r.Trips.Create)
	staff.PUT("/trips/:id", r.Trips.Update)
	staff.DELETE("/trips/:id", r.Trips.Delete)
	staff.GET("/bookings", r.Bookings.ListAll)
	staff.PATCH("/bookings/:id/status", r.Bookings.UpdateStatus)
	staff.PATCH("/bookings/:id/payment", r.Bookings.UpdatePaymentStatus)
	staff.POST("/gallery", r.Gallery.Create)
	staff.PUT("/gallery/:id", r.Gallery.Update)
	staff.DELETE("/gallery/:id", r.Gallery.Delete)

	e.GET("/admin/users", r.Auth.AdminListUsers,
		r.AuthMiddleware.RequireAuth, middleware.RequireRoles(entity.UserRoleAdmin))
	e.POST("/admin/users/:id/revoke-sessions", r.Auth.AdminRevokeUserSessions,
		r.AuthMiddleware.RequireAuth, middleware.RequireRoles(entity.UserRoleAdmin))

	// manager dashboard: scoped to the principal's own id
	e.GET("/manager/:id/bookings", r.Bookings.ManagerBookings,
		r.AuthMiddleware.RequireAuth, middleware.RequireStaff(), middleware.ManagerScope())

	// render-side guard: redirects instead of 403
	e.GET("/dashboard/bookings", r.Bookings.ListAll,
		r.PageGuard.Require(entity.UserRoleAdmin, entity.UserRoleManager))
}

package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"siwatours/api/handler"
	apiMiddleware "siwatours/api/middleware"
	"siwatours/api/routes"
	"siwatours/config"
	"siwatours/internal/cache"
	"siwatours/internal/repository"
	"siwatours/internal/service"
	"siwatours/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if os.Getenv("DB_AUTOMIGRATE") != "false" {
		if err := config.Migrate(db); err != nil {
			logger.WithError(err).Fatal("migration failed")
		}
	}

	accessSecret := []byte(os.Getenv("JWT_SECRET"))
	issuer := os.Getenv("JWT_ISSUER")
	if len(accessSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	accessManager := utils.JWTManager{
		Secret:         accessSecret,
		Issuer:         issuer,
		AccessTokenTTL: 15 * time.Minute,
	}
	accessIssuer := service.JWTAccessIssuer{Manager: &accessManager}

	mfaSecret := os.Getenv("MFA_JWT_SECRET")
	if mfaSecret == "" {
		mfaSecret = os.Getenv("JWT_SECRET")
	}
	mfaIssuer := service.MFATokenIssuerJWT{
		Secret: []byte(mfaSecret),
		Issuer: issuer,
		TTL:    5 * time.Minute,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	verificationRepo := repository.NewVerificationTokenRepository(db)
	mfaRepo := repository.NewMFASecretRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cacheClient := cache.New(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), redisDB)

	// assigning through the interface variable keeps a missing sender a
	// true nil instead of a typed-nil *ResendEmailSender
	var emailSender service.EmailSender
	if resendSender := service.NewResendEmailSender(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("EMAIL_FROM"),
		os.Getenv("APP_BASE_URL"),
	); resendSender != nil {
		emailSender = resendSender
	} else {
		logger.Warn("RESEND_API_KEY or EMAIL_FROM not set, transactional email disabled")
	}

	passwordHasher := service.BcryptPasswordHasher{}

	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		verificationRepo,
		mfaRepo,
		securityRepo,
		emailSender,
		passwordHasher,
		accessIssuer,
		mfaIssuer,
		service.NewTOTPProvider(issuer),
		service.RealClock{},
		service.AuthConfig{
			AccessTokenTTL:       15 * time.Minute,
			RefreshTokenTTL:      30 * 24 * time.Hour,
			VerificationTokenTTL: 24 * time.Hour,
			ResetTokenTTL:        30 * time.Minute,
			MFATokenTTL:          5 * time.Minute,
			MFAIssuer:            issuer,
		},
	)
	tripService := service.NewTripService(tripRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, tripRepo, securityRepo)
	galleryService := service.NewGalleryService(galleryRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	authHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"
	tripHandler := handler.NewTripHandler(tripService, validate)
	bookingHandler := handler.NewBookingHandler(bookingService, validate)
	galleryHandler := handler.NewGalleryHandler(galleryService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &accessManager}
	router := routes.NewRouter(app, authHandler, tripHandler, bookingHandler, galleryHandler, authMiddleware)
	router.RegisterRoutes()

	sweeper := service.Sweeper{
		Verifications: verificationRepo,
		Sessions:      sessionRepo,
		Interval:      time.Hour,
		Logger:        logger,
	}
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go sweeper.Run(sweepCtx)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

package main

import (
	"context"
	"os"
	"time"

	"UniqueSeriesAPI/external/abstractapi"
	"UniqueSeriesAPI/external/imagekit"
	"UniqueSeriesAPI/external/resend"
	"UniqueSeriesAPI/external/wachat"

	"UniqueSeriesAPI/internal/db"
	"UniqueSeriesAPI/internal/repository"
	"UniqueSeriesAPI/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if os.Getenv("USE_EMAIL_REPUTATION") == "true" {
		emailValidator, err = abstractapi.NewAbstractReputationValidator()
		if err != nil {
			log.Fatal().Err(err).Msg("email reputation validator init failed")
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var mailer services.Mailer
	if os.Getenv("RESEND_API_KEY") != "" {
		m, err := resend.NewResendMailer("UniqueSeries<orders@uniqueseries.in>")
		if err != nil {
			log.Fatal().Err(err).Msg("mailer init failed")
		}
		mailer = m
	} else {
		log.Warn().Msg("RESEND_API_KEY not set, transactional mail disabled")
	}

	var chat services.ChatSender
	if os.Getenv("WACHAT_API_KEY") != "" {
		wc, err := wachat.NewClient()
		if err != nil {
			log.Fatal().Err(err).Msg("chat client init failed")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := wc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("chat gateway unreachable, order messages disabled")
		} else {
			chat = wc
			defer wc.Disconnect()
		}
		cancel()
	} else {
		log.Warn().Msg("WACHAT_API_KEY not set, order chat messages disabled")
	}

	var assets services.AssetStore
	if os.Getenv("IMAGEKIT_PRIVATE_KEY") != "" {
		ik, err := imagekit.NewClient()
		if err != nil {
			log.Fatal().Err(err).Msg("imagekit client init failed")
		}
		assets = ik
	} else {
		log.Warn().Msg("IMAGEKIT_PRIVATE_KEY not set, asset promotion disabled")
	}

	notifier := services.NewNotifier(mailer, chat, log)

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, emailValidator, notifier)
	profileSvc := services.NewProfileService(userRepo)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(pool, cartRepo, orderRepo, productRepo, couponRepo, paymentRepo, assets, notifier, log)
	couponSvc := services.NewCouponService(couponRepo)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)
	contactSvc := services.NewContactService(contactRepo)
	adminSvc := services.NewAdminService(adminRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerProfileRoutes(api, profileSvc)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, orderSvc)
	registerCouponRoutes(api, couponSvc)
	registerReviewRoutes(api, reviewSvc)
	registerWishlistRoutes(api, wishlistSvc)
	registerContactRoutes(api, contactSvc)
	registerAdminRoutes(api, adminSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
